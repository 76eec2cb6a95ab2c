package utils

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// AlphaMask 精灵的逐像素不透明度掩码
// 构建一次后不可变，按 (精灵, 尺寸) 缓存复用，用于逐像素碰撞检测
type AlphaMask struct {
	Width  int
	Height int
	// opaque 按行主序存储每个像素是否不透明
	opaque []bool
}

// BuildMask 将精灵渲染到指定尺寸并采样透明度，生成掩码
// 像素的 alpha 值超过 threshold（0~1）时判定为不透明
// 相同的精灵数据和尺寸总是产生相同的掩码
func BuildMask(src image.Image, width, height int, threshold float64) *AlphaMask {
	if width <= 0 || height <= 0 {
		return &AlphaMask{Width: 0, Height: 0}
	}

	bounds := src.Bounds()
	sampled := src
	if bounds.Dx() != width || bounds.Dy() != height {
		// 尺寸不一致时先缩放到请求尺寸
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Over, nil)
		sampled = scaled
	}

	mask := &AlphaMask{
		Width:  width,
		Height: height,
		opaque: make([]bool, width*height),
	}

	// alpha 通道为 16 位（image/color 约定），阈值换算到同一量纲
	alphaLimit := uint32(threshold * 0xffff)
	origin := sampled.Bounds().Min
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := sampled.At(origin.X+x, origin.Y+y).RGBA()
			mask.opaque[y*width+x] = a > alphaLimit
		}
	}

	return mask
}

// NewMaskFromBits 从布尔位图直接构建掩码（测试及程序化精灵用）
// bits 长度必须等于 width*height，按行主序排列
func NewMaskFromBits(width, height int, bits []bool) *AlphaMask {
	if len(bits) != width*height {
		return &AlphaMask{Width: 0, Height: 0}
	}
	opaque := make([]bool, len(bits))
	copy(opaque, bits)
	return &AlphaMask{Width: width, Height: height, opaque: opaque}
}

// OpaqueAt 返回掩码局部坐标 (x, y) 处是否不透明
// 越界坐标返回 false
func (m *AlphaMask) OpaqueAt(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.opaque[y*m.Width+x]
}

// Collides 对两个掩码做逐像素碰撞检测
// (ax, ay) / (bx, by) 是两个掩码包围盒左上角在同一坐标系下的整数像素位置
//
// 先计算包围盒的交集矩形，交集为空时直接返回 false（快速拒绝）；
// 否则按行主序从交集左上角开始扫描，遇到第一个双方同时不透明的
// 像素返回 true。扫描顺序只为测试的确定性，无其他含义。
func (a *AlphaMask) Collides(ax, ay int, b *AlphaMask, bx, by int) bool {
	left := max(ax, bx)
	top := max(ay, by)
	right := min(ax+a.Width, bx+b.Width)
	bottom := min(ay+a.Height, by+b.Height)

	if right-left <= 0 || bottom-top <= 0 {
		return false
	}

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if a.OpaqueAt(x-ax, y-ay) && b.OpaqueAt(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
