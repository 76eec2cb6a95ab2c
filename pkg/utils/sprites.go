package utils

import (
	"image"
	"image/color"
)

// 程序化占位精灵
//
// 项目不携带美术资源，所有精灵在启动时按需程序化生成。
// 生成的图像带有真实的透明边缘（椭圆、圆角），保证逐像素
// 碰撞掩码不会退化成矩形包围盒。

// SpritePalette 各类精灵的配色
var SpritePalette = struct {
	PlayerSkins []color.RGBA
	Branch      color.RGBA
	Rock        color.RGBA
	Gust        color.RGBA
	Crate       color.RGBA
	Cloud       color.RGBA
	SkyTop      color.RGBA
	SkyBottom   color.RGBA
	StormTop    color.RGBA
	StormBottom color.RGBA
}{
	PlayerSkins: []color.RGBA{
		{235, 94, 40, 255},  // 橙
		{73, 160, 213, 255}, // 蓝
		{120, 190, 80, 255}, // 绿
		{200, 90, 190, 255}, // 紫
	},
	Branch:      color.RGBA{110, 78, 48, 255},
	Rock:        color.RGBA{120, 122, 130, 255},
	Gust:        color.RGBA{205, 225, 240, 230},
	Crate:       color.RGBA{170, 130, 70, 255},
	Cloud:       color.RGBA{70, 72, 88, 255},
	SkyTop:      color.RGBA{96, 150, 220, 255},
	SkyBottom:   color.RGBA{170, 210, 245, 255},
	StormTop:    color.RGBA{38, 40, 58, 255},
	StormBottom: color.RGBA{70, 76, 100, 255},
}

// PlayerSkinCount 可选皮肤数量
func PlayerSkinCount() int {
	return len(SpritePalette.PlayerSkins)
}

// PlayerSprite 生成指定皮肤的玩家精灵
// 越界的皮肤索引回落到皮肤 0
func PlayerSprite(skin, width, height int) *image.RGBA {
	if skin < 0 || skin >= len(SpritePalette.PlayerSkins) {
		skin = 0
	}
	body := SpritePalette.PlayerSkins[skin]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// 身体：下半部椭圆
	fillEllipse(img, width/2, height*5/8, width/2-2, height*3/8-2, body)
	// 头部：上半部小圆
	head := color.RGBA{body.R, body.G, body.B, 255}
	fillEllipse(img, width/2, height/4, width/4, height/4, head)
	return img
}

// ObstacleSprite 生成指定 kind 的障碍物精灵
func ObstacleSprite(kind, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	switch kind {
	case 1: // rock
		fillEllipse(img, width/2, height/2, width/2-1, height/2-1, SpritePalette.Rock)
	case 2: // gust
		fillEllipse(img, width/2, height/2, width/2-1, height/3, SpritePalette.Gust)
		fillEllipse(img, width/4, height/2, width/6, height/5, SpritePalette.Gust)
	case 3: // crate
		fillRect(img, 2, 2, width-4, height-4, SpritePalette.Crate)
	default: // branch
		fillRect(img, 0, height/3, width, height/3, SpritePalette.Branch)
		fillEllipse(img, width/6, height/2, height/3, height/3, SpritePalette.Branch)
		fillEllipse(img, width*5/6, height/2, height/3, height/3, SpritePalette.Branch)
	}
	return img
}

// CloudSprite 生成风暴乌云精灵
func CloudSprite(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillEllipse(img, width/2, height*2/3, width/2-2, height/3, SpritePalette.Cloud)
	fillEllipse(img, width/3, height/2, width/5, height/4, SpritePalette.Cloud)
	fillEllipse(img, width*2/3, height/2, width/4, height/3, SpritePalette.Cloud)
	return img
}

// BackgroundSprite 生成一屏背景（垂直渐变）
// storm 为 true 时使用风暴配色
func BackgroundSprite(width, height int, storm bool) *image.RGBA {
	top, bottom := SpritePalette.SkyTop, SpritePalette.SkyBottom
	if storm {
		top, bottom = SpritePalette.StormTop, SpritePalette.StormBottom
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		c := color.RGBA{
			R: uint8(Lerp(float64(top.R), float64(bottom.R), t)),
			G: uint8(Lerp(float64(top.G), float64(bottom.G), t)),
			B: uint8(Lerp(float64(top.B), float64(bottom.B), t)),
			A: 255,
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// fillRect 填充轴对齐矩形（越界部分忽略）
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// fillEllipse 填充以 (cx, cy) 为中心、半轴为 rx/ry 的实心椭圆
func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 && image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
