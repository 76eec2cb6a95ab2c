package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// ResourceManager 资源管理器
// 职责：
//   - 程序化生成并缓存全部精灵像素数据（无磁盘美术资源）
//   - 按需把像素数据转换为 ebiten.Image 并缓存（仅渲染路径使用）
//   - 按 (精灵, 尺寸) 缓存碰撞掩码，构建一次后整局复用
//
// 像素数据和掩码不依赖图形上下文，模拟和测试可以在无窗口环境使用；
// ebiten.Image 的转换推迟到第一次绘制调用
type ResourceManager struct {
	pixels map[string]*image.RGBA
	images map[string]*ebiten.Image
	masks  map[string]*utils.AlphaMask
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		pixels: make(map[string]*image.RGBA),
		images: make(map[string]*ebiten.Image),
		masks:  make(map[string]*utils.AlphaMask),
	}
}

// playerKey / obstacleKey 缓存键，包含尺寸保证 (精灵, 尺寸) 唯一
func playerKey(skin int) string {
	return fmt.Sprintf("player:%d:%dx%d", skin, config.PlayerWidth, config.PlayerHeight)
}

func obstacleKey(kind int) string {
	w, h := config.KindSize(kind)
	return fmt.Sprintf("obstacle:%d:%dx%d", kind, w, h)
}

// PlayerPixels 返回指定皮肤的玩家精灵像素数据
func (rm *ResourceManager) PlayerPixels(skin int) *image.RGBA {
	key := playerKey(skin)
	if img, ok := rm.pixels[key]; ok {
		return img
	}
	img := utils.PlayerSprite(skin, config.PlayerWidth, config.PlayerHeight)
	rm.pixels[key] = img
	return img
}

// ObstaclePixels 返回指定 kind 的障碍物精灵像素数据
func (rm *ResourceManager) ObstaclePixels(kind int) *image.RGBA {
	key := obstacleKey(kind)
	if img, ok := rm.pixels[key]; ok {
		return img
	}
	w, h := config.KindSize(kind)
	img := utils.ObstacleSprite(kind, w, h)
	rm.pixels[key] = img
	return img
}

// PlayerMask 返回指定皮肤的玩家碰撞掩码（构建一次后缓存）
func (rm *ResourceManager) PlayerMask(skin int) *utils.AlphaMask {
	key := playerKey(skin)
	if mask, ok := rm.masks[key]; ok {
		return mask
	}
	mask := utils.BuildMask(rm.PlayerPixels(skin),
		config.PlayerWidth, config.PlayerHeight, config.MaskAlphaThreshold)
	rm.masks[key] = mask
	return mask
}

// ObstacleMask 返回指定 kind 的障碍物碰撞掩码（构建一次后缓存）
func (rm *ResourceManager) ObstacleMask(kind int) *utils.AlphaMask {
	key := obstacleKey(kind)
	if mask, ok := rm.masks[key]; ok {
		return mask
	}
	w, h := config.KindSize(kind)
	mask := utils.BuildMask(rm.ObstaclePixels(kind), w, h, config.MaskAlphaThreshold)
	rm.masks[key] = mask
	return mask
}

// ebitenImage 把像素数据转换成 ebiten.Image 并缓存
func (rm *ResourceManager) ebitenImage(key string, src *image.RGBA) *ebiten.Image {
	if img, ok := rm.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	rm.images[key] = img
	return img
}

// PlayerImage 返回指定皮肤的玩家绘制图像
func (rm *ResourceManager) PlayerImage(skin int) *ebiten.Image {
	return rm.ebitenImage(playerKey(skin), rm.PlayerPixels(skin))
}

// ObstacleImage 返回指定 kind 的障碍物绘制图像
func (rm *ResourceManager) ObstacleImage(kind int) *ebiten.Image {
	return rm.ebitenImage(obstacleKey(kind), rm.ObstaclePixels(kind))
}

// BackgroundImage 返回一屏背景图像
// storm 为 true 时返回风暴变体
func (rm *ResourceManager) BackgroundImage(storm bool) *ebiten.Image {
	key := fmt.Sprintf("background:storm=%v", storm)
	if img, ok := rm.images[key]; ok {
		return img
	}
	src := utils.BackgroundSprite(config.GameWindowWidth, config.GameWindowHeight, storm)
	img := ebiten.NewImageFromImage(src)
	rm.images[key] = img
	return img
}

// CloudImage 返回风暴乌云图像
func (rm *ResourceManager) CloudImage() *ebiten.Image {
	key := "cloud"
	if img, ok := rm.images[key]; ok {
		return img
	}
	src := utils.CloudSprite(config.CloudWidth, config.CloudHeight)
	img := ebiten.NewImageFromImage(src)
	rm.images[key] = img
	return img
}
