// Package utils 提供通用工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换工具。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **世界坐标**：垂直方向无界，y 向上递减（爬得越高 y 越小）
//   - **屏幕坐标**：可见视口内的坐标，screenY = worldY - cameraY
//   - **关卡层（tile）**：一屏高度的世界空间纵向条带，
//     按高出起点多少屏计数（起始屏为第 0 层）
//
// 镜头只在垂直方向移动，水平坐标在两个坐标系中一致。
package utils

import "math"

// WorldToScreenY 世界纵坐标转屏幕纵坐标
func WorldToScreenY(worldY, cameraY float64) float64 {
	return worldY - cameraY
}

// ScreenToWorldY 屏幕纵坐标转世界纵坐标
func ScreenToWorldY(screenY, cameraY float64) float64 {
	return screenY + cameraY
}

// LevelForCameraY 根据镜头偏移推导当前关卡层
// 公式：level = -floor(cameraY / tileHeight)
// cameraY = 0 时为第 0 层，镜头每上移一屏层数加一
func LevelForCameraY(cameraY, tileHeight float64) int {
	return -int(math.Floor(cameraY / tileHeight))
}

// LevelTopWorldY 返回指定关卡层顶部的世界纵坐标
// 第 L 层占据世界空间 [-L*tileHeight, -(L-1)*tileHeight)
func LevelTopWorldY(level int, tileHeight float64) float64 {
	return -float64(level) * tileHeight
}

// LevelForWorldY 根据世界纵坐标推导所在关卡层
func LevelForWorldY(worldY, tileHeight float64) int {
	return -int(math.Floor(worldY / tileHeight))
}
