package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// 障碍物布局配置
// 每个关卡层对应一张静态布局表，描述该层生成哪些障碍物、
// 放在哪里。布局表内置默认值，也可通过 data/layouts.yaml 覆盖。

// 障碍物类别
const (
	// CategoryStatic 静态障碍物，首次可见时即出现在最终位置
	CategoryStatic = "static"
	// CategoryWind 风类障碍物，从屏幕外飞入后停在目标位置
	CategoryWind = "wind"
)

// 水平锚定方式
const (
	AnchorLeft   = "left"
	AnchorRight  = "right"
	AnchorCenter = "center"
)

// ObstacleKindInfo 障碍物外形表项
// Kind 索引到这张表取精灵尺寸
type ObstacleKindInfo struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ObstacleKinds 障碍物外形尺寸表（按 kind 索引）
var ObstacleKinds = []ObstacleKindInfo{
	{Name: "branch", Width: 132, Height: 36},
	{Name: "rock", Width: 84, Height: 64},
	{Name: "gust", Width: 96, Height: 48},
	{Name: "crate", Width: 72, Height: 72},
}

// KindSize 返回指定 kind 的精灵尺寸
// 越界的 kind 回落到 kind 0
func KindSize(kind int) (width, height int) {
	if kind < 0 || kind >= len(ObstacleKinds) {
		kind = 0
	}
	return ObstacleKinds[kind].Width, ObstacleKinds[kind].Height
}

// SpawnDescriptor 单个障碍物的生成描述
// 水平位置二选一：FracX 非 nil 时按屏幕宽度比例放置，
// 否则按 Anchor 边缘锚定
type SpawnDescriptor struct {
	Anchor   string   `yaml:"anchor"`   // "left" / "right" / "center"
	FracX    *float64 `yaml:"fracX"`    // 屏幕宽度比例 0~1，可选
	FracY    float64  `yaml:"fracY"`    // 层内垂直位置比例 0~1
	Kind     int      `yaml:"kind"`     // ObstacleKinds 表索引
	Category string   `yaml:"category"` // "static" / "wind"
}

// LayoutConfig 全部关卡层的布局表
type LayoutConfig struct {
	Levels map[int][]SpawnDescriptor `yaml:"levels"`
}

func fracX(v float64) *float64 { return &v }

// DefaultLayoutConfig 返回内置布局表
// 第 5 层复用第 2 层的布局表；未列出的层视为空布局
func DefaultLayoutConfig() *LayoutConfig {
	levels := map[int][]SpawnDescriptor{
		1: {
			{Anchor: AnchorLeft, FracY: 0.55, Kind: 0, Category: CategoryStatic},
			{Anchor: AnchorRight, FracY: 0.25, Kind: 0, Category: CategoryStatic},
		},
		2: {
			{Anchor: AnchorRight, FracY: 0.70, Kind: 1, Category: CategoryStatic},
			{FracX: fracX(0.35), FracY: 0.40, Kind: 2, Category: CategoryWind},
			{Anchor: AnchorLeft, FracY: 0.12, Kind: 0, Category: CategoryStatic},
		},
		3: {
			{FracX: fracX(0.20), FracY: 0.65, Kind: 2, Category: CategoryWind},
			{FracX: fracX(0.70), FracY: 0.30, Kind: 2, Category: CategoryWind},
		},
		4: {
			{Anchor: AnchorCenter, FracY: 0.80, Kind: 3, Category: CategoryStatic},
			{Anchor: AnchorLeft, FracY: 0.45, Kind: 1, Category: CategoryStatic},
			{FracX: fracX(0.55), FracY: 0.15, Kind: 2, Category: CategoryWind},
		},
		6: {
			{Anchor: AnchorRight, FracY: 0.60, Kind: 0, Category: CategoryStatic},
			{FracX: fracX(0.40), FracY: 0.28, Kind: 2, Category: CategoryWind},
		},
		7: {
			{FracX: fracX(0.15), FracY: 0.75, Kind: 2, Category: CategoryWind},
			{Anchor: AnchorCenter, FracY: 0.50, Kind: 1, Category: CategoryStatic},
			{FracX: fracX(0.80), FracY: 0.20, Kind: 2, Category: CategoryWind},
		},
		8: {
			{Anchor: AnchorLeft, FracY: 0.66, Kind: 3, Category: CategoryStatic},
			{Anchor: AnchorRight, FracY: 0.38, Kind: 3, Category: CategoryStatic},
			{FracX: fracX(0.50), FracY: 0.10, Kind: 2, Category: CategoryWind},
		},
		9: {
			{FracX: fracX(0.30), FracY: 0.72, Kind: 2, Category: CategoryWind},
			{FracX: fracX(0.65), FracY: 0.44, Kind: 2, Category: CategoryWind},
			{Anchor: AnchorLeft, FracY: 0.18, Kind: 0, Category: CategoryStatic},
		},
		10: {
			{Anchor: AnchorRight, FracY: 0.78, Kind: 1, Category: CategoryStatic},
			{FracX: fracX(0.45), FracY: 0.52, Kind: 2, Category: CategoryWind},
			{Anchor: AnchorCenter, FracY: 0.24, Kind: 0, Category: CategoryStatic},
			{FracX: fracX(0.12), FracY: 0.06, Kind: 2, Category: CategoryWind},
		},
	}
	// 第 5 层复用第 2 层的布局表
	levels[5] = levels[2]

	return &LayoutConfig{Levels: levels}
}

// LoadLayoutConfig 从 YAML 数据解析布局表
// 解析或校验失败时返回错误，调用方应回落到 DefaultLayoutConfig
func LoadLayoutConfig(data []byte) (*LayoutConfig, error) {
	var cfg LayoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout config YAML: %w", err)
	}

	applyLayoutDefaults(&cfg)

	if err := validateLayoutConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid layout config: %w", err)
	}

	return &cfg, nil
}

// applyLayoutDefaults 为缺失的可选字段设置默认值
func applyLayoutDefaults(cfg *LayoutConfig) {
	if cfg.Levels == nil {
		cfg.Levels = make(map[int][]SpawnDescriptor)
	}

	for level, descs := range cfg.Levels {
		for i := range descs {
			// 类别缺省为静态障碍物
			if descs[i].Category == "" {
				descs[i].Category = CategoryStatic
			}
			// 既无 fracX 也无锚定时，缺省左锚定
			if descs[i].FracX == nil && descs[i].Anchor == "" {
				descs[i].Anchor = AnchorLeft
			}
		}
		cfg.Levels[level] = descs
	}
}

// validateLayoutConfig 验证布局表的合法性
func validateLayoutConfig(cfg *LayoutConfig) error {
	for level, descs := range cfg.Levels {
		if level <= 0 {
			return fmt.Errorf("level index must be positive, got %d", level)
		}
		for i, d := range descs {
			if d.Kind < 0 || d.Kind >= len(ObstacleKinds) {
				return fmt.Errorf("level %d descriptor %d: kind %d out of range [0, %d)",
					level, i, d.Kind, len(ObstacleKinds))
			}
			if d.Category != CategoryStatic && d.Category != CategoryWind {
				return fmt.Errorf("level %d descriptor %d: unknown category %q", level, i, d.Category)
			}
			if d.FracX != nil {
				if *d.FracX < 0 || *d.FracX > 1 {
					return fmt.Errorf("level %d descriptor %d: fracX %.3f out of range [0, 1]", level, i, *d.FracX)
				}
			} else {
				switch d.Anchor {
				case AnchorLeft, AnchorRight, AnchorCenter:
				default:
					return fmt.Errorf("level %d descriptor %d: unknown anchor %q", level, i, d.Anchor)
				}
			}
		}
	}
	return nil
}

// LevelLayout 返回指定关卡层的布局表
// 层号为 0、负数或未定义时返回空布局（不是错误）
func (lc *LayoutConfig) LevelLayout(level int) []SpawnDescriptor {
	if level <= 0 {
		return nil
	}
	return lc.Levels[level]
}
