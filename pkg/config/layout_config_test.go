package config

import (
	"reflect"
	"strings"
	"testing"
)

// TestDefaultLayoutConfig 测试内置布局表的基本形状
func TestDefaultLayoutConfig(t *testing.T) {
	cfg := DefaultLayoutConfig()

	// 第 1 到 10 层都应有布局
	for level := 1; level <= 10; level++ {
		if len(cfg.LevelLayout(level)) == 0 {
			t.Errorf("level %d has no layout", level)
		}
	}

	// 第 5 层复用第 2 层的布局表
	if !reflect.DeepEqual(cfg.LevelLayout(5), cfg.LevelLayout(2)) {
		t.Error("level 5 should reuse level 2's layout")
	}

	// 全部描述合法
	if err := validateLayoutConfig(cfg); err != nil {
		t.Errorf("default layout invalid: %v", err)
	}
}

// TestLevelLayout_EdgeCases 测试层号边界情况
func TestLevelLayout_EdgeCases(t *testing.T) {
	cfg := DefaultLayoutConfig()

	if got := cfg.LevelLayout(0); got != nil {
		t.Errorf("LevelLayout(0) = %v, want nil", got)
	}
	if got := cfg.LevelLayout(-3); got != nil {
		t.Errorf("LevelLayout(-3) = %v, want nil", got)
	}
	// 未定义的层返回空布局而不是错误
	if got := cfg.LevelLayout(99); len(got) != 0 {
		t.Errorf("LevelLayout(99) = %v, want empty", got)
	}
}

// TestLoadLayoutConfig 测试从 YAML 解析布局表
func TestLoadLayoutConfig(t *testing.T) {
	data := []byte(`
levels:
  1:
    - { anchor: left, fracY: 0.5, kind: 0, category: static }
    - { fracX: 0.4, fracY: 0.2, kind: 2, category: wind }
`)
	cfg, err := LoadLayoutConfig(data)
	if err != nil {
		t.Fatalf("LoadLayoutConfig() error: %v", err)
	}

	layout := cfg.LevelLayout(1)
	if len(layout) != 2 {
		t.Fatalf("level 1 has %d descriptors, want 2", len(layout))
	}
	if layout[0].Anchor != AnchorLeft || layout[0].Category != CategoryStatic {
		t.Errorf("descriptor 0 = %+v", layout[0])
	}
	if layout[1].FracX == nil || *layout[1].FracX != 0.4 {
		t.Errorf("descriptor 1 fracX = %v, want 0.4", layout[1].FracX)
	}
	if layout[1].Category != CategoryWind {
		t.Errorf("descriptor 1 category = %q, want wind", layout[1].Category)
	}
}

// TestLoadLayoutConfig_Defaults 测试缺失字段的默认值填充
func TestLoadLayoutConfig_Defaults(t *testing.T) {
	data := []byte(`
levels:
  2:
    - { fracY: 0.3, kind: 1 }
`)
	cfg, err := LoadLayoutConfig(data)
	if err != nil {
		t.Fatalf("LoadLayoutConfig() error: %v", err)
	}

	d := cfg.LevelLayout(2)[0]
	if d.Category != CategoryStatic {
		t.Errorf("default category = %q, want static", d.Category)
	}
	if d.Anchor != AnchorLeft {
		t.Errorf("default anchor = %q, want left", d.Anchor)
	}
}

// TestLoadLayoutConfig_Invalid 测试非法布局表被拒绝
func TestLoadLayoutConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"YAML 语法错误",
			"levels: [not a map",
			"failed to parse",
		},
		{
			"层号非正",
			"levels:\n  0:\n    - { anchor: left, fracY: 0.5, kind: 0 }",
			"must be positive",
		},
		{
			"kind 越界",
			"levels:\n  1:\n    - { anchor: left, fracY: 0.5, kind: 99 }",
			"out of range",
		},
		{
			"未知类别",
			"levels:\n  1:\n    - { anchor: left, fracY: 0.5, kind: 0, category: ghost }",
			"unknown category",
		},
		{
			"未知锚定",
			"levels:\n  1:\n    - { anchor: sideways, fracY: 0.5, kind: 0 }",
			"unknown anchor",
		},
		{
			"fracX 越界",
			"levels:\n  1:\n    - { fracX: 1.5, fracY: 0.5, kind: 0 }",
			"fracX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLayoutConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestKindSize 测试外形尺寸表查询及越界回落
func TestKindSize(t *testing.T) {
	w, h := KindSize(1)
	if w != 84 || h != 64 {
		t.Errorf("KindSize(1) = (%d, %d), want (84, 64)", w, h)
	}

	// 越界 kind 回落到 kind 0
	w0, h0 := KindSize(0)
	if w, h := KindSize(-1); w != w0 || h != h0 {
		t.Errorf("KindSize(-1) = (%d, %d), want fallback (%d, %d)", w, h, w0, h0)
	}
	if w, h := KindSize(len(ObstacleKinds)); w != w0 || h != h0 {
		t.Errorf("KindSize(out of range) = (%d, %d), want fallback (%d, %d)", w, h, w0, h0)
	}
}
