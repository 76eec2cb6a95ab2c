// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：创建持久化存储、音频上下文、
// 资源与布局配置，并把场景接线到 ebiten 的游戏循环上。
package app

import (
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LayoutYAML 障碍物布局表数据（通常来自嵌入的 data/layouts.yaml）
	// 为空或解析失败时回落到内置布局表
	LayoutYAML []byte
	// SkipMenu 跳过主菜单直接开始游戏（调试用）
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	lastUpdate   time.Time
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 持久化存储；打开失败进入降级模式（设置只存内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "stormclimber"})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 音频上下文和管理器
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)

	// 资源管理器（程序化精灵 + 掩码缓存）
	resourceManager := game.NewResourceManager()

	// 布局表：嵌入的 YAML 优先，失败回落内置表
	layouts := config.DefaultLayoutConfig()
	if len(cfg.LayoutYAML) > 0 {
		loaded, err := config.LoadLayoutConfig(cfg.LayoutYAML)
		if err != nil {
			log.Printf("[App] Warning: %v (using built-in layouts)", err)
		} else {
			layouts = loaded
			log.Printf("[App] 已加载布局表，共 %d 个关卡层", len(loaded.Levels))
		}
	}

	// 场景管理器：工厂按当前皮肤设置创建新的一局
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		skin := settingsManager.GetSettings().SkinIndex
		return scenes.NewGameScene(resourceManager, sceneManager, layouts, skin)
	})

	if cfg.SkipMenu {
		sceneManager.StartNewGame()
	} else {
		menu := scenes.NewMainMenuScene(resourceManager, sceneManager, settingsManager, audioManager)
		sceneManager.SwitchTo(menu)
	}

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
// deltaTime 按墙钟时间计算并夹取到 MaxDeltaTime，
// 零或负的 deltaTime（重复时间戳）当作空 tick 跳过
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	now := time.Now()
	if a.lastUpdate.IsZero() {
		a.lastUpdate = now
		return nil
	}
	deltaTime := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	if deltaTime <= 0 {
		return nil
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}

	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
