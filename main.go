// Package main 是风暴攀登者（Storm Climber）的入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose     Enable verbose logging
//	--skip-menu   Skip the main menu and start climbing immediately
//
// Controls:
//
//	Left/A, Right/D  - Jump-dash left / right (press again mid-air)
//	Enter/Space      - Start game (menu)
//	M / T / S        - Toggle music / cycle track / cycle skin (menu)
//	R                - Restart after win or loss
//	F11              - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/stormclimber/pkg/app"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/game"
)

var (
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
	skipMenuFlag = flag.Bool("skip-menu", false, "Skip the main menu and start immediately")
)

func main() {
	flag.Parse()

	layoutYAML, err := dataFS.ReadFile("data/layouts.yaml")
	if err != nil {
		// 嵌入文件缺失只可能是构建问题；回落到内置布局表
		log.Printf("[Main] Warning: embedded layout table missing: %v", err)
		layoutYAML = nil
	}

	climberApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		LayoutYAML: layoutYAML,
		SkipMenu:   *skipMenuFlag,
	})
	if err != nil {
		log.Fatalf("[Main] Failed to initialize: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("风暴攀登者 Storm Climber")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(climberApp); err != nil {
		log.Fatal(err)
	}

	// 窗口关闭后给当前场景一次保存设置的机会
	if scene := climberApp.GetSceneManager().GetCurrentScene(); scene != nil {
		if saveable, ok := scene.(game.Saveable); ok {
			if !saveable.SaveOnExit() {
				log.Printf("[Main] Warning: failed to save settings on exit")
			}
		}
	}
}
