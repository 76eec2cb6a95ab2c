package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// MainMenuScene 主菜单场景
// 标题画面，支持键盘调整设置并开始游戏：
//
//	Enter/Space 开始游戏
//	M           音乐开关
//	T           切换音乐曲目
//	S           切换玩家皮肤
//
// 每次改动立即写入 SettingsManager 并持久化
type MainMenuScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(rm *game.ResourceManager, sm *game.SceneManager,
	settings *game.SettingsManager, am *game.AudioManager) *MainMenuScene {

	scene := &MainMenuScene{
		resourceManager: rm,
		sceneManager:    sm,
		settingsManager: settings,
		audioManager:    am,
	}

	// 按已保存的设置恢复背景音乐
	if settings.GetSettings().MusicEnabled {
		am.PlayMusic(settings.GetSettings().MusicTrack)
	}

	return scene
}

// Update 处理菜单输入
func (s *MainMenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sceneManager.StartNewGame()
		return
	}

	settings := s.settingsManager.GetSettings()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.settingsManager.SetMusicEnabled(!settings.MusicEnabled)
		if settings.MusicEnabled {
			s.audioManager.PlayMusic(settings.MusicTrack)
		} else {
			s.audioManager.PauseMusic()
		}
		s.save()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.settingsManager.SetMusicTrack(settings.MusicTrack+1, game.MusicTrackCount())
		if settings.MusicEnabled {
			s.audioManager.PlayMusic(settings.MusicTrack)
		}
		s.save()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.settingsManager.SetSkinIndex(settings.SkinIndex+1, utils.PlayerSkinCount())
		s.save()
	}
}

// save 持久化设置，失败只记日志
func (s *MainMenuScene) save() {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[MainMenuScene] 保存设置失败: %v", err)
	}
}

// SaveOnExit 窗口关闭时持久化设置
func (s *MainMenuScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[MainMenuScene] 退出时保存设置失败: %v", err)
		return false
	}
	return true
}

// Draw 绘制菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.resourceManager.BackgroundImage(false), &ebiten.DrawImageOptions{})

	// 皮肤预览
	settings := s.settingsManager.GetSettings()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(
		float64(config.GameWindowWidth)/2-float64(config.PlayerWidth),
		float64(config.GameWindowHeight)*0.42)
	screen.DrawImage(s.resourceManager.PlayerImage(settings.SkinIndex), op)

	music := "ON"
	if !settings.MusicEnabled {
		music = "OFF"
	}

	ebitenutil.DebugPrintAt(screen, "STORM CLIMBER",
		config.GameWindowWidth/2-50, config.GameWindowHeight/4)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("[M] MUSIC: %s   [T] TRACK: %d   [S] SKIN: %d",
			music, settings.MusicTrack, settings.SkinIndex),
		config.GameWindowWidth/2-140, config.GameWindowHeight*3/4)
	ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO CLIMB",
		config.GameWindowWidth/2-75, config.GameWindowHeight*3/4+24)
}
