package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// RenderSystem 渲染系统
// 模拟核心每 tick 产出的值（玩家位置、镜头偏移、障碍物列表、
// 过场覆盖层参数）在这里被绘制成一帧画面。
// 本系统只读模拟状态，不做任何修改。
type RenderSystem struct {
	em              *ecs.EntityManager
	resourceManager *game.ResourceManager
	gameState       *game.GameState
	playerEntity    ecs.EntityID
	cameraEntity    ecs.EntityID
	cutsceneEntity  ecs.EntityID
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, gs *game.GameState,
	playerEntity, cameraEntity, cutsceneEntity ecs.EntityID) *RenderSystem {
	return &RenderSystem{
		em:              em,
		resourceManager: rm,
		gameState:       gs,
		playerEntity:    playerEntity,
		cameraEntity:    cameraEntity,
		cutsceneEntity:  cutsceneEntity,
	}
}

// Draw 绘制一帧
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](rs.em, rs.cameraEntity)
	if !ok {
		return
	}
	cutscene, _ := ecs.GetComponent[*components.CutsceneComponent](rs.em, rs.cutsceneEntity)

	rs.drawBackgrounds(screen, cam.Y, cutscene)
	rs.drawObstacles(screen, cam.Y)
	rs.drawPlayer(screen, cam.Y)
	if cutscene != nil {
		rs.drawCutsceneOverlays(screen, cutscene)
	}
	rs.drawHUD(screen)
}

// drawBackgrounds 按可见关卡层绘制背景
// 风暴背景永久生效后，风暴层的背景替换为风暴变体
func (rs *RenderSystem) drawBackgrounds(screen *ebiten.Image, cameraY float64, cutscene *components.CutsceneComponent) {
	stormApplied := cutscene != nil && cutscene.StormApplied

	topBand := utils.LevelForWorldY(cameraY, config.TileHeight)
	bottomBand := utils.LevelForWorldY(cameraY+float64(config.GameWindowHeight)-1, config.TileHeight)

	for band := bottomBand; band <= topBand; band++ {
		storm := stormApplied && band == config.StormLevel
		bg := rs.resourceManager.BackgroundImage(storm)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, utils.LevelTopWorldY(band, config.TileHeight)-cameraY)
		screen.DrawImage(bg, op)
	}
}

// drawObstacles 绘制全部在册障碍物
// 风类障碍物入场期间按进度渐显
func (rs *RenderSystem) drawObstacles(screen *ebiten.Image, cameraY float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](rs.em) {
		o, ok := ecs.GetComponent[*components.ObstacleComponent](rs.em, id)
		if !ok || o.Opacity <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X, utils.WorldToScreenY(o.Y, cameraY))
		op.ColorScale.ScaleAlpha(float32(o.Opacity))
		screen.DrawImage(rs.resourceManager.ObstacleImage(o.Kind), op)
	}
}

// drawPlayer 绘制玩家
// 朝向决定水平翻转，飞行姿态带轻微倾斜
func (rs *RenderSystem) drawPlayer(screen *ebiten.Image, cameraY float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](rs.em, rs.playerEntity)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if player.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(config.PlayerWidth), 0)
	}
	if player.FlyPoseTimer > 0 {
		tilt := 0.18
		if player.FacingLeft {
			tilt = -tilt
		}
		op.GeoM.Translate(-float64(config.PlayerWidth)/2, -float64(config.PlayerHeight)/2)
		op.GeoM.Rotate(tilt)
		op.GeoM.Translate(float64(config.PlayerWidth)/2, float64(config.PlayerHeight)/2)
	}
	op.GeoM.Translate(player.X, utils.WorldToScreenY(player.Y, cameraY))
	screen.DrawImage(rs.resourceManager.PlayerImage(rs.gameState.SkinIndex), op)
}

// drawCutsceneOverlays 绘制过场覆盖层
// 乌云、风暴交叉淡化、闪电折线和全屏白闪按各自的混合值绘制
func (rs *RenderSystem) drawCutsceneOverlays(screen *ebiten.Image, state *components.CutsceneComponent) {
	// 风暴背景交叉淡化（fadeToStorm 阶段；生效后由背景选择逻辑接管）
	if state.StormAlpha > 0 && !state.StormApplied {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(state.StormAlpha))
		screen.DrawImage(rs.resourceManager.BackgroundImage(true), op)
	}

	// 乌云（屏幕顶部居中）
	if state.CloudAlpha > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(config.GameWindowWidth-config.CloudWidth)/2, 16)
		op.ColorScale.ScaleAlpha(float32(state.CloudAlpha))
		screen.DrawImage(rs.resourceManager.CloudImage(), op)
	}

	// 闪电折线
	if state.LightningAlpha > 0 && len(state.Lightning) > 1 {
		alpha := uint8(state.LightningAlpha * 255)
		c := color.RGBA{255, 255, 220, alpha}
		for i := 1; i < len(state.Lightning); i++ {
			p0 := state.Lightning[i-1]
			p1 := state.Lightning[i]
			vector.StrokeLine(screen,
				float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
				3, c, true)
		}
	}

	// 全屏白闪
	if state.FlashAlpha > 0 {
		alpha := uint8(state.FlashAlpha * 255)
		vector.DrawFilledRect(screen, 0, 0,
			float32(config.GameWindowWidth), float32(config.GameWindowHeight),
			color.RGBA{255, 255, 255, alpha}, false)
	}
}

// drawHUD 绘制层数指示和终局提示
func (rs *RenderSystem) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("LEVEL %d / %d", rs.gameState.CurrentLevel, config.WinLevel), 8, 8)

	if rs.gameState.GameWon {
		ebitenutil.DebugPrintAt(screen, "YOU MADE IT! PRESS R TO PLAY AGAIN",
			config.GameWindowWidth/2-110, config.GameWindowHeight/2)
	} else if rs.gameState.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - PRESS R TO RETRY",
			config.GameWindowWidth/2-90, config.GameWindowHeight/2)
	}
}
