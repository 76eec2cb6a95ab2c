package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// CutsceneSystem 风暴过场状态机
// 阶段流转：
//
//	none → panUpToCloud → lightningStrike → fadeToStorm → panBackToPlayer → none
//
// 过场激活时独占镜头和覆盖层参数；正常模拟（物理、生成、碰撞）
// 被调用方短路，方向输入在输入层被忽略。
// 一次性 Done 标志保证整局只触发一次。
//
// 阶段时长是模拟时间预算而非墙钟期限：tick 推进多慢都只是
// 过场变慢，不会出错。
type CutsceneSystem struct {
	em             *ecs.EntityManager
	gameState      *game.GameState
	playerEntity   ecs.EntityID
	cameraEntity   ecs.EntityID
	cutsceneEntity ecs.EntityID
	rng            *rand.Rand
}

// NewCutsceneSystem 创建过场系统并初始化过场状态实体
func NewCutsceneSystem(em *ecs.EntityManager, gs *game.GameState, playerEntity, cameraEntity ecs.EntityID) *CutsceneSystem {
	cs := &CutsceneSystem{
		em:           em,
		gameState:    gs,
		playerEntity: playerEntity,
		cameraEntity: cameraEntity,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	cs.cutsceneEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cutsceneEntity, &components.CutsceneComponent{
		Phase: components.CutscenePhaseNone,
	})

	return cs
}

// CutsceneEntity 返回过场状态实体ID（渲染系统接线用）
func (cs *CutsceneSystem) CutsceneEntity() ecs.EntityID {
	return cs.cutsceneEntity
}

// State 返回过场状态组件（渲染系统读取覆盖层参数）
func (cs *CutsceneSystem) State() *components.CutsceneComponent {
	state, _ := ecs.GetComponent[*components.CutsceneComponent](cs.em, cs.cutsceneEntity)
	return state
}

// Active 返回过场是否正在进行
func (cs *CutsceneSystem) Active() bool {
	state := cs.State()
	return state != nil && state.Phase != components.CutscenePhaseNone
}

// TryStart 检查入口条件并在满足时启动过场
// 条件：过场未进行且未完成过，当前层等于风暴层，
// 且玩家世界 y 已越过该层的触发比例位置
//
// 返回是否刚刚启动
func (cs *CutsceneSystem) TryStart() bool {
	state := cs.State()
	if state == nil || state.Phase != components.CutscenePhaseNone || state.Done {
		return false
	}
	if cs.gameState.CurrentLevel != config.StormLevel {
		return false
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](cs.em, cs.playerEntity)
	if !ok {
		return false
	}
	triggerY := utils.LevelTopWorldY(config.StormLevel, config.TileHeight) +
		config.StormTriggerFraction*config.TileHeight
	if player.Y > triggerY {
		return false
	}

	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return false
	}

	// 冻结玩家，过场期间不接受输入也不积分
	player.VX = 0
	player.VY = 0

	// 平移目标：风暴层顶部；夹取在风暴层范围内，不越入相邻层
	levelTop := utils.LevelTopWorldY(config.StormLevel, config.TileHeight)
	target := utils.Clamp(levelTop, levelTop, levelTop+config.TileHeight)

	state.Phase = components.CutscenePhasePanUpToCloud
	state.Elapsed = 0
	state.PanFromY = cam.Y
	state.PanToY = target
	state.CloudAlpha = 0
	state.FlashAlpha = 0
	state.LightningAlpha = 0
	state.StormAlpha = 0
	state.Lightning = nil
	state.CloudFadingOut = false
	state.CloudFadeTimer = 0

	log.Printf("[CutsceneSystem] 风暴过场启动，镜头 %.1f → %.1f", state.PanFromY, state.PanToY)
	return true
}

// Update 推进一个过场 tick
// 过场未激活时为空操作
func (cs *CutsceneSystem) Update(dt float64) {
	state := cs.State()
	if state == nil || state.Phase == components.CutscenePhaseNone {
		return
	}
	if dt < 0 {
		dt = 0
	}

	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return
	}

	// 白闪和闪电按各自的独立计时衰减，不受阶段切换约束
	if state.FlashAlpha > 0 {
		state.FlashAlpha = utils.Clamp(state.FlashAlpha-dt/config.FlashDecayDuration, 0, 1)
	}
	if state.LightningAlpha > 0 {
		state.LightningAlpha = utils.Clamp(state.LightningAlpha-dt/config.LightningDecayDuration, 0, 1)
	}

	// 乌云淡出独立计时（fadeToStorm 完成后启动，跨阶段继续）
	if state.CloudFadingOut {
		state.CloudFadeTimer += dt
		state.CloudAlpha = utils.Clamp(1-state.CloudFadeTimer/config.CloudFadeOutDuration, 0, 1)
		if state.CloudAlpha == 0 {
			state.CloudFadingOut = false
		}
	}

	state.Elapsed += dt

	switch state.Phase {
	case components.CutscenePhasePanUpToCloud:
		t := utils.Clamp(state.Elapsed/config.CutscenePanUpDuration, 0, 1)
		eased := utils.SmoothStep(t)
		cam.Y = utils.Lerp(state.PanFromY, state.PanToY, eased)
		state.CloudAlpha = eased
		if state.Elapsed >= config.CutscenePanUpDuration {
			// 生成闪电折线并点亮白闪
			state.Lightning = cs.generateLightning()
			state.FlashAlpha = 1
			state.LightningAlpha = 1
			cs.enterPhase(state, components.CutscenePhaseLightningStrike)
		}

	case components.CutscenePhaseLightningStrike:
		cam.Y = state.PanToY
		if state.Elapsed >= config.CutsceneLightningDuration {
			cs.enterPhase(state, components.CutscenePhaseFadeToStorm)
		}

	case components.CutscenePhaseFadeToStorm:
		cam.Y = state.PanToY
		t := utils.Clamp(state.Elapsed/config.CutsceneFadeDuration, 0, 1)
		state.StormAlpha = utils.SmoothStep(t)
		if state.Elapsed >= config.CutsceneFadeDuration {
			// 风暴背景永久生效；乌云开始独立淡出
			state.StormApplied = true
			state.CloudFadingOut = true
			state.CloudFadeTimer = 0
			log.Printf("[CutsceneSystem] 风暴背景已生效")
			cs.enterPhase(state, components.CutscenePhasePanBackToPlayer)
		}

	case components.CutscenePhasePanBackToPlayer:
		t := utils.Clamp(state.Elapsed/config.CutscenePanBackDuration, 0, 1)
		eased := utils.SmoothStep(t)
		cam.Y = utils.Lerp(state.PanToY, state.PanFromY, eased)
		if state.Elapsed >= config.CutscenePanBackDuration {
			cam.Y = state.PanFromY
			state.Phase = components.CutscenePhaseNone
			state.Done = true
			// 清零全部残留覆盖层
			state.CloudAlpha = 0
			state.FlashAlpha = 0
			state.LightningAlpha = 0
			state.Lightning = nil
			state.CloudFadingOut = false
			log.Printf("[CutsceneSystem] 风暴过场结束")
		}
	}
}

// enterPhase 切换阶段并重置阶段计时
func (cs *CutsceneSystem) enterPhase(state *components.CutsceneComponent, phase components.CutscenePhase) {
	log.Printf("[CutsceneSystem] 阶段 %s → %s", state.Phase, phase)
	state.Phase = phase
	state.Elapsed = 0
}

// generateLightning 生成乌云底部到屏幕下方的锯齿折线
// 顶点垂直等距分布，每段带随机水平偏移
func (cs *CutsceneSystem) generateLightning() []components.LightningPoint {
	startX := float64(config.GameWindowWidth) / 2
	startY := float64(config.CloudHeight) * 0.8
	endY := float64(config.GameWindowHeight) - 60

	points := make([]components.LightningPoint, 0, config.LightningSegments+1)
	points = append(points, components.LightningPoint{X: startX, Y: startY})

	for i := 1; i <= config.LightningSegments; i++ {
		t := float64(i) / float64(config.LightningSegments)
		jitter := (cs.rng.Float64()*2 - 1) * config.LightningJitter
		points = append(points, components.LightningPoint{
			X: startX + jitter,
			Y: utils.Lerp(startY, endY, t),
		})
	}

	return points
}
