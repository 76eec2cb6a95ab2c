package systems

import (
	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
)

// PhysicsSystem 物理积分系统
// 每个模拟 tick 推进玩家的位置和速度：
//   - 垂直速度在恒定重力下积分（先加速度后位移）
//   - 水平速度由按键意图直接设置，不做积分
//   - 镜头锁定前，落到地面线时贴地并清零垂直速度；
//     锁定后不再贴地，坠落交由镜头系统判定失败
//
// dt 为零或负数时本 tick 视为空操作（重复时间戳等退化情况），
// 超过上限的 dt 被夹取（吸收卡顿），两者都不是错误。
type PhysicsSystem struct {
	em           *ecs.EntityManager
	playerEntity ecs.EntityID
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, playerEntity ecs.EntityID) *PhysicsSystem {
	return &PhysicsSystem{
		em:           em,
		playerEntity: playerEntity,
	}
}

// Update 推进一个物理 tick
func (ps *PhysicsSystem) Update(dt float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](ps.em, ps.playerEntity)
	if !ok {
		return
	}

	// 按键意图先于积分生效：起跳的速度变化立即可见
	if input, ok := ecs.GetComponent[*components.InputComponent](ps.em, ps.playerEntity); ok {
		ps.applyInput(player, input)
	}

	// 退化 dt：跳过本 tick 的积分
	if dt <= 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}

	// 1. 重力积分（先加速度）
	player.VY += config.Gravity * dt

	// 2. 垂直位移
	player.Y += player.VY * dt

	// 3. 水平位移并夹取到屏幕内
	player.X += player.VX * dt
	maxX := float64(config.GameWindowWidth - config.PlayerWidth)
	if player.X < 0 {
		player.X = 0
	} else if player.X > maxX {
		player.X = maxX
	}

	// 4. 锁定前贴地；锁定后坠落由镜头系统判定
	if !ps.cameraLocked() && player.Y > config.GroundY {
		player.Y = config.GroundY
		player.VY = 0
	}

	// 飞行姿态倒计时（仅动画用）
	if player.FlyPoseTimer > 0 {
		player.FlyPoseTimer -= dt
		if player.FlyPoseTimer < 0 {
			player.FlyPoseTimer = 0
		}
	}
}

// applyInput 把按键意图换算成速度
// 刚按下触发斜向起跳；仅按住只维持水平速度；
// 同时按住两个方向或都不按时水平速度归零
func (ps *PhysicsSystem) applyInput(player *components.PlayerComponent, input *components.InputComponent) {
	switch {
	case input.LeftJustPressed:
		player.VY = config.JumpImpulseVY
		player.VX = -config.SideSpeed
		player.FacingLeft = true
		player.FlyPoseTimer = config.FlyPoseDuration
	case input.RightJustPressed:
		player.VY = config.JumpImpulseVY
		player.VX = config.SideSpeed
		player.FacingLeft = false
		player.FlyPoseTimer = config.FlyPoseDuration
	case input.LeftHeld && input.RightHeld:
		player.VX = 0
	case input.LeftHeld:
		player.VX = -config.SideSpeed
		player.FacingLeft = true
	case input.RightHeld:
		player.VX = config.SideSpeed
		player.FacingLeft = false
	default:
		player.VX = 0
	}
}

// cameraLocked 查询镜头是否处于锁定模式
func (ps *PhysicsSystem) cameraLocked() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](ps.em) {
		if cam, ok := ecs.GetComponent[*components.CameraComponent](ps.em, id); ok {
			return cam.Locked
		}
	}
	return false
}
