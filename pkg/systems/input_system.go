package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/ecs"
)

// InputSystem 输入系统
// 每 tick 读取键盘状态并写入玩家实体的 InputComponent。
// 左右方向键和 A/D 等价；"刚按下"与"按住"由 inpututil 区分，
// 物理系统据此决定是触发新的起跳还是只维持水平速度。
//
// 过场期间本系统不被调用，方向输入在输入层即被忽略。
type InputSystem struct {
	em           *ecs.EntityManager
	playerEntity ecs.EntityID
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, playerEntity ecs.EntityID) *InputSystem {
	return &InputSystem{
		em:           em,
		playerEntity: playerEntity,
	}
}

// Update 采样当前帧的键盘状态
func (is *InputSystem) Update(dt float64) {
	input, ok := ecs.GetComponent[*components.InputComponent](is.em, is.playerEntity)
	if !ok {
		return
	}

	input.LeftHeld = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	input.RightHeld = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	input.LeftJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
	input.RightJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
}

// ClearInput 清空玩家的输入意图
// 过场接管时调用，避免残留的按键状态在过场结束后生效
func (is *InputSystem) ClearInput() {
	if input, ok := ecs.GetComponent[*components.InputComponent](is.em, is.playerEntity); ok {
		input.Reset()
	}
}
