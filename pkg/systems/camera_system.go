package systems

import (
	"log"
	"math"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// CameraSystem 垂直卷动镜头系统
// 两种模式，转换单向（自由 → 锁定）：
//   - 自由模式：在屏幕空间死区 [CameraTopLockY, CameraBottomLockY] 内
//     跟随玩家，镜头偏移上限夹取为 0（画面不卷到起始屏以下）
//   - 锁定模式：到达 CameraLockLevel 层时进入；记录棘轮值，
//     镜头只升不降。玩家屏幕 y 超出屏幕底部 FallOffMargin 像素
//     判定坠落失败
//
// 每 tick 还负责推导当前关卡层并在到达 WinLevel 的同一 tick 判定胜利
type CameraSystem struct {
	em           *ecs.EntityManager
	gameState    *game.GameState
	playerEntity ecs.EntityID
	cameraEntity ecs.EntityID
}

// NewCameraSystem 创建镜头系统并初始化镜头实体
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState, playerEntity ecs.EntityID) *CameraSystem {
	cs := &CameraSystem{
		em:           em,
		gameState:    gs,
		playerEntity: playerEntity,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Y:           0,
		Locked:      false,
		MinYReached: 0,
	})

	return cs
}

// CameraEntity 返回镜头实体ID（供其他系统查询镜头组件）
func (cs *CameraSystem) CameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Camera 返回镜头组件
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	return cam
}

// Update 推进一个镜头 tick
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](cs.em, cs.playerEntity)
	if !ok {
		return
	}

	// 死区跟随：玩家屏幕 y 越过上界时镜头上移差额，
	// 越过下界时下移超额（锁定模式下的下移随后被棘轮抵消）
	screenY := utils.WorldToScreenY(player.Y, cam.Y)
	if screenY < config.CameraTopLockY {
		cam.Y -= config.CameraTopLockY - screenY
	} else if screenY > config.CameraBottomLockY {
		cam.Y += screenY - config.CameraBottomLockY
	}

	if !cam.Locked {
		// 自由模式：不卷到起始屏以下
		if cam.Y > 0 {
			cam.Y = 0
		}

		// 到达锁定层后单向进入锁定模式
		if utils.LevelForCameraY(cam.Y, config.TileHeight) >= config.CameraLockLevel {
			cam.Locked = true
			cam.MinYReached = cam.Y
			log.Printf("[CameraSystem] 镜头锁定，棘轮起点 %.1f", cam.MinYReached)
		}
	} else {
		// 锁定模式：棘轮，只升不降
		cam.MinYReached = math.Min(cam.MinYReached, cam.Y)
		cam.Y = math.Min(cam.Y, cam.MinYReached)

		// 坠出屏幕底部判定失败
		playerScreenY := utils.WorldToScreenY(player.Y, cam.Y)
		if playerScreenY > float64(config.GameWindowHeight)+config.FallOffMargin {
			log.Printf("[CameraSystem] 玩家坠落（屏幕 y %.1f），游戏结束", playerScreenY)
			cs.gameState.Finish(false)
			return
		}
	}

	// 推导当前关卡层并在到达目标层的同一 tick 判定胜利
	level := utils.LevelForCameraY(cam.Y, config.TileHeight)
	cs.gameState.CurrentLevel = level
	if level > cs.gameState.HighestLevel {
		cs.gameState.HighestLevel = level
	}
	if level >= config.WinLevel {
		log.Printf("[CameraSystem] 到达第 %d 层，胜利", level)
		cs.gameState.Finish(true)
	}
}
