package systems

import (
	"log"
	"math"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/game"
)

// CollisionSystem 碰撞检测系统
// 每 tick 把玩家掩码和所有在册障碍物的掩码做逐像素检测，
// 命中第一个即终止模拟（本局失败）
//
// 共享坐标系：水平方向玩家和障碍物都用屏幕相对坐标，
// 垂直方向都用世界坐标，可以直接比较
type CollisionSystem struct {
	em              *ecs.EntityManager
	resourceManager *game.ResourceManager
	gameState       *game.GameState
	playerEntity    ecs.EntityID
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, rm *game.ResourceManager, gs *game.GameState, playerEntity ecs.EntityID) *CollisionSystem {
	return &CollisionSystem{
		em:              em,
		resourceManager: rm,
		gameState:       gs,
		playerEntity:    playerEntity,
	}
}

// Update 对玩家和全部障碍物做一轮碰撞检测
func (cs *CollisionSystem) Update(dt float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](cs.em, cs.playerEntity)
	if !ok {
		return
	}

	playerMask := cs.resourceManager.PlayerMask(cs.gameState.SkinIndex)
	px := int(math.Round(player.X))
	py := int(math.Round(player.Y))

	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](cs.em) {
		obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](cs.em, id)
		if !ok {
			continue
		}

		obstacleMask := cs.resourceManager.ObstacleMask(obstacle.Kind)
		ox := int(math.Round(obstacle.X))
		oy := int(math.Round(obstacle.Y))

		if playerMask.Collides(px, py, obstacleMask, ox, oy) {
			log.Printf("[CollisionSystem] 玩家撞到障碍物 #%d（kind %d），游戏结束", obstacle.ID, obstacle.Kind)
			cs.gameState.Finish(false)
			return
		}
	}
}
