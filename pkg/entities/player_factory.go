package entities

import (
	"fmt"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家出生在屏幕水平居中、约 65% 屏高处，初速度为零
//
// 参数:
//   - em: 实体管理器
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
//   - error: 如果创建失败返回错误信息
func NewPlayer(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		X: float64(config.GameWindowWidth) / 2,
		Y: float64(config.GameWindowHeight) * 0.65,
	})

	// 输入意图组件，由输入系统每 tick 写入
	ecs.AddComponent(em, entityID, &components.InputComponent{})

	return entityID, nil
}
