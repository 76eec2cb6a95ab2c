package entities

import (
	"fmt"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/ecs"
)

// NewStaticObstacle 创建静态障碍物实体
// 静态障碍物创建时即处于最终位置，完全不透明
//
// 参数:
//   - em: 实体管理器
//   - id: 单调递增的障碍物编号
//   - x: 屏幕相对横坐标
//   - y: 世界纵坐标
//   - kind: 外形表索引
//   - level: 所属关卡层
func NewStaticObstacle(em *ecs.EntityManager, id uint64, x, y float64, kind, level int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.ObstacleComponent{
		ID:       id,
		X:        x,
		Y:        y,
		Kind:     kind,
		Category: components.ObstacleStatic,
		Level:    level,
		Opacity:  1.0,
	})

	return entityID, nil
}

// NewWindObstacle 创建风类障碍物实体
// 创建时位于屏幕外的入场起点，不透明度为 0，
// 等待生成系统准入后播放入场动画
//
// 参数:
//   - startX, startY: 屏幕外入场起点
//   - targetX, targetY: 布局表计算出的最终位置
//   - duration: 入场动画时长（秒，已夹取到配置范围）
func NewWindObstacle(em *ecs.EntityManager, id uint64, startX, startY, targetX, targetY, duration float64, kind, level int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.ObstacleComponent{
		ID:       id,
		X:        startX,
		Y:        startY,
		Kind:     kind,
		Category: components.ObstacleWind,
		Level:    level,
		Opacity:  0,
		Entry: &components.WindEntryState{
			StartX:   startX,
			StartY:   startY,
			TargetX:  targetX,
			TargetY:  targetY,
			Duration: duration,
		},
	})

	return entityID, nil
}
