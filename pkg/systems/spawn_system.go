package systems

import (
	"log"
	"math"
	"sort"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/entities"
	"github.com/gonewx/stormclimber/pkg/utils"
)

// SpawnSystem 障碍物生成系统
// 职责：
//   - 关卡层首次可达（当前层或下一层）时按布局表生成该层的障碍物，
//     已生成层集合保证幂等，同一层不会生成两次
//   - 推进风类障碍物的入场动画；同一时刻最多一个风类障碍物在入场，
//     其余按世界 y 从大到小（先入画者优先）排队准入
//   - 回收滚出镜头下方超过 ObstacleEvictionLevels 层的障碍物实体，
//     限制长局的内存增长；已生成层集合不回收，幂等性不受影响
type SpawnSystem struct {
	em           *ecs.EntityManager
	layouts      *config.LayoutConfig
	cameraEntity ecs.EntityID

	// spawnedLevels 已生成层集合（只增不减）
	spawnedLevels map[int]bool

	// nextID 单调递增的障碍物编号
	nextID uint64

	// activeWindID 正在播放入场动画的风类障碍物编号，0 表示空闲
	activeWindID uint64
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, layouts *config.LayoutConfig, cameraEntity ecs.EntityID) *SpawnSystem {
	return &SpawnSystem{
		em:            em,
		layouts:       layouts,
		cameraEntity:  cameraEntity,
		spawnedLevels: make(map[int]bool),
		nextID:        0,
	}
}

// Update 推进一个生成 tick
func (ss *SpawnSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](ss.em, ss.cameraEntity)
	if !ok {
		return
	}

	// 当前层和下一层首次可达时生成
	level := utils.LevelForCameraY(cam.Y, config.TileHeight)
	ss.EnsureLevel(level)
	ss.EnsureLevel(level + 1)

	ss.updateWindEntries(dt, cam.Y)
	ss.evictScrolledOut(level)
}

// SpawnedLevels 返回已生成层集合（幂等契约的对外视图，测试用）
func (ss *SpawnSystem) SpawnedLevels() map[int]bool {
	return ss.spawnedLevels
}

// EnsureLevel 确保指定层的障碍物已生成
// 已生成过的层直接返回；未定义布局的层视为空布局
func (ss *SpawnSystem) EnsureLevel(level int) {
	if level <= 0 || ss.spawnedLevels[level] {
		return
	}
	ss.spawnedLevels[level] = true

	layout := ss.layouts.LevelLayout(level)
	if len(layout) == 0 {
		return
	}

	levelTop := utils.LevelTopWorldY(level, config.TileHeight)
	for _, desc := range layout {
		ss.spawnDescriptor(desc, level, levelTop)
	}
	log.Printf("[SpawnSystem] 第 %d 层生成 %d 个障碍物", level, len(layout))
}

// spawnDescriptor 按单条描述生成一个障碍物
func (ss *SpawnSystem) spawnDescriptor(desc config.SpawnDescriptor, level int, levelTop float64) {
	kindW, _ := config.KindSize(desc.Kind)

	// 水平位置：比例放置或边缘锚定
	// 右/中锚定减去精灵宽度，保证精灵整体在屏幕内
	var x float64
	if desc.FracX != nil {
		x = *desc.FracX * float64(config.GameWindowWidth)
	} else {
		switch desc.Anchor {
		case config.AnchorRight:
			x = float64(config.GameWindowWidth - kindW)
		case config.AnchorCenter:
			x = float64(config.GameWindowWidth-kindW) / 2
		default: // left
			x = 0
		}
	}

	// 垂直位置：层内比例，夹取避免精确落在层边界上
	fracY := utils.Clamp(desc.FracY, config.SpawnFracYMin, config.SpawnFracYMax)
	y := levelTop + fracY*config.TileHeight

	ss.nextID++
	id := ss.nextID

	if desc.Category == config.CategoryWind {
		// 入场起点在距目标更近的一侧屏幕外
		startX := float64(config.GameWindowWidth)
		if x+float64(kindW)/2 < float64(config.GameWindowWidth)/2 {
			startX = -float64(kindW)
		}

		// 入场时长由行程和最大入场速度推导，夹取到配置范围
		distance := math.Abs(x - startX)
		duration := utils.Clamp(distance/config.WindMaxEntrySpeed,
			config.WindEntryMinDuration, config.WindEntryMaxDuration)

		if _, err := entities.NewWindObstacle(ss.em, id, startX, y, x, y, duration, desc.Kind, level); err != nil {
			log.Printf("[SpawnSystem] 创建风类障碍物失败: %v", err)
		}
		return
	}

	if _, err := entities.NewStaticObstacle(ss.em, id, x, y, desc.Kind, level); err != nil {
		log.Printf("[SpawnSystem] 创建静态障碍物失败: %v", err)
	}
}

// updateWindEntries 推进入场动画并串行准入下一个风类障碍物
func (ss *SpawnSystem) updateWindEntries(dt float64, cameraY float64) {
	obstacleIDs := ecs.GetEntitiesWith1[*components.ObstacleComponent](ss.em)

	// 推进当前活动的入场动画
	if ss.activeWindID != 0 {
		active := ss.findObstacle(obstacleIDs, ss.activeWindID)
		if active == nil || active.Entry == nil {
			// 活动障碍物已被回收，释放 token
			ss.activeWindID = 0
		} else {
			entry := active.Entry
			if dt > 0 && entry.Duration > 0 {
				entry.Fraction += dt / entry.Duration
			}
			if entry.Fraction >= 1 {
				entry.Fraction = 1
			}

			eased := utils.SmoothStep(entry.Fraction)
			active.X = utils.Lerp(entry.StartX, entry.TargetX, eased)
			active.Y = utils.Lerp(entry.StartY, entry.TargetY, eased)
			active.Opacity = eased

			if entry.Fraction >= 1 {
				// 入场完成，释放 token，下一个排队者可被准入
				active.X = entry.TargetX
				active.Y = entry.TargetY
				active.Opacity = 1
				ss.activeWindID = 0
			}
		}
	}

	if ss.activeWindID != 0 {
		return
	}

	// 准入下一个：目标位置即将入画的未开始者中，世界 y 最大的优先
	var waiting []*components.ObstacleComponent
	for _, id := range obstacleIDs {
		o, ok := ecs.GetComponent[*components.ObstacleComponent](ss.em, id)
		if !ok || o.Category != components.ObstacleWind || o.Entry == nil || o.Entry.Started {
			continue
		}
		screenY := utils.WorldToScreenY(o.Entry.TargetY, cameraY)
		if screenY >= -config.WindAdmitMargin {
			waiting = append(waiting, o)
		}
	}
	if len(waiting) == 0 {
		return
	}

	sort.Slice(waiting, func(i, j int) bool {
		if waiting[i].Entry.TargetY != waiting[j].Entry.TargetY {
			return waiting[i].Entry.TargetY > waiting[j].Entry.TargetY
		}
		return waiting[i].ID < waiting[j].ID
	})

	next := waiting[0]
	next.Entry.Started = true
	ss.activeWindID = next.ID
}

// evictScrolledOut 回收滚出镜头下方过远的障碍物
func (ss *SpawnSystem) evictScrolledOut(currentLevel int) {
	threshold := currentLevel - config.ObstacleEvictionLevels
	if threshold <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](ss.em) {
		o, ok := ecs.GetComponent[*components.ObstacleComponent](ss.em, id)
		if !ok {
			continue
		}
		if o.Level < threshold {
			if ss.activeWindID == o.ID {
				ss.activeWindID = 0
			}
			ss.em.DestroyEntity(id)
		}
	}
	ss.em.RemoveMarkedEntities()
}

// findObstacle 按障碍物编号查找组件
func (ss *SpawnSystem) findObstacle(ids []ecs.EntityID, obstacleID uint64) *components.ObstacleComponent {
	for _, id := range ids {
		o, ok := ecs.GetComponent[*components.ObstacleComponent](ss.em, id)
		if ok && o.ID == obstacleID {
			return o
		}
	}
	return nil
}
