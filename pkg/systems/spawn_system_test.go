package systems

import (
	"testing"

	"github.com/gonewx/stormclimber/pkg/components"
	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/utils"
)

func fracXPtr(v float64) *float64 { return &v }

// newSpawnFixture 创建生成系统测试脚手架
// 镜头组件手工创建，便于直接设定偏移
func newSpawnFixture(t *testing.T, layouts *config.LayoutConfig) (*ecs.EntityManager, *components.CameraComponent, *SpawnSystem) {
	t.Helper()

	em := ecs.NewEntityManager()
	camEntity := em.CreateEntity()
	cam := &components.CameraComponent{}
	ecs.AddComponent(em, camEntity, cam)

	return em, cam, NewSpawnSystem(em, layouts, camEntity)
}

func obstacleComponents(em *ecs.EntityManager) []*components.ObstacleComponent {
	var result []*components.ObstacleComponent
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](em) {
		if o, ok := ecs.GetComponent[*components.ObstacleComponent](em, id); ok {
			result = append(result, o)
		}
	}
	return result
}

// TestSpawnSystem_EnsureLevel_Idempotent 测试同一层不会生成两次
func TestSpawnSystem_EnsureLevel_Idempotent(t *testing.T) {
	em, _, ss := newSpawnFixture(t, config.DefaultLayoutConfig())

	ss.EnsureLevel(1)
	count := len(obstacleComponents(em))
	if count == 0 {
		t.Fatal("level 1 spawned no obstacles")
	}

	ss.EnsureLevel(1)
	ss.EnsureLevel(1)

	if got := len(obstacleComponents(em)); got != count {
		t.Errorf("obstacle count = %d after repeated EnsureLevel, want %d", got, count)
	}
	if !ss.SpawnedLevels()[1] {
		t.Error("level 1 missing from the spawned set")
	}
}

// TestSpawnSystem_EnsureLevel_EdgeCases 测试层号边界情况
func TestSpawnSystem_EnsureLevel_EdgeCases(t *testing.T) {
	em, _, ss := newSpawnFixture(t, config.DefaultLayoutConfig())

	// 非正层号直接忽略
	ss.EnsureLevel(0)
	ss.EnsureLevel(-2)
	if len(ss.SpawnedLevels()) != 0 {
		t.Errorf("spawned set = %v, want empty", ss.SpawnedLevels())
	}

	// 未定义布局的层标记为已生成但无实体
	ss.EnsureLevel(50)
	if !ss.SpawnedLevels()[50] {
		t.Error("undefined level should still be marked spawned")
	}
	if got := len(obstacleComponents(em)); got != 0 {
		t.Errorf("undefined level spawned %d obstacles, want 0", got)
	}
}

// TestSpawnSystem_Update_SpawnsCurrentAndNext 测试可达检查覆盖当前层和下一层
func TestSpawnSystem_Update_SpawnsCurrentAndNext(t *testing.T) {
	_, cam, ss := newSpawnFixture(t, config.DefaultLayoutConfig())

	cam.Y = -900 // 第 2 层
	ss.Update(tickDt)

	spawned := ss.SpawnedLevels()
	if !spawned[2] || !spawned[3] {
		t.Errorf("spawned set = %v, want levels 2 and 3", spawned)
	}
	if spawned[4] {
		t.Error("level 4 should not spawn before it is reachable")
	}
}

// TestSpawnSystem_StaticPlacement 测试静态障碍物的锚定和层内定位
func TestSpawnSystem_StaticPlacement(t *testing.T) {
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{Anchor: config.AnchorLeft, FracY: 0.5, Kind: 0, Category: config.CategoryStatic},
			{Anchor: config.AnchorRight, FracY: 0.25, Kind: 1, Category: config.CategoryStatic},
			{FracX: fracXPtr(0.5), FracY: 0.75, Kind: 3, Category: config.CategoryStatic},
		},
	}}
	em, _, ss := newSpawnFixture(t, layouts)

	ss.EnsureLevel(1)

	obstacles := obstacleComponents(em)
	if len(obstacles) != 3 {
		t.Fatalf("spawned %d obstacles, want 3", len(obstacles))
	}

	levelTop := utils.LevelTopWorldY(1, config.TileHeight)
	for _, o := range obstacles {
		if o.Level != 1 {
			t.Errorf("obstacle #%d level = %d, want 1", o.ID, o.Level)
		}
		if o.Opacity != 1 {
			t.Errorf("static obstacle #%d opacity = %v, want 1", o.ID, o.Opacity)
		}
		// 垂直位置落在层带内
		if o.Y < levelTop || o.Y >= levelTop+config.TileHeight {
			t.Errorf("obstacle #%d Y = %v outside level band", o.ID, o.Y)
		}

		w, _ := config.KindSize(o.Kind)
		switch o.Kind {
		case 0: // 左锚定
			if o.X != 0 {
				t.Errorf("left-anchored X = %v, want 0", o.X)
			}
		case 1: // 右锚定：精灵整体在屏幕内
			if o.X != float64(config.GameWindowWidth-w) {
				t.Errorf("right-anchored X = %v, want %v", o.X, config.GameWindowWidth-w)
			}
		case 3: // 比例放置
			if o.X != 0.5*float64(config.GameWindowWidth) {
				t.Errorf("fracX X = %v, want %v", o.X, 0.5*float64(config.GameWindowWidth))
			}
		}
	}
}

// TestSpawnSystem_FracYClamp 测试层内垂直比例被夹取，不落在层边界上
func TestSpawnSystem_FracYClamp(t *testing.T) {
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{Anchor: config.AnchorLeft, FracY: 0, Kind: 0, Category: config.CategoryStatic},
			{Anchor: config.AnchorLeft, FracY: 1, Kind: 0, Category: config.CategoryStatic},
		},
	}}
	em, _, ss := newSpawnFixture(t, layouts)

	ss.EnsureLevel(1)

	levelTop := utils.LevelTopWorldY(1, config.TileHeight)
	for _, o := range obstacleComponents(em) {
		if o.Y == levelTop || o.Y == levelTop+config.TileHeight {
			t.Errorf("obstacle #%d Y = %v sits exactly on a level boundary", o.ID, o.Y)
		}
	}
}

// TestSpawnSystem_WindEntry_Serialized 测试风类入场动画串行化和准入顺序
func TestSpawnSystem_WindEntry_Serialized(t *testing.T) {
	// 两个风类障碍物：世界 y 较大（屏幕下方）者应先入场
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{FracX: fracXPtr(0.5), FracY: 0.5, Kind: 2, Category: config.CategoryWind},  // y = -400
			{FracX: fracXPtr(0.3), FracY: 0.75, Kind: 2, Category: config.CategoryWind}, // y = -200
		},
	}}
	em, cam, ss := newSpawnFixture(t, layouts)
	cam.Y = -400 // 第 1 层，两个目标位置都已入画

	ss.Update(tickDt)

	obstacles := obstacleComponents(em)
	if len(obstacles) != 2 {
		t.Fatalf("spawned %d obstacles, want 2", len(obstacles))
	}

	// 推进到两个入场动画都结束，期间入场中的障碍物数不超过 1
	for i := 0; i < 600; i++ {
		entering := 0
		for _, o := range obstacles {
			if o.Entry != nil && o.Entry.Started && o.Entry.Fraction < 1 {
				entering++
			}
		}
		if entering > 1 {
			t.Fatalf("%d wind obstacles entering at once, want at most 1", entering)
		}
		ss.Update(tickDt)
	}

	var lower, upper *components.ObstacleComponent
	for _, o := range obstacles {
		if o.Entry.TargetY == -200 {
			lower = o
		} else {
			upper = o
		}
	}
	if lower == nil || upper == nil {
		t.Fatal("expected obstacles at target Y -200 and -400")
	}

	for _, o := range []*components.ObstacleComponent{lower, upper} {
		if !o.Entry.Started || o.Entry.Fraction < 1 {
			t.Errorf("obstacle #%d entry unfinished: %+v", o.ID, o.Entry)
		}
		if o.X != o.Entry.TargetX || o.Y != o.Entry.TargetY {
			t.Errorf("obstacle #%d at (%v, %v), want target (%v, %v)",
				o.ID, o.X, o.Y, o.Entry.TargetX, o.Entry.TargetY)
		}
		if o.Opacity != 1 {
			t.Errorf("obstacle #%d opacity = %v, want 1 after entry", o.ID, o.Opacity)
		}
	}
}

// TestSpawnSystem_WindEntry_AdmissionOrder 测试世界 y 较大者先被准入
func TestSpawnSystem_WindEntry_AdmissionOrder(t *testing.T) {
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{FracX: fracXPtr(0.5), FracY: 0.5, Kind: 2, Category: config.CategoryWind},  // y = -400（屏幕上方）
			{FracX: fracXPtr(0.3), FracY: 0.75, Kind: 2, Category: config.CategoryWind}, // y = -200（屏幕下方）
		},
	}}
	_, cam, ss := newSpawnFixture(t, layouts)
	cam.Y = -400

	// 第一次更新只准入一个：世界 y 较大（-200）者
	ss.Update(tickDt)

	started := 0
	var first *components.ObstacleComponent
	for _, o := range obstacleComponents(ss.em) {
		if o.Entry != nil && o.Entry.Started {
			started++
			first = o
		}
	}
	if started != 1 {
		t.Fatalf("%d entries started after first update, want 1", started)
	}
	if first.Entry.TargetY != -200 {
		t.Errorf("first admitted target Y = %v, want -200 (closest to screen bottom)", first.Entry.TargetY)
	}
}

// TestSpawnSystem_WindEntry_OffscreenStart 测试入场起点在距目标较近一侧的屏幕外
func TestSpawnSystem_WindEntry_OffscreenStart(t *testing.T) {
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{FracX: fracXPtr(0.1), FracY: 0.5, Kind: 2, Category: config.CategoryWind},  // 靠左
			{FracX: fracXPtr(0.85), FracY: 0.7, Kind: 2, Category: config.CategoryWind}, // 靠右
		},
	}}
	em, _, ss := newSpawnFixture(t, layouts)

	ss.EnsureLevel(1)

	w, _ := config.KindSize(2)
	for _, o := range obstacleComponents(em) {
		if o.Entry.TargetX < float64(config.GameWindowWidth)/2 {
			if o.Entry.StartX != -float64(w) {
				t.Errorf("left-side target should start off the left edge, StartX = %v", o.Entry.StartX)
			}
		} else {
			if o.Entry.StartX != float64(config.GameWindowWidth) {
				t.Errorf("right-side target should start off the right edge, StartX = %v", o.Entry.StartX)
			}
		}
		// 未准入时停在起点且不可见
		if o.X != o.Entry.StartX || o.Opacity != 0 {
			t.Errorf("unadmitted wind obstacle at X=%v opacity=%v, want start position invisible", o.X, o.Opacity)
		}
	}
}

// TestSpawnSystem_WindEntry_DurationClamp 测试入场时长由行程推导并夹取
func TestSpawnSystem_WindEntry_DurationClamp(t *testing.T) {
	layouts := &config.LayoutConfig{Levels: map[int][]config.SpawnDescriptor{
		1: {
			{FracX: fracXPtr(0.05), FracY: 0.5, Kind: 2, Category: config.CategoryWind}, // 短行程
			{FracX: fracXPtr(0.95), FracY: 0.7, Kind: 2, Category: config.CategoryWind}, // 短行程（右侧）
		},
	}}
	em, _, ss := newSpawnFixture(t, layouts)

	ss.EnsureLevel(1)

	for _, o := range obstacleComponents(em) {
		d := o.Entry.Duration
		if d < config.WindEntryMinDuration || d > config.WindEntryMaxDuration {
			t.Errorf("entry duration %v outside [%v, %v]",
				d, config.WindEntryMinDuration, config.WindEntryMaxDuration)
		}
	}
}

// TestSpawnSystem_Eviction 测试滚出镜头过远的障碍物被回收
func TestSpawnSystem_Eviction(t *testing.T) {
	em, cam, ss := newSpawnFixture(t, config.DefaultLayoutConfig())

	ss.EnsureLevel(1)
	if len(obstacleComponents(em)) == 0 {
		t.Fatal("level 1 spawned no obstacles")
	}

	// 镜头爬到回收阈值之上
	level := 1 + config.ObstacleEvictionLevels + 1
	cam.Y = -float64(level)*config.TileHeight - 1
	ss.Update(tickDt)

	for _, o := range obstacleComponents(em) {
		if o.Level == 1 {
			t.Errorf("obstacle #%d from level 1 survived eviction", o.ID)
		}
	}

	// 已生成层集合不回收，幂等性保持
	if !ss.SpawnedLevels()[1] {
		t.Error("eviction must not shrink the spawned set")
	}
	before := len(obstacleComponents(em))
	ss.EnsureLevel(1)
	if got := len(obstacleComponents(em)); got != before {
		t.Error("evicted level respawned, idempotence broken")
	}
}
