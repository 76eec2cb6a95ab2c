package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/stormclimber/pkg/config"
	"github.com/gonewx/stormclimber/pkg/ecs"
	"github.com/gonewx/stormclimber/pkg/entities"
	"github.com/gonewx/stormclimber/pkg/game"
	"github.com/gonewx/stormclimber/pkg/systems"
)

// GameScene 游戏场景——模拟循环的顶层驱动
//
// 每个 tick 的推进顺序：
//  1. 检查风暴过场的入口条件
//  2. 过场激活时只推进过场（镜头和覆盖层），正常模拟短路，
//     方向输入在输入层被忽略
//  3. 否则按 输入 → 物理 → 镜头 → 层可达检查/生成 → 碰撞 的顺序推进
//
// 碰撞、坠落或胜利使模拟停止（Running 置 false），同一 tick 内生效；
// 停止后按 R 重开一局（所有单局状态整体重建，不残留）
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState

	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID

	inputSystem     *systems.InputSystem
	physicsSystem   *systems.PhysicsSystem
	cameraSystem    *systems.CameraSystem
	spawnSystem     *systems.SpawnSystem
	collisionSystem *systems.CollisionSystem
	cutsceneSystem  *systems.CutsceneSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 创建并接线一局新游戏
// skinIndex 决定玩家渲染和碰撞掩码使用的皮肤
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager,
	layouts *config.LayoutConfig, skinIndex int) *GameScene {

	em := ecs.NewEntityManager()
	gs := game.NewGameState(skinIndex)

	playerEntity, err := entities.NewPlayer(em)
	if err != nil {
		// 实体管理器非 nil 时不会发生；发生即编程错误
		log.Printf("[GameScene] 创建玩家实体失败: %v", err)
	}

	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       gs,
		entityManager:   em,
		playerEntity:    playerEntity,
	}

	scene.inputSystem = systems.NewInputSystem(em, playerEntity)
	scene.physicsSystem = systems.NewPhysicsSystem(em, playerEntity)
	scene.cameraSystem = systems.NewCameraSystem(em, gs, playerEntity)
	scene.spawnSystem = systems.NewSpawnSystem(em, layouts, scene.cameraSystem.CameraEntity())
	scene.collisionSystem = systems.NewCollisionSystem(em, rm, gs, playerEntity)
	scene.cutsceneSystem = systems.NewCutsceneSystem(em, gs, playerEntity, scene.cameraSystem.CameraEntity())
	scene.renderSystem = systems.NewRenderSystem(em, rm, gs, playerEntity,
		scene.cameraSystem.CameraEntity(), scene.cutsceneSystem.CutsceneEntity())

	log.Printf("[GameScene] 新的一局开始（皮肤 %d）", skinIndex)
	return scene
}

// GameState 返回本局状态（测试和上层 UI 用）
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// Update 推进一个模拟 tick
func (s *GameScene) Update(deltaTime float64) {
	if !s.gameState.Running {
		// 终局后等待重开
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			s.sceneManager.StartNewGame()
		}
		return
	}

	s.Tick(deltaTime)
}

// Tick 执行一次模拟推进（不含终局后的重开输入处理）
// 拆出来供测试直接喂 dt 序列
func (s *GameScene) Tick(deltaTime float64) {
	// 过场入口条件先于短路检查
	s.cutsceneSystem.TryStart()

	if s.cutsceneSystem.Active() {
		// 过场独占：只推进镜头和覆盖层，忽略方向输入
		s.inputSystem.ClearInput()
		s.cutsceneSystem.Update(deltaTime)
		return
	}

	s.inputSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)

	s.cameraSystem.Update(deltaTime)
	if !s.gameState.Running {
		// 坠落或胜利在本 tick 判定，不再推进后续系统
		return
	}

	s.spawnSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
}

// Draw 绘制一帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}
