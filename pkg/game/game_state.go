package game

// GameState 单局模拟的顶层状态
// 每局游戏创建一个实例，显式传入需要它的系统——不使用包级全局变量，
// 重新开始一局时整体重建，保证不残留上一局的状态
type GameState struct {
	// Running 模拟是否在推进
	// 碰撞、坠落或胜利时置 false，之后的 tick 不再推进模拟
	Running bool

	// GameWon / GameOver 终局结果标志（两者互斥）
	GameWon  bool
	GameOver bool

	// CurrentLevel 由镜头偏移推导出的当前关卡层
	CurrentLevel int

	// HighestLevel 本局到达过的最高层（UI 展示用）
	HighestLevel int

	// SkinIndex 玩家皮肤索引（只影响渲染选图）
	SkinIndex int
}

// NewGameState 创建一局新游戏的状态
func NewGameState(skinIndex int) *GameState {
	return &GameState{
		Running:   true,
		SkinIndex: skinIndex,
	}
}

// Finish 以指定结果终止模拟
// won 为 true 记为胜利，否则记为失败
func (gs *GameState) Finish(won bool) {
	if !gs.Running {
		return
	}
	gs.Running = false
	gs.GameWon = won
	gs.GameOver = !won
}
