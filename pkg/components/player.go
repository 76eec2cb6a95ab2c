package components

// PlayerComponent 玩家的位置、速度和动画状态
// 每个模拟 tick 由物理系统更新；重新开始时整体重建
type PlayerComponent struct {
	// X, Y 世界坐标（精灵左上角，像素）
	X float64
	Y float64

	// VX, VY 速度（像素/秒）
	// VX 由按键意图直接设置，不做积分；VY 在重力下积分
	VX float64
	VY float64

	// FacingLeft 朝向（仅影响渲染翻转）
	FacingLeft bool

	// FlyPoseTimer 飞行姿态剩余时间（秒，仅影响动画帧选择）
	FlyPoseTimer float64
}
