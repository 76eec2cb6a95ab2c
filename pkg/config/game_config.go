package config

// 游戏核心常量配置
// 包括窗口尺寸、物理参数、镜头行为和风暴过场的时间参数
//
// 坐标约定：世界坐标 y 向上递减（爬得越高 y 越小），
// 屏幕坐标 = 世界坐标 - CameraY

const (
	// 窗口 / 视口尺寸（逻辑像素，竖屏攀爬布局）
	GameWindowWidth  = 480
	GameWindowHeight = 800

	// TileHeight 一个关卡层占据的世界空间高度（= 一屏）
	TileHeight = float64(GameWindowHeight)
)

// 物理参数
const (
	// Gravity 重力加速度（像素/秒²，正值表示向下加速）
	Gravity = 1800.0

	// JumpImpulseVY 起跳瞬间的垂直速度（负值表示向上）
	JumpImpulseVY = -500.0

	// SideSpeed 按住方向键时的水平速度（像素/秒）
	SideSpeed = 700.0

	// MaxDeltaTime 单个 tick 允许的最大时间步长（秒）
	// 用于吸收卡顿 / 切后台造成的超长帧，避免物理隧穿
	MaxDeltaTime = 0.05

	// FlyPoseDuration 起跳后"飞行姿态"的保持时间（秒，仅影响动画）
	FlyPoseDuration = 0.35
)

// 玩家精灵尺寸
const (
	PlayerWidth  = 56
	PlayerHeight = 56

	// GroundY 起始地面线（玩家 y 超过此值且镜头未锁定时贴地）
	GroundY = float64(GameWindowHeight) - float64(PlayerHeight)
)

// 镜头参数
const (
	// CameraTopLockY / CameraBottomLockY 自由阶段的屏幕空间死区
	// 玩家屏幕 y 高于上界时镜头上移，低于下界时镜头下移
	CameraTopLockY    = 260.0
	CameraBottomLockY = 520.0

	// CameraLockLevel 到达该关卡层后镜头进入锁定（棘轮）模式
	CameraLockLevel = 2

	// FallOffMargin 玩家屏幕 y 超出屏幕底部多少像素判定坠落失败
	FallOffMargin = 60.0

	// WinLevel 可见最高层到达该层即判定胜利
	WinLevel = 11
)

// 风暴过场参数
const (
	// StormLevel 触发风暴过场的关卡层
	StormLevel = 6

	// StormTriggerFraction 玩家世界 y 越过该层的此比例位置时触发
	StormTriggerFraction = 0.6

	// 各阶段时长（模拟时间，秒）
	CutscenePanUpDuration     = 1.10
	CutsceneLightningDuration = 0.32
	CutsceneFadeDuration      = 1.05
	CutscenePanBackDuration   = 0.90

	// 闪电 / 白闪各自的独立衰减时长（秒）
	LightningDecayDuration = 0.25
	FlashDecayDuration     = 0.18

	// CloudFadeOutDuration 乌云淡出时长（秒，独立于阶段计时）
	CloudFadeOutDuration = 0.80

	// 乌云精灵尺寸（屏幕顶部居中绘制，闪电从云底出发）
	CloudWidth  = 220
	CloudHeight = 120

	// LightningSegments 闪电折线的段数
	LightningSegments = 7
	// LightningJitter 每段顶点的最大随机水平偏移（像素）
	LightningJitter = 36.0
)

// 障碍物生成参数
const (
	// SpawnFracYMin / SpawnFracYMax 层内垂直位置比例的夹取范围
	// 避免障碍物精确落在层边界上
	SpawnFracYMin = 0.02
	SpawnFracYMax = 0.98

	// WindEntryMinDuration / WindEntryMaxDuration 风类障碍入场动画时长范围（秒）
	WindEntryMinDuration = 0.45
	WindEntryMaxDuration = 1.25

	// WindMaxEntrySpeed 入场动画允许的最大平均速度（像素/秒）
	// 入场时长 = 行程距离 / 该速度，再夹取进上述范围
	WindMaxEntrySpeed = 900.0

	// WindAdmitMargin 风类障碍的"即将可见"判定余量（像素）
	// 目标位置的屏幕 y 进入 -该值 以下（从屏幕顶部即将入画）时允许排队入场
	WindAdmitMargin = 120.0

	// ObstacleEvictionLevels 障碍物滚出镜头下方多少层后从实体表中回收
	ObstacleEvictionLevels = 3
)

// 碰撞参数
const (
	// MaskAlphaThreshold 透明度掩码的不透明判定阈值（0~1）
	MaskAlphaThreshold = 0.12
)
