package components

// ObstacleCategory 障碍物类别
type ObstacleCategory int

const (
	// ObstacleStatic 静态障碍物，首次可见即处于最终位置
	ObstacleStatic ObstacleCategory = iota
	// ObstacleWind 风类障碍物，从屏幕外飞入后停在目标位置
	ObstacleWind
)

// WindEntryState 风类障碍物的入场动画子状态
// 同一时刻最多只有一个风类障碍物在播放入场动画，
// 其余的排队等待（由生成系统的单一 active token 串行化）
type WindEntryState struct {
	// StartX, StartY 入场起点（屏幕外，靠近目标的一侧）
	StartX float64
	StartY float64

	// TargetX, TargetY 入场终点（布局表计算出的最终位置）
	TargetX float64
	TargetY float64

	// Duration 入场时长（秒），由行程距离和最大入场速度推导，
	// 夹取到配置的上下限范围内
	Duration float64

	// Fraction 插值进度 ∈ [0, 1]
	Fraction float64

	// Started 是否已被准入开始动画
	Started bool
}

// ObstacleComponent 单个障碍物
// 由生成系统在所属层首次可达时创建
type ObstacleComponent struct {
	// ID 单调递增的障碍物编号
	ID uint64

	// X 屏幕相对横坐标（水平方向不随镜头卷动）
	X float64
	// Y 世界纵坐标
	Y float64

	// Kind 障碍物外形表索引（config.ObstacleKinds）
	Kind int

	// Category 障碍物类别
	Category ObstacleCategory

	// Level 生成时所属的关卡层（用于滚出镜头后的回收）
	Level int

	// Opacity 渲染不透明度 ∈ [0, 1]
	// 静态障碍物恒为 1；风类障碍物在入场期间随进度渐显
	Opacity float64

	// Entry 入场动画状态（仅风类障碍物非 nil）
	// 动画期间 X/Y 持续被生成系统写为插值位置
	Entry *WindEntryState
}
