package components

// CameraComponent 垂直卷动镜头状态
// 镜头只在垂直方向移动；CameraY 是世界坐标到屏幕坐标的偏移量
//
// 不变式：
//   - 锁定前 CameraY 夹取上限为 0（画面不会卷到起始屏以下）
//   - 锁定后 CameraY 单调非增（只升不降的棘轮）
type CameraComponent struct {
	// Y 当前镜头偏移（世界坐标，向上为负）
	Y float64

	// Locked 是否进入锁定（棘轮）模式，转换是单向的
	Locked bool

	// MinYReached 锁定后到达过的最小 Y（棘轮值）
	MinYReached float64
}
