package components

// InputComponent 当前 tick 的方向键意图
// 由输入系统每 tick 写入，物理系统读取
//
// "刚按下"（edge）和"按住"（held）区分对待：
// 刚按下触发一次新的起跳，按住只维持水平速度
type InputComponent struct {
	LeftHeld  bool
	RightHeld bool

	LeftJustPressed  bool
	RightJustPressed bool
}

// Reset 清空全部意图（过场期间输入被忽略时调用）
func (c *InputComponent) Reset() {
	c.LeftHeld = false
	c.RightHeld = false
	c.LeftJustPressed = false
	c.RightJustPressed = false
}
