package components

// CutscenePhase 风暴过场的阶段
type CutscenePhase int

const (
	// CutscenePhaseNone 无过场，正常游戏流程
	CutscenePhaseNone CutscenePhase = iota
	// CutscenePhasePanUpToCloud 镜头上移到乌云
	CutscenePhasePanUpToCloud
	// CutscenePhaseLightningStrike 闪电落下，白闪衰减
	CutscenePhaseLightningStrike
	// CutscenePhaseFadeToStorm 风暴背景淡入
	CutscenePhaseFadeToStorm
	// CutscenePhasePanBackToPlayer 镜头移回玩家
	CutscenePhasePanBackToPlayer
)

// String 返回阶段名称（日志用）
func (p CutscenePhase) String() string {
	switch p {
	case CutscenePhaseNone:
		return "none"
	case CutscenePhasePanUpToCloud:
		return "panUpToCloud"
	case CutscenePhaseLightningStrike:
		return "lightningStrike"
	case CutscenePhaseFadeToStorm:
		return "fadeToStorm"
	case CutscenePhasePanBackToPlayer:
		return "panBackToPlayer"
	default:
		return "unknown"
	}
}

// LightningPoint 闪电折线上的一个顶点（屏幕坐标）
type LightningPoint struct {
	X float64
	Y float64
}

// CutsceneComponent 风暴过场状态机的全部状态
// 过场激活时独占镜头和覆盖层参数，正常模拟被短路
type CutsceneComponent struct {
	// Phase 当前阶段
	Phase CutscenePhase

	// Done 一次性完成标志，置位后过场永不再触发
	Done bool

	// Elapsed 当前阶段已用时间（秒）
	Elapsed float64

	// PanFromY, PanToY 镜头平移的端点
	// PanFromY 记录进入过场前的镜头位置，结束后移回
	PanFromY float64
	PanToY   float64

	// 覆盖层混合值，全部 ∈ [0, 1]
	CloudAlpha     float64 // 乌云可见度
	FlashAlpha     float64 // 全屏白闪
	LightningAlpha float64 // 闪电折线
	StormAlpha     float64 // 风暴背景交叉淡化

	// Lightning 本次生成的闪电折线（屏幕坐标）
	Lightning []LightningPoint

	// StormApplied 风暴背景永久替换标志
	// FadeToStorm 阶段结束时置位，此后背景选择逻辑
	// 对风暴层使用风暴变体
	StormApplied bool

	// 乌云淡出独立计时（不受阶段切换约束）
	CloudFadingOut bool
	CloudFadeTimer float64
}
