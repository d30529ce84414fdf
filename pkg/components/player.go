package components

// ControlMode 玩家控制模式
type ControlMode int

const (
	// ControlModeManual 手动控制：方向键移动，开火键射击
	ControlModeManual ControlMode = iota
	// ControlModeAuto 自动驾驶（作弊模式）：AI 选择目标并持续开火，免疫伤害
	ControlModeAuto
)

// PlayerComponent 存储玩家飞船的控制与射击状态
type PlayerComponent struct {
	MoveSpeed    float64     // 移动速度（像素/秒）
	FireInterval float64     // 射击间隔（秒）
	FireCooldown float64     // 剩余射击冷却时间（秒），<=0 时可以开火
	ControlMode  ControlMode // 当前控制模式
}
