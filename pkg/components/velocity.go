package components

// VelocityComponent 存储实体的速度（像素/秒）
type VelocityComponent struct {
	VX float64 // 水平速度，正值向右
	VY float64 // 垂直速度，正值向下
}
