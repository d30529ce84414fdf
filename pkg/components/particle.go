package components

import "image/color"

// ParticleComponent 表示一个爆炸粒子
// 粒子是纯视觉实体，不参与碰撞；运动由 VelocityComponent 驱动。
// 生命值以2倍现实时间速率衰减，归零后实体被移除。
type ParticleComponent struct {
	Size          float64    // 粒子边长/直径（像素）
	Color         color.RGBA // 粒子颜色
	RemainingLife float64    // 剩余生命（秒）
	InitialLife   float64    // 初始生命（秒），用于计算透明度衰减
}
