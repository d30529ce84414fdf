package components

// ProjectileComponent 标识子弹实体
// 子弹的运动由 VelocityComponent 驱动，离开屏幕垂直边界后被移除
type ProjectileComponent struct {
	Damage int // 单次命中伤害，当前所有子弹均为1
}
