package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒左上角对齐实体位置（与 PositionComponent 同一坐标）
//
// 碰撞检测时两个碰撞盒都会按每边 10% 向内收缩（宽容判定），
// 收缩逻辑在 systems.CollisionSystem 中实现
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
