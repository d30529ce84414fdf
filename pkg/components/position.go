package components

// PositionComponent 存储实体在世界坐标系中的位置
// 坐标为实体包围盒的左上角（像素）
type PositionComponent struct {
	X float64
	Y float64
}
