package components

// PositionComponent 存储实体在场地中的位置
// 坐标系 y 轴向上，(0, 0) 位于场地左下角；位置始终指精灵的左下角锚点
type PositionComponent struct {
	X int // 水平坐标（像素）
	Y int // 垂直坐标（像素），向上增长
}
