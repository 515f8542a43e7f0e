package components

// PositionComponent 实体左上角位置
// 页面使用"页面坐标"：相对于内容顶部，绘制时再减去滚动偏移
type PositionComponent struct {
	X float64
	Y float64
}
