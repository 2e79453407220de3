package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标系 Y 轴向上，渲染时由 RenderSystem 转换为屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
	Z float64 // 绘制层级，数值越大越靠前
}
