package components

// NameComponent 实体的显示名称（供调试检查面板使用）
type NameComponent struct {
	Name string
}
