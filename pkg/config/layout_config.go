package config

// 布局配置常量

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// HUDMarginX HUD 文字左边距
	HUDMarginX = 8

	// HUDMarginY HUD 文字上边距
	HUDMarginY = 8

	// InspectorMarginX 检查面板左边距（面板贴在屏幕右侧）
	InspectorMarginX = 560

	// InspectorLineHeight 检查面板行高（ebitenutil 调试字体）
	InspectorLineHeight = 16
)
