package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image
	Scale float64 // 绘制缩放，0 视为 1
}

// SpriteSheetComponent 存储基于网格切分的精灵图及当前显示的格子
// Index 按行优先编号：index = row*Columns + col
type SpriteSheetComponent struct {
	Image      *ebiten.Image
	CellWidth  int
	CellHeight int
	Columns    int
	Index      int     // 当前显示的格子索引
	Scale      float64 // 绘制缩放，0 视为 1
}
