package components

import "github.com/decker502/pigfarm/pkg/ecs"

// CameraComponent 管理镜头位置、缩放和跟随目标。
type CameraComponent struct {
	// X, Y 镜头中心在世界坐标中的位置
	X float64
	Y float64

	// Zoom 投影缩放：世界单位到屏幕像素的比例的倒数
	// 0.5 表示屏幕上 1 个世界单位绘制为 2 个像素
	Zoom float64

	// Target 跟随的实体，ecs.InvalidEntity 表示不跟随
	Target ecs.EntityID
}
