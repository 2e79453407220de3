package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
)

// CameraSystem 让镜头每帧对准跟随目标（玩家）
// 目标不存在或没有位置时镜头保持不动
type CameraSystem struct {
	entityManager *ecs.EntityManager
}

// NewCameraSystem 创建镜头跟随系统。
func NewCameraSystem(em *ecs.EntityManager) *CameraSystem {
	return &CameraSystem{entityManager: em}
}

// Update 更新所有镜头的位置。
func (cs *CameraSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](cs.entityManager) {
		cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, id)
		if cam.Target == ecs.InvalidEntity {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, cam.Target)
		if !ok {
			continue
		}
		cam.X = pos.X
		cam.Y = pos.Y
	}
}

// ActiveCamera 返回第一个镜头组件；没有镜头时返回位于原点、缩放为 1 的默认镜头
func ActiveCamera(em *ecs.EntityManager) components.CameraComponent {
	cameras := ecs.GetEntitiesWith1[*components.CameraComponent](em)
	if len(cameras) > 0 {
		if cam, ok := ecs.GetComponent[*components.CameraComponent](em, cameras[0]); ok {
			return *cam
		}
	}
	return components.CameraComponent{Zoom: 1}
}

// WorldToScreen 将世界坐标（Y 轴向上）转换为屏幕坐标（Y 轴向下）
// 镜头位置对应屏幕中心；Zoom 0.5 表示 1 个世界单位绘制为 2 个像素
func WorldToScreen(cam components.CameraComponent, x, y float64, screenWidth, screenHeight int) (float64, float64) {
	scale := cameraScale(cam)
	sx := (x-cam.X)*scale + float64(screenWidth)/2
	sy := float64(screenHeight)/2 - (y-cam.Y)*scale
	return sx, sy
}

// cameraScale 世界单位到像素的比例
func cameraScale(cam components.CameraComponent) float64 {
	if cam.Zoom <= 0 {
		return 1
	}
	return 1 / cam.Zoom
}
