package entities

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
)

// CameraName 镜头实体的显示名称
const CameraName = "Camera"

// NewCameraEntity 创建镜头实体
// 初始位置取配置中的偏移，之后由 CameraSystem 每帧对准 target
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig, target ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		X:      cfg.OffsetX,
		Y:      cfg.OffsetY,
		Zoom:   cfg.Zoom,
		Target: target,
	})
	ecs.AddComponent(em, id, &components.NameComponent{Name: CameraName})
	return id
}
