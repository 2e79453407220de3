package entities

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// PigName 猪实体的显示名称
	PigName = "Pig"
	// PigParentName 猪分组父实体的显示名称
	PigParentName = "Pig Parent"
)

// NewPigParentEntity 创建所有猪的分组父实体
// 只有名称和标记组件，没有位置，不参与绘制
func NewPigParentEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PigParentComponent{})
	ecs.AddComponent(em, id, &components.NameComponent{Name: PigParentName})
	return id
}

// NewPigEntity 在 (x, y) 创建一头猪，并挂到 parent 下
// 参数:
//   - em: EntityManager 实例
//   - parent: 分组父实体，ecs.InvalidEntity 表示不挂父实体
//   - x, y: 出生位置（世界坐标，通常是玩家当前位置）
//   - cfg: 猪的寿命、速度、游荡间隔
//   - dir: 初始游荡方向
//   - img: 猪的图片，可为 nil
//
// 返回: 创建的实体ID
func NewPigEntity(em *ecs.EntityManager, parent ecs.EntityID, x, y float64, cfg config.PigConfig, dir types.Direction, img *ebiten.Image) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Z: cfg.Z})

	ecs.AddComponent(em, id, &components.PigComponent{
		Lifetime:         components.NewTimer(cfg.Lifetime, components.TimerOnce),
		Speed:            cfg.Speed,
		CurrentDirection: dir,
		DirectionTimer:   components.NewTimer(cfg.WanderInterval, components.TimerRepeating),
	})

	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Scale: cfg.Scale})
	ecs.AddComponent(em, id, &components.NameComponent{Name: PigName})

	if parent != ecs.InvalidEntity {
		em.SetParent(id, parent)
	}

	return id
}
