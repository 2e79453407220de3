package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
)

// PlayerAnimationSystem 把玩家的朝向和帧号映射为精灵图格子
//
// 显示的格子 = table[朝向][CurrentFrame mod len(table[朝向])]
// 玩家静止时保留上一次显示的格子
type PlayerAnimationSystem struct {
	entityManager *ecs.EntityManager
	table         *config.AnimationConfig
}

// NewPlayerAnimationSystem 创建玩家动画系统
// table 必须已通过 Validate（每个方向至少一帧）
func NewPlayerAnimationSystem(em *ecs.EntityManager, table *config.AnimationConfig) *PlayerAnimationSystem {
	return &PlayerAnimationSystem{
		entityManager: em,
		table:         table,
	}
}

// Update 更新玩家当前显示的格子
func (s *PlayerAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.AnimatedSpriteComponent,
		*components.SpriteSheetComponent,
	](s.entityManager)

	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if !player.IsMoving {
			continue
		}
		anim, _ := ecs.GetComponent[*components.AnimatedSpriteComponent](s.entityManager, id)
		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

		sheet.Index = s.table.CellFor(player.CurrentDirection, anim.CurrentFrame)
	}
}
