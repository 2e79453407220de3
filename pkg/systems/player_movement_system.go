package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
)

// movementBindings 方向键的判定顺序：上、下、左、右
// 同时按下多个方向时各方向位移累加，朝向取顺序中最后一个按下的方向
var movementBindings = []struct {
	action types.Action
	dir    types.Direction
}{
	{types.ActionMoveUp, types.DirectionUp},
	{types.ActionMoveDown, types.DirectionDown},
	{types.ActionMoveLeft, types.DirectionLeft},
	{types.ActionMoveRight, types.DirectionRight},
}

// PlayerMovementSystem 根据输入移动玩家并更新朝向
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, input InputSource) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 处理本帧的移动输入
// 没有方向键按下时 IsMoving 为 false，朝向保持不变
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		amount := player.Speed * deltaTime
		moving := false

		for _, b := range movementBindings {
			if !s.input.Pressed(b.action) {
				continue
			}
			dx, dy := b.dir.Vector()
			pos.X += dx * amount
			pos.Y += dy * amount
			player.CurrentDirection = b.dir
			moving = true
		}

		player.IsMoving = moving
	}
}
