package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/decker502/pigfarm/pkg/types"
)

// PigLifetimeSystem 更新每头猪的寿命、游荡方向和位置
//
// 每帧对每头猪：
//  1. 推进寿命计时器和方向计时器（两者独立）
//  2. 方向计时器完成时重新随机方向
//  3. 沿当前方向移动 speed*dt
//  4. 寿命到时发出 MoneyEarnedEvent 并递归删除实体
//
// 删除在帧末 RemoveMarkedEntities 时生效；已标记删除的猪会被跳过，保证每头猪只结算一次
type PigLifetimeSystem struct {
	entityManager *ecs.EntityManager
	moneyEvents   *game.EventQueue[game.MoneyEarnedEvent]
	reward        float64
	pickDirection types.DirectionPicker
}

// NewPigLifetimeSystem 创建猪的生命周期系统
func NewPigLifetimeSystem(em *ecs.EntityManager, events *game.EventQueue[game.MoneyEarnedEvent], reward float64, picker types.DirectionPicker) *PigLifetimeSystem {
	return &PigLifetimeSystem{
		entityManager: em,
		moneyEvents:   events,
		reward:        reward,
		pickDirection: picker,
	}
}

// Update 更新所有猪
func (s *PigLifetimeSystem) Update(deltaTime float64) {
	pigs := ecs.GetEntitiesWith2[
		*components.PigComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range pigs {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pig, _ := ecs.GetComponent[*components.PigComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pig.Lifetime.Tick(deltaTime)
		pig.DirectionTimer.Tick(deltaTime)

		if pig.DirectionTimer.JustFinished() {
			pig.CurrentDirection = s.pickDirection()
		}

		if pig.Lifetime.JustFinished() {
			s.moneyEvents.Push(game.MoneyEarnedEvent{Amount: s.reward})
			s.entityManager.DestroyEntityRecursive(id)
			logger.Debugf("[PigLifetimeSystem] Pig %d finished its lifetime, earned $%.2f", id, s.reward)
		}

		dx, dy := pig.CurrentDirection.Vector()
		amount := pig.Speed * deltaTime
		pos.X += dx * amount
		pos.Y += dy * amount
	}
}
