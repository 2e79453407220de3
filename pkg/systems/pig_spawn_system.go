package systems

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/entities"
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PigSpawnSystem 处理购买猪的输入
// 每次边沿触发的购买键，如果余额足够则扣款并在玩家位置生成一头猪
type PigSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         InputSource
	config        config.PigConfig
	pickDirection types.DirectionPicker
	pigImage      *ebiten.Image
}

// NewPigSpawnSystem 创建购买猪系统
// 参数:
//   - em: EntityManager 实例
//   - gs: 金钱账本
//   - input: 输入源（读取 ActionSpawnPig）
//   - cfg: 价格、寿命、速度等参数
//   - picker: 初始游荡方向选择器
//   - pigImage: 猪的图片，可为 nil
func NewPigSpawnSystem(em *ecs.EntityManager, gs *game.GameState, input InputSource, cfg config.PigConfig, picker types.DirectionPicker, pigImage *ebiten.Image) *PigSpawnSystem {
	return &PigSpawnSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		config:        cfg,
		pickDirection: picker,
		pigImage:      pigImage,
	}
}

// Update 检查购买输入
// 余额不足时静默跳过，不做部分扣款
func (s *PigSpawnSystem) Update(deltaTime float64) {
	if !s.input.JustPressed(types.ActionSpawnPig) {
		return
	}

	playerPos, ok := s.findPlayerPosition()
	if !ok {
		logger.Warnf("[PigSpawnSystem] No player found, cannot spawn pig")
		return
	}

	if !s.gameState.TrySpend(s.config.Cost) {
		logger.Debugf("[PigSpawnSystem] Not enough money for a pig: have $%.2f, need $%.2f",
			s.gameState.GetMoney(), s.config.Cost)
		return
	}

	parent := s.findOrCreatePigParent()
	pig := entities.NewPigEntity(s.entityManager, parent, playerPos.X, playerPos.Y,
		s.config, s.pickDirection(), s.pigImage)

	logger.Infof("[PigSpawnSystem] Spent $%.0f on a pig (entity %d), remaining money: $%.2f",
		s.config.Cost, pig, s.gameState.GetMoney())
}

// findPlayerPosition 返回玩家位置
func (s *PigSpawnSystem) findPlayerPosition() (*components.PositionComponent, bool) {
	players := ecs.GetEntitiesWith2[
		*components.PlayerComponent,
		*components.PositionComponent,
	](s.entityManager)
	if len(players) == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
}

// findOrCreatePigParent 返回猪的分组父实体，不存在时创建
func (s *PigSpawnSystem) findOrCreatePigParent() ecs.EntityID {
	parents := ecs.GetEntitiesWith1[*components.PigParentComponent](s.entityManager)
	for _, id := range parents {
		if !s.entityManager.IsMarkedForDestroy(id) {
			return id
		}
	}
	logger.Debugf("[PigSpawnSystem] Pig parent missing, creating one")
	return entities.NewPigParentEntity(s.entityManager)
}
