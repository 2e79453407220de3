package systems

import (
	"math"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/entities"
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/decker502/pigfarm/pkg/utils"
)

// testFrame 60 TPS 下的单帧时长
const testFrame = 1.0 / 60.0

// testWorld 测试用的最小游戏世界：一个玩家、一个猪父实体和完整的核心系统
type testWorld struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	events *game.EventQueue[game.MoneyEarnedEvent]
	input  *utils.ScriptedInput
	cfg    *config.GameConfig

	player    ecs.EntityID
	pigParent ecs.EntityID

	movement  *PlayerMovementSystem
	spawn     *PigSpawnSystem
	lifetime  *PigLifetimeSystem
	money     *MoneySystem
	animation *SpriteAnimationSystem
	playerAni *PlayerAnimationSystem
}

// newTestWorld 创建测试世界，picker 为 nil 时固定返回向下
func newTestWorld(initialMoney float64, picker types.DirectionPicker) *testWorld {
	if picker == nil {
		picker = types.FixedDirectionPicker(types.DirectionDown)
	}
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	gs := game.NewGameState(initialMoney)
	events := game.NewEventQueue[game.MoneyEarnedEvent]()
	input := utils.NewScriptedInput()

	w := &testWorld{
		em:     em,
		gs:     gs,
		events: events,
		input:  input,
		cfg:    cfg,
	}
	w.player = entities.NewPlayerEntity(em, cfg, nil)
	w.pigParent = entities.NewPigParentEntity(em)

	w.movement = NewPlayerMovementSystem(em, input)
	w.spawn = NewPigSpawnSystem(em, gs, input, cfg.Pig, picker, nil)
	w.lifetime = NewPigLifetimeSystem(em, events, cfg.Pig.Reward, picker)
	w.money = NewMoneySystem(gs, events)
	w.animation = NewSpriteAnimationSystem(em)
	w.playerAni = NewPlayerAnimationSystem(em, &cfg.Animation)
	return w
}

// step 按场景中的顺序执行一帧
func (w *testWorld) step(dt float64) {
	w.movement.Update(dt)
	w.spawn.Update(dt)
	w.lifetime.Update(dt)
	w.money.Update(dt)
	w.animation.Update(dt)
	w.playerAni.Update(dt)
	w.em.RemoveMarkedEntities()
	w.input.EndFrame()
}

// pigs 返回当前所有猪的实体ID
func (w *testWorld) pigs() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.PigComponent](w.em)
}

// approxEqual 浮点比较
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
