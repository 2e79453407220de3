package entities

import (
	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerName 玩家实体的显示名称
const PlayerName = "Player"

// NewPlayerEntity 创建玩家实体
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置（出生点、速度、动画表）
//   - sheet: 玩家精灵图（4x4 网格），可为 nil（只更新逻辑，不绘制）
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig, sheet *ebiten.Image) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Player.StartX,
		Y: cfg.Player.StartY,
		Z: cfg.Player.Z,
	})

	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:            cfg.Player.Speed,
		CurrentDirection: types.DirectionDown,
		IsMoving:         false,
	})

	// 初始显示向下行走的第一帧
	ecs.AddComponent(em, id, &components.SpriteSheetComponent{
		Image:      sheet,
		CellWidth:  cfg.Animation.CellSize,
		CellHeight: cfg.Animation.CellSize,
		Columns:    cfg.Animation.Columns,
		Index:      cfg.Animation.CellFor(types.DirectionDown, 0),
		Scale:      cfg.Player.Scale,
	})

	ecs.AddComponent(em, id, &components.AnimatedSpriteComponent{
		CurrentFrame: 0,
		Timer:        components.NewTimer(cfg.Animation.FrameInterval, components.TimerRepeating),
	})

	ecs.AddComponent(em, id, &components.NameComponent{Name: PlayerName})

	return id
}
