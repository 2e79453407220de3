package systems

import (
	"testing"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name       string
		held       []types.Action
		dt         float64
		wantDX     float64
		wantDY     float64
		wantDir    types.Direction
		wantMoving bool
	}{
		{"只按上：y 增加 s*t", []types.Action{types.ActionMoveUp}, 0.5, 0, 50, types.DirectionUp, true},
		{"只按下", []types.Action{types.ActionMoveDown}, 0.5, 0, -50, types.DirectionDown, true},
		{"只按左", []types.Action{types.ActionMoveLeft}, 0.25, -25, 0, types.DirectionLeft, true},
		{"上+右：朝向取右，两轴都移动", []types.Action{types.ActionMoveUp, types.ActionMoveRight}, 0.1, 10, 10, types.DirectionRight, true},
		{"上+下：位移抵消，朝向取下", []types.Action{types.ActionMoveUp, types.ActionMoveDown}, 1, 0, 0, types.DirectionDown, true},
		{"四键齐按：朝向取右", []types.Action{types.ActionMoveUp, types.ActionMoveDown, types.ActionMoveLeft, types.ActionMoveRight}, 1, 0, 0, types.DirectionRight, true},
		{"无按键：不动，朝向保持默认", nil, 1, 0, 0, types.DirectionDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(100, nil)
			pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
			startX, startY := pos.X, pos.Y

			w.input.Hold(tt.held...)
			w.movement.Update(tt.dt)

			player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.player)
			if !approxEqual(pos.X-startX, tt.wantDX) || !approxEqual(pos.Y-startY, tt.wantDY) {
				t.Errorf("Expected delta (%v, %v), got (%v, %v)", tt.wantDX, tt.wantDY, pos.X-startX, pos.Y-startY)
			}
			if player.CurrentDirection != tt.wantDir {
				t.Errorf("Expected facing %s, got %s", tt.wantDir, player.CurrentDirection)
			}
			if player.IsMoving != tt.wantMoving {
				t.Errorf("Expected IsMoving %v, got %v", tt.wantMoving, player.IsMoving)
			}
		})
	}
}

// TestPlayerMovementReleaseKeepsFacing 松开按键后朝向保持最后一次的方向
func TestPlayerMovementReleaseKeepsFacing(t *testing.T) {
	w := newTestWorld(100, nil)

	w.input.Hold(types.ActionMoveLeft)
	w.movement.Update(testFrame)
	w.input.Release(types.ActionMoveLeft)
	w.movement.Update(testFrame)

	player, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.player)
	if player.IsMoving {
		t.Error("Player should stop moving after release")
	}
	if player.CurrentDirection != types.DirectionLeft {
		t.Errorf("Expected facing Left after release, got %s", player.CurrentDirection)
	}
}

// TestPlayerMovementAccumulates 多帧位移累加
func TestPlayerMovementAccumulates(t *testing.T) {
	w := newTestWorld(100, nil)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
	startY := pos.Y

	w.input.Hold(types.ActionMoveUp)
	for i := 0; i < 60; i++ {
		w.movement.Update(testFrame)
	}

	if !approxEqual(pos.Y-startY, 100) {
		t.Errorf("Expected 100 units after 1s at speed 100, got %v", pos.Y-startY)
	}
}
