package systems

import (
	"testing"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
)

// TestPigSpawnGate 余额门槛：>= 价格才能购买，不足时不做部分扣款
func TestPigSpawnGate(t *testing.T) {
	tests := []struct {
		name      string
		money     float64
		wantPigs  int
		wantMoney float64
	}{
		{"余额 9.99 不足", 9.99, 0, 9.99},
		{"余额恰好 10", 10.0, 1, 0.0},
		{"余额 100", 100.0, 1, 90.0},
		{"余额为 0", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(tt.money, nil)

			w.input.Tap(types.ActionSpawnPig)
			w.spawn.Update(testFrame)

			if got := len(w.pigs()); got != tt.wantPigs {
				t.Errorf("Expected %d pigs, got %d", tt.wantPigs, got)
			}
			if !approxEqual(w.gs.GetMoney(), tt.wantMoney) {
				t.Errorf("Expected money %v, got %v", tt.wantMoney, w.gs.GetMoney())
			}
		})
	}
}

// TestPigSpawnEdgeTriggered 只有刚按下才购买，按住不会连续购买
func TestPigSpawnEdgeTriggered(t *testing.T) {
	w := newTestWorld(100, nil)

	w.input.Hold(types.ActionSpawnPig)
	for i := 0; i < 30; i++ {
		w.step(testFrame)
	}
	if len(w.pigs()) != 0 {
		t.Fatalf("Holding the key must not spawn pigs, got %d", len(w.pigs()))
	}

	for i := 0; i < 3; i++ {
		w.input.Tap(types.ActionSpawnPig)
		w.step(testFrame)
	}
	if len(w.pigs()) != 3 {
		t.Errorf("Expected 3 pigs after 3 taps, got %d", len(w.pigs()))
	}
	if !approxEqual(w.gs.GetMoney(), 70) {
		t.Errorf("Expected money 70, got %v", w.gs.GetMoney())
	}
}

// TestPigSpawnAtPlayerPosition 猪出生在玩家当前位置，挂在猪父实体下
func TestPigSpawnAtPlayerPosition(t *testing.T) {
	w := newTestWorld(100, types.FixedDirectionPicker(types.DirectionRight))
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
	playerPos.X, playerPos.Y = -30, 12

	w.input.Tap(types.ActionSpawnPig)
	w.spawn.Update(testFrame)

	pigs := w.pigs()
	if len(pigs) != 1 {
		t.Fatalf("Expected 1 pig, got %d", len(pigs))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, pigs[0])
	if pos.X != -30 || pos.Y != 12 {
		t.Errorf("Expected pig at (-30, 12), got (%v, %v)", pos.X, pos.Y)
	}
	pig, _ := ecs.GetComponent[*components.PigComponent](w.em, pigs[0])
	if pig.CurrentDirection != types.DirectionRight {
		t.Errorf("Expected initial direction from picker (Right), got %s", pig.CurrentDirection)
	}
	if w.em.GetParent(pigs[0]) != w.pigParent {
		t.Errorf("Expected pig parented to %d, got %d", w.pigParent, w.em.GetParent(pigs[0]))
	}
}

// TestPigSpawnCreatesParentWhenMissing 没有猪父实体时自动创建
func TestPigSpawnCreatesParentWhenMissing(t *testing.T) {
	w := newTestWorld(100, nil)
	w.em.DestroyEntity(w.pigParent)
	w.em.RemoveMarkedEntities()

	w.input.Tap(types.ActionSpawnPig)
	w.spawn.Update(testFrame)

	pigs := w.pigs()
	if len(pigs) != 1 {
		t.Fatalf("Expected 1 pig, got %d", len(pigs))
	}
	parent := w.em.GetParent(pigs[0])
	if parent == ecs.InvalidEntity {
		t.Fatal("Pig should be parented to a freshly created parent")
	}
	if !ecs.HasComponent[*components.PigParentComponent](w.em, parent) {
		t.Error("New parent should carry PigParentComponent")
	}
}

// TestPigSpawnWithoutPlayer 没有玩家时不扣款
func TestPigSpawnWithoutPlayer(t *testing.T) {
	w := newTestWorld(100, nil)
	w.em.DestroyEntity(w.player)
	w.em.RemoveMarkedEntities()

	w.input.Tap(types.ActionSpawnPig)
	w.spawn.Update(testFrame)

	if len(w.pigs()) != 0 {
		t.Error("No pig should spawn without a player")
	}
	if w.gs.GetMoney() != 100 {
		t.Errorf("Money must be untouched, got %v", w.gs.GetMoney())
	}
}
