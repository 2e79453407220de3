package entities

import (
	"testing"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/types"
)

// TestNewPlayerEntity 测试玩家实体创建
func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id := NewPlayerEntity(em, cfg, nil)
	if id == ecs.InvalidEntity {
		t.Fatal("Expected valid entity ID, got 0")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Player should have PositionComponent")
	}
	if pos.X != 47 || pos.Y != 59 || pos.Z != 1.5 {
		t.Errorf("Expected spawn (47, 59, 1.5), got (%v, %v, %v)", pos.X, pos.Y, pos.Z)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("Player should have PlayerComponent")
	}
	if player.Speed != 100 {
		t.Errorf("Expected speed 100, got %v", player.Speed)
	}
	if player.CurrentDirection != types.DirectionDown || player.IsMoving {
		t.Errorf("Expected idle facing down, got %s moving=%v", player.CurrentDirection, player.IsMoving)
	}

	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
	if !ok {
		t.Fatal("Player should have SpriteSheetComponent")
	}
	if sheet.CellWidth != 48 || sheet.CellHeight != 48 || sheet.Columns != 4 {
		t.Errorf("Expected 48px cells in 4 columns, got %dx%d/%d", sheet.CellWidth, sheet.CellHeight, sheet.Columns)
	}
	if sheet.Index != 0 || sheet.Scale != 0.5 {
		t.Errorf("Expected index 0 scale 0.5, got %d / %v", sheet.Index, sheet.Scale)
	}

	anim, ok := ecs.GetComponent[*components.AnimatedSpriteComponent](em, id)
	if !ok {
		t.Fatal("Player should have AnimatedSpriteComponent")
	}
	if anim.Timer.Duration != 0.2 || anim.Timer.Mode != components.TimerRepeating {
		t.Errorf("Expected repeating 0.2s timer, got %v/%v", anim.Timer.Duration, anim.Timer.Mode)
	}

	name, _ := ecs.GetComponent[*components.NameComponent](em, id)
	if name == nil || name.Name != PlayerName {
		t.Errorf("Expected name %q", PlayerName)
	}
}

// TestNewPigEntity 测试猪实体创建及父子关系
func TestNewPigEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Pig
	parent := NewPigParentEntity(em)

	pig := NewPigEntity(em, parent, 12, -4, cfg, types.DirectionLeft, nil)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, pig)
	if !ok || pos.X != 12 || pos.Y != -4 {
		t.Fatalf("Expected pig at (12, -4), got %+v", pos)
	}

	comp, ok := ecs.GetComponent[*components.PigComponent](em, pig)
	if !ok {
		t.Fatal("Pig should have PigComponent")
	}
	if comp.Lifetime.Duration != 10 || comp.Lifetime.Mode != components.TimerOnce {
		t.Errorf("Expected once 10s lifetime, got %v/%v", comp.Lifetime.Duration, comp.Lifetime.Mode)
	}
	if comp.DirectionTimer.Duration != 2 || comp.DirectionTimer.Mode != components.TimerRepeating {
		t.Errorf("Expected repeating 2s wander timer, got %v/%v", comp.DirectionTimer.Duration, comp.DirectionTimer.Mode)
	}
	if comp.Speed != 25 {
		t.Errorf("Expected speed 25, got %v", comp.Speed)
	}
	if comp.CurrentDirection != types.DirectionLeft {
		t.Errorf("Expected Left, got %s", comp.CurrentDirection)
	}

	if em.GetParent(pig) != parent {
		t.Errorf("Expected parent %d, got %d", parent, em.GetParent(pig))
	}
	children := em.GetChildren(parent)
	if len(children) != 1 || children[0] != pig {
		t.Errorf("Expected parent children [%d], got %v", pig, children)
	}
	if !ecs.HasComponent[*components.PigParentComponent](em, parent) {
		t.Error("Parent should carry PigParentComponent")
	}
}

func TestNewPigEntityWithoutParent(t *testing.T) {
	em := ecs.NewEntityManager()
	pig := NewPigEntity(em, ecs.InvalidEntity, 0, 0, config.DefaultGameConfig().Pig, types.DirectionUp, nil)

	if em.GetParent(pig) != ecs.InvalidEntity {
		t.Error("Pig without parent should report InvalidEntity")
	}
}

func TestNewCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Camera

	cam := NewCameraEntity(em, cfg, 7)
	comp, ok := ecs.GetComponent[*components.CameraComponent](em, cam)
	if !ok {
		t.Fatal("Camera should have CameraComponent")
	}
	if comp.Zoom != 0.5 {
		t.Errorf("Expected zoom 0.5, got %v", comp.Zoom)
	}
	if comp.X != 320 || comp.Y != 180 {
		t.Errorf("Expected initial offset (320, 180), got (%v, %v)", comp.X, comp.Y)
	}
	if comp.Target != 7 {
		t.Errorf("Expected target 7, got %d", comp.Target)
	}
}
