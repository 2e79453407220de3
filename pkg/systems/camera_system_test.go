package systems

import (
	"testing"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/entities"
	"github.com/decker502/pigfarm/pkg/types"
)

func TestCameraFollowsPlayer(t *testing.T) {
	w := newTestWorld(100, nil)
	cam := entities.NewCameraEntity(w.em, w.cfg.Camera, w.player)
	sys := NewCameraSystem(w.em)

	camComp, _ := ecs.GetComponent[*components.CameraComponent](w.em, cam)
	if camComp.X != 320 || camComp.Y != 180 {
		t.Fatalf("Expected initial offset (320, 180), got (%v, %v)", camComp.X, camComp.Y)
	}

	sys.Update(testFrame)
	if camComp.X != 47 || camComp.Y != 59 {
		t.Errorf("Camera should snap to player at (47, 59), got (%v, %v)", camComp.X, camComp.Y)
	}

	w.input.Hold(types.ActionMoveRight)
	w.movement.Update(1)
	sys.Update(1)
	if camComp.X != 147 || camComp.Y != 59 {
		t.Errorf("Camera should follow to (147, 59), got (%v, %v)", camComp.X, camComp.Y)
	}
}

func TestCameraWithoutTarget(t *testing.T) {
	tests := []struct {
		name   string
		target func(w *testWorld) ecs.EntityID
	}{
		{"不跟随", func(w *testWorld) ecs.EntityID { return ecs.InvalidEntity }},
		{"目标已删除", func(w *testWorld) ecs.EntityID {
			w.em.DestroyEntity(w.player)
			w.em.RemoveMarkedEntities()
			return w.player
		}},
		{"目标没有位置", func(w *testWorld) ecs.EntityID { return w.pigParent }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(100, nil)
			cam := entities.NewCameraEntity(w.em, w.cfg.Camera, tt.target(w))
			NewCameraSystem(w.em).Update(testFrame)

			camComp, _ := ecs.GetComponent[*components.CameraComponent](w.em, cam)
			if camComp.X != 320 || camComp.Y != 180 {
				t.Errorf("Camera should stay at (320, 180), got (%v, %v)", camComp.X, camComp.Y)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	cam := components.CameraComponent{X: 100, Y: 50, Zoom: 0.5}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"镜头中心在屏幕中心", 100, 50, 400, 300},
		{"世界向右 10 = 屏幕向右 20", 110, 50, 420, 300},
		{"世界向上 10 = 屏幕向上 20", 100, 60, 400, 280},
		{"世界向下左", 90, 40, 380, 320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(cam, tt.x, tt.y, 800, 600)
			if !approxEqual(sx, tt.wantX) || !approxEqual(sy, tt.wantY) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestActiveCameraDefault(t *testing.T) {
	em := ecs.NewEntityManager()
	cam := ActiveCamera(em)
	if cam.Zoom != 1 || cam.X != 0 || cam.Y != 0 {
		t.Errorf("Expected default camera at origin with zoom 1, got %+v", cam)
	}
}
