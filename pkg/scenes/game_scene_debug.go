package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// inspectorBackground 检查面板半透明背景
var inspectorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 140}

// inspectorLines 生成检查面板的文本行：账本、阶段，以及每个实体的名称和关键状态
func (s *GameScene) inspectorLines() []string {
	em := s.entityManager
	lines := []string{
		fmt.Sprintf("Phase: %s", s.gameState.Phase),
		fmt.Sprintf("Money: %.2f", s.gameState.GetMoney()),
		fmt.Sprintf("Entities: %d  Pigs: %d", em.EntityCount(), s.PigCount()),
	}

	for _, id := range ecs.GetEntitiesWith1[*components.NameComponent](em) {
		name, _ := ecs.GetComponent[*components.NameComponent](em, id)
		line := fmt.Sprintf("#%d %s", id, name.Name)

		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			line += fmt.Sprintf(" (%.0f, %.0f)", pos.X, pos.Y)
		}
		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
			line += fmt.Sprintf(" %s", player.CurrentDirection)
			if player.IsMoving {
				line += " moving"
			}
		}
		if pig, ok := ecs.GetComponent[*components.PigComponent](em, id); ok {
			line += fmt.Sprintf(" %s %.1fs", pig.CurrentDirection, pig.Lifetime.Remaining())
		}
		if children := em.GetChildren(id); len(children) > 0 {
			line += fmt.Sprintf(" [%d children]", len(children))
		}
		lines = append(lines, line)
	}
	return lines
}

// drawInspector 在屏幕右侧绘制检查面板
// 超出屏幕高度的行不绘制
func (s *GameScene) drawInspector(screen *ebiten.Image) {
	lines := s.inspectorLines()
	maxLines := (screen.Bounds().Dy() - 2*config.HUDMarginY) / config.InspectorLineHeight
	if maxLines > 1 && len(lines) > maxLines {
		lines = append(lines[:maxLines-1], fmt.Sprintf("... %d more", len(lines)-maxLines+1))
	}

	width := float64(screen.Bounds().Dx() - config.InspectorMarginX)
	height := float64(len(lines)*config.InspectorLineHeight + 2*config.HUDMarginY)
	ebitenutil.DrawRect(screen, float64(config.InspectorMarginX), 0, width, height, inspectorBackground)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.InspectorMarginX+config.HUDMarginX, config.HUDMarginY+i*config.InspectorLineHeight)
	}
}
