package scenes

import (
	"fmt"

	"github.com/decker502/pigfarm/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// moneyText HUD 上显示的余额文本
func (s *GameScene) moneyText() string {
	return fmt.Sprintf("Money: $%.2f", s.gameState.GetMoney())
}

// drawHUD 在左上角绘制余额和操作提示
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.moneyText(), config.HUDMarginX, config.HUDMarginY)

	keys := s.gameConfig.Keys
	hint := fmt.Sprintf("%s%s%s%s: move   %s: buy pig ($%.0f)   %s: inspector",
		keys.MoveUp, keys.MoveLeft, keys.MoveDown, keys.MoveRight,
		keys.SpawnPig, s.gameConfig.Pig.Cost, keys.ToggleInspector)
	ebitenutil.DebugPrintAt(screen, hint, config.HUDMarginX, screen.Bounds().Dy()-config.HUDMarginY-config.InspectorLineHeight)
}
