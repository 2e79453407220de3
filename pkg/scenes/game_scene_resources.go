package scenes

import (
	"image/color"

	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
)

var (
	playerPlaceholderColor = color.RGBA{R: 70, G: 110, B: 200, A: 255}
	pigPlaceholderColor    = color.RGBA{R: 255, G: 170, B: 190, A: 255}
)

// pigPlaceholderSize 猪图片缺失时占位图的边长
const pigPlaceholderSize = 32

// loadResources 加载场景需要的图片并预加载收钱音效
// 图片缺失时使用占位图，没有资源管理器时跳过（实体只更新不绘制）
func (s *GameScene) loadResources() {
	if s.resourceManager == nil {
		logger.Debugf("[GameScene] No resource manager, running without images")
		return
	}

	anim := s.gameConfig.Animation
	s.playerSheet = s.resourceManager.LoadImageOrPlaceholder(game.ImagePlayerSpritesheet,
		anim.CellSize*anim.Columns, anim.CellSize*anim.Rows, playerPlaceholderColor)
	s.pigImage = s.resourceManager.LoadImageOrPlaceholder(game.ImagePig,
		pigPlaceholderSize, pigPlaceholderSize, pigPlaceholderColor)

	if s.audioManager != nil {
		s.audioManager.PreloadSounds([]string{game.SoundMoney})
	}
}
