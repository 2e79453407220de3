package app

import (
	"testing"

	"github.com/decker502/pigfarm/pkg/config"
)

// TestLayoutFollowsWindowConfig 逻辑屏幕尺寸跟随配置中的窗口大小
func TestLayoutFollowsWindowConfig(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"默认 800x600", config.GameWindowWidth, config.GameWindowHeight},
		{"自定义 1280x720", 1280, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			cfg.Window.Width = tt.width
			cfg.Window.Height = tt.height
			a := &App{gameConfig: cfg}

			// 外部窗口尺寸不影响逻辑屏幕
			w, h := a.Layout(1920, 1080)
			if w != tt.width || h != tt.height {
				t.Errorf("Layout: expected %dx%d, got %dx%d", tt.width, tt.height, w, h)
			}
			if got := a.WindowConfig(); got != cfg.Window {
				t.Errorf("WindowConfig: expected %+v, got %+v", cfg.Window, got)
			}
		})
	}
}
