// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/decker502/pigfarm/pkg/scenes"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/decker502/pigfarm/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 默认路径（嵌入资源）
const (
	DefaultConfigPath   = "data/game_config.yaml"
	DefaultResourcePath = "assets/config/resources.yaml"
	settingsAppName     = "pigfarm"
	sampleRate          = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出（debug 级别）
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用嵌入的 data/game_config.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	gameConfig      *config.GameConfig
	verbose         bool
	sessionID       string

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置文件错误直接返回；图片、音效和设置存储缺失时降级运行。
func NewApp(cfg Config) (*App, error) {
	logCfg := logger.DefaultConfig()
	if cfg.Verbose {
		logCfg = logger.VerboseConfig()
	}
	if err := logger.Init(logCfg); err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}
	sessionID := uuid.NewString()
	logger.With("session", sessionID)

	// 命令行指定的配置文件从磁盘读取，默认配置从嵌入资源读取
	configPath := cfg.ConfigPath
	var gameConfig *config.GameConfig
	var err error
	if configPath == "" {
		configPath = DefaultConfigPath
		gameConfig, err = config.LoadGameConfig(configPath)
	} else {
		gameConfig, err = config.LoadGameConfigFile(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	logger.Infof("[Config] 加载游戏配置: %s", configPath)

	input, err := utils.NewKeyboardInput(gameConfig.Keys.Bindings())
	if err != nil {
		return nil, fmt.Errorf("按键绑定无效: %w", err)
	}
	// 移动端没有键盘：点击屏幕购买猪
	if utils.IsMobile() {
		input.BindTap(types.ActionSpawnPig)
	}

	// 设置存储不可用时仅使用内存设置
	if err := utils.EnsureStorageDir(settingsAppName); err != nil {
		logger.Warnf("[App] %v", err)
	}
	storage, err := game.OpenSettingsStorage(settingsAppName)
	if err != nil {
		logger.Warnf("[App] %v (settings will not be saved)", err)
	}
	settingsManager := game.NewSettingsManager(storage)

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(DefaultResourcePath); err != nil {
		logger.Warnf("[App] 资源配置加载失败: %v (using placeholders)", err)
	}
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	logger.Infof("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		switch name {
		case game.SceneFarm:
			return scenes.NewGameScene(scenes.GameSceneOptions{
				Config:          gameConfig,
				Input:           input,
				DirectionPicker: types.NewRandomDirectionPicker(nil),
				ResourceManager: resourceManager,
				AudioManager:    audioManager,
				Settings:        settingsManager,
			}), nil
		default:
			return nil, fmt.Errorf("unknown scene: %s", name)
		}
	})
	if err := sceneManager.LoadScene(game.SceneFarm); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Infof("[App] Session %s started", sessionID)
	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
		sessionID:       sessionID,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			logger.Debugf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	a.settingsManager.SetFullscreen(fullscreen)
	if fullscreen {
		return
	}

	// 退出全屏
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	logger.Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	// 像素风精灵使用最近邻滤波
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// WindowConfig 返回窗口配置（标题、初始大小）
func (a *App) WindowConfig() config.WindowConfig {
	return a.gameConfig.Window
}

// Close 保存设置并刷新日志
// 在 ebiten.RunGame 返回后调用
func (a *App) Close() error {
	if err := a.settingsManager.Save(); err != nil {
		logger.Errorf("[App] Failed to save settings: %v", err)
	}
	logger.Infof("[App] Session %s ended", a.sessionID)
	// stderr 上的 Sync 在部分平台返回 EINVAL，忽略
	_ = logger.Sync()
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
