package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/pigfarm/pkg/app"
	"github.com/decker502/pigfarm/pkg/embedded"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game_config.yaml）")
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		// 日志可能尚未初始化，直接输出到 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	gameApp.Close()
	if runErr != nil {
		logger.Fatalf("[Main] 游戏异常退出: %v", runErr)
	}
}
