// verify_economy 无窗口运行农场核心系统，验证购买与收益的账本变化
//
// 用法：
//
//	go run ./cmd/verify_economy -seconds 30 -buy-every 2 -walk right
//
// 输出每秒的余额、存活猪数量和玩家位置。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/decker502/pigfarm/pkg/scenes"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/decker502/pigfarm/pkg/utils"
)

const tps = 60

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	seconds    = flag.Int("seconds", 30, "模拟时长（秒）")
	buyEvery   = flag.Float64("buy-every", 1, "每隔多少秒尝试购买一头猪（<=0 不购买）")
	walk       = flag.String("walk", "", "玩家持续移动方向：up/down/left/right")
	seed       = flag.Int64("seed", 1, "猪游荡方向的随机种子")
)

var walkActions = map[string]types.Action{
	"up":    types.ActionMoveUp,
	"down":  types.ActionMoveDown,
	"left":  types.ActionMoveLeft,
	"right": types.ActionMoveRight,
}

func main() {
	flag.Parse()

	logCfg := logger.DefaultConfig()
	if *verbose {
		logCfg = logger.VerboseConfig()
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfigFile(*configPath)
		if err != nil {
			logger.Fatalf("[VerifyEconomy] %v", err)
		}
		cfg = loaded
	}

	input := utils.NewScriptedInput()
	if *walk != "" {
		action, ok := walkActions[*walk]
		if !ok {
			logger.Fatalf("[VerifyEconomy] unknown walk direction: %s", *walk)
		}
		input.Hold(action)
	}

	scene := scenes.NewGameScene(scenes.GameSceneOptions{
		Config:          cfg,
		Input:           input,
		DirectionPicker: types.NewRandomDirectionPicker(rand.New(rand.NewSource(*seed))),
	})

	dt := 1.0 / tps
	buyFrames := int(*buyEvery * tps)
	bought := 0
	fmt.Printf("%6s %10s %6s %6s %18s\n", "time", "money", "pigs", "bought", "player")
	printRow(scene, 0, bought)

	for frame := 1; frame <= *seconds*tps; frame++ {
		if buyFrames > 0 && (frame-1)%buyFrames == 0 {
			if scene.GameState().CanAfford(cfg.Pig.Cost) {
				bought++
			}
			input.Tap(types.ActionSpawnPig)
		}
		scene.Update(dt)
		input.EndFrame()

		if frame%tps == 0 {
			printRow(scene, frame/tps, bought)
		}
	}

	start := cfg.Economy.InitialMoney
	fmt.Printf("\npigs bought: %d, alive: %d, final money: $%.2f (start $%.2f, profit per pig $%.2f)\n",
		bought, scene.PigCount(), scene.GameState().GetMoney(), start, cfg.Pig.Reward-cfg.Pig.Cost)
}

func printRow(scene *scenes.GameScene, second, bought int) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.EntityManager(), scene.PlayerEntity())
	fmt.Printf("%5ds %10.2f %6d %6d %8.1f,%8.1f\n",
		second, scene.GameState().GetMoney(), scene.PigCount(), bought, pos.X, pos.Y)
}
