package scenes

import (
	"image/color"

	"github.com/decker502/pigfarm/pkg/components"
	"github.com/decker502/pigfarm/pkg/config"
	"github.com/decker502/pigfarm/pkg/ecs"
	"github.com/decker502/pigfarm/pkg/entities"
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/decker502/pigfarm/pkg/systems"
	"github.com/decker502/pigfarm/pkg/types"
	"github.com/decker502/pigfarm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// grassColor 农场背景色
var grassColor = color.RGBA{R: 96, G: 152, B: 72, A: 255}

// GameSceneOptions 创建农场场景所需的依赖
// ResourceManager / AudioManager / Settings 可为 nil（无头模拟、测试）
type GameSceneOptions struct {
	Config          *config.GameConfig
	Input           systems.InputSource
	DirectionPicker types.DirectionPicker
	ResourceManager *game.ResourceManager
	AudioManager    *game.AudioManager
	Settings        *game.SettingsManager
}

// GameScene 农场场景
// 持有 ECS 世界、金钱账本和全部系统，按固定顺序每帧更新
type GameScene struct {
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	settings        *game.SettingsManager
	gameConfig      *config.GameConfig
	input           systems.InputSource

	gameState   *game.GameState
	moneyEvents *game.EventQueue[game.MoneyEarnedEvent]

	// 图片资源（无资源管理器时为 nil，实体只更新不绘制）
	playerSheet *ebiten.Image
	pigImage    *ebiten.Image

	// ECS Framework and Systems
	entityManager         *ecs.EntityManager
	playerMovementSystem  *systems.PlayerMovementSystem
	pigSpawnSystem        *systems.PigSpawnSystem
	pigLifetimeSystem     *systems.PigLifetimeSystem
	moneySystem           *systems.MoneySystem
	moneySoundSystem      *systems.MoneySoundSystem
	spriteAnimationSystem *systems.SpriteAnimationSystem
	playerAnimationSystem *systems.PlayerAnimationSystem
	cameraSystem          *systems.CameraSystem
	renderSystem          *systems.RenderSystem

	playerEntity    ecs.EntityID
	pigParentEntity ecs.EntityID
	cameraEntity    ecs.EntityID

	showInspector bool
	elapsed       float64 // 场景运行总时间（秒）
}

// NewGameScene 创建农场场景
// 启动时生成玩家、猪父实体和镜头，账本余额为配置的初始金额，阶段为 Gameplay
func NewGameScene(opts GameSceneOptions) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	input := opts.Input
	if input == nil {
		// 没有输入源时场景照常运行，玩家不会移动
		input = utils.NewScriptedInput()
	}
	picker := opts.DirectionPicker
	if picker == nil {
		picker = types.NewRandomDirectionPicker(nil)
	}

	s := &GameScene{
		resourceManager: opts.ResourceManager,
		audioManager:    opts.AudioManager,
		settings:        opts.Settings,
		gameConfig:      cfg,
		input:           input,
		gameState:       game.NewGameState(cfg.Economy.InitialMoney),
		moneyEvents:     game.NewEventQueue[game.MoneyEarnedEvent](),
		entityManager:   ecs.NewEntityManager(),
		showInspector:   true,
	}
	if s.settings != nil {
		s.showInspector = s.settings.GetSettings().ShowInspector
	}

	s.loadResources()

	em := s.entityManager
	s.playerEntity = entities.NewPlayerEntity(em, cfg, s.playerSheet)
	s.pigParentEntity = entities.NewPigParentEntity(em)
	s.cameraEntity = entities.NewCameraEntity(em, cfg.Camera, s.playerEntity)

	s.playerMovementSystem = systems.NewPlayerMovementSystem(em, s.input)
	s.pigSpawnSystem = systems.NewPigSpawnSystem(em, s.gameState, s.input, cfg.Pig, picker, s.pigImage)
	s.pigLifetimeSystem = systems.NewPigLifetimeSystem(em, s.moneyEvents, cfg.Pig.Reward, picker)
	s.moneySystem = systems.NewMoneySystem(s.gameState, s.moneyEvents)
	if s.audioManager != nil {
		s.moneySoundSystem = systems.NewMoneySoundSystem(s.audioManager, game.SoundMoney)
		s.moneySystem.AddListener(s.moneySoundSystem)
	}
	s.spriteAnimationSystem = systems.NewSpriteAnimationSystem(em)
	s.playerAnimationSystem = systems.NewPlayerAnimationSystem(em, &cfg.Animation)
	s.cameraSystem = systems.NewCameraSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)

	logger.Infof("[GameScene] Farm ready: money $%.2f, player at (%.0f, %.0f)",
		s.gameState.GetMoney(), cfg.Player.StartX, cfg.Player.StartY)
	return s
}

// Update 按固定顺序更新一帧
//
//  1. 玩家移动、购买猪、猪的生命周期、金钱结算（仅 Gameplay 阶段）
//  2. 帧动画、玩家动画、镜头跟随（始终运行）
//  3. 帧末清理标记删除的实体
//
// 同一帧产生的赚钱通知在同一帧入账
func (s *GameScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if s.input.JustPressed(types.ActionToggleInspector) {
		s.toggleInspector()
	}

	if s.gameState.IsGameplay() {
		s.playerMovementSystem.Update(deltaTime)
		s.pigSpawnSystem.Update(deltaTime)
		s.pigLifetimeSystem.Update(deltaTime)
		s.moneySystem.Update(deltaTime)
	}

	s.spriteAnimationSystem.Update(deltaTime)
	s.playerAnimationSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、实体、HUD 和检查面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(grassColor)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)
	if s.showInspector {
		s.drawInspector(screen)
	}
}

// toggleInspector 切换检查面板，并写回设置（由 App 退出时保存）
func (s *GameScene) toggleInspector() {
	if s.settings != nil {
		s.showInspector = s.settings.ToggleInspector()
	} else {
		s.showInspector = !s.showInspector
	}
	logger.Debugf("[GameScene] Inspector visible: %v", s.showInspector)
}

// GameState 返回场景的金钱账本
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回场景的 ECS 世界
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerEntity 返回玩家实体ID
func (s *GameScene) PlayerEntity() ecs.EntityID {
	return s.playerEntity
}

// PigCount 返回当前存活（未标记删除）的猪数量
func (s *GameScene) PigCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.PigComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// InspectorVisible 检查面板是否可见
func (s *GameScene) InspectorVisible() bool {
	return s.showInspector
}

// Elapsed 场景运行总时间（秒）
func (s *GameScene) Elapsed() float64 {
	return s.elapsed
}
