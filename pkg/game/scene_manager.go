package game

import (
	"fmt"

	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包反向依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 LoadScene 加载的场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// LoadScene 通过工厂创建指定名称的场景并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) LoadScene(name string) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	scene, err := sm.sceneFactory(name)
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", name, err)
	}
	if scene == nil {
		return fmt.Errorf("scene factory returned nil for %q", name)
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	logger.Infof("[SceneManager] 切换到场景: %s", name)
	return nil
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
