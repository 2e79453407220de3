package config

import (
	"fmt"
	"os"

	"github.com/decker502/pigfarm/pkg/embedded"
	"github.com/decker502/pigfarm/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内置游戏配置文件路径（嵌入资源）
const DefaultGameConfigPath = "data/game_config.yaml"

// GameConfig 游戏玩法配置
// 对应 data/game_config.yaml，缺省字段使用 DefaultGameConfig 中的值
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Pig       PigConfig       `yaml:"pig"`
	Economy   EconomyConfig   `yaml:"economy"`
	Camera    CameraConfig    `yaml:"camera"`
	Keys      KeyBindings     `yaml:"keys"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // 移动速度（单位/秒）
	StartX float64 `yaml:"startX"` // 出生点X（世界坐标）
	StartY float64 `yaml:"startY"` // 出生点Y（世界坐标）
	Z      float64 `yaml:"z"`      // 绘制层级
	Scale  float64 `yaml:"scale"`  // 绘制缩放
}

// AnimationConfig 玩家行走动画表
// 四个方向各自一组精灵图格子索引，每组至少一帧
type AnimationConfig struct {
	FrameInterval float64 `yaml:"frameInterval"` // 帧间隔（秒）
	CellSize      int     `yaml:"cellSize"`      // 精灵图格子边长（像素）
	Columns       int     `yaml:"columns"`       // 精灵图列数
	Rows          int     `yaml:"rows"`          // 精灵图行数
	WalkDown      []int   `yaml:"walkDown"`
	WalkUp        []int   `yaml:"walkUp"`
	WalkLeft      []int   `yaml:"walkLeft"`
	WalkRight     []int   `yaml:"walkRight"`
}

// PigConfig 猪的经济与移动参数
type PigConfig struct {
	Cost           float64 `yaml:"cost"`           // 购买价格
	Reward         float64 `yaml:"reward"`         // 寿命结束时获得的金钱
	Lifetime       float64 `yaml:"lifetime"`       // 寿命（秒，单次）
	Speed          float64 `yaml:"speed"`          // 移动速度（单位/秒）
	WanderInterval float64 `yaml:"wanderInterval"` // 游荡方向切换间隔（秒，重复）
	Z              float64 `yaml:"z"`              // 绘制层级
	Scale          float64 `yaml:"scale"`          // 绘制缩放
}

// EconomyConfig 经济配置
type EconomyConfig struct {
	InitialMoney float64 `yaml:"initialMoney"`
}

// CameraConfig 镜头配置
type CameraConfig struct {
	Zoom    float64 `yaml:"zoom"`    // 投影缩放
	OffsetX float64 `yaml:"offsetX"` // 初始X偏移
	OffsetY float64 `yaml:"offsetY"` // 初始Y偏移
}

// KeyBindings 按键绑定（ebiten 按键名称，如 "W"、"Space"、"ArrowUp"）
type KeyBindings struct {
	MoveUp          string `yaml:"moveUp"`
	MoveDown        string `yaml:"moveDown"`
	MoveLeft        string `yaml:"moveLeft"`
	MoveRight       string `yaml:"moveRight"`
	SpawnPig        string `yaml:"spawnPig"`
	ToggleInspector string `yaml:"toggleInspector"`
}

// Bindings 返回动作到按键名称的映射
func (k KeyBindings) Bindings() map[types.Action]string {
	return map[types.Action]string{
		types.ActionMoveUp:          k.MoveUp,
		types.ActionMoveDown:        k.MoveDown,
		types.ActionMoveLeft:        k.MoveLeft,
		types.ActionMoveRight:       k.MoveRight,
		types.ActionSpawnPig:        k.SpawnPig,
		types.ActionToggleInspector: k.ToggleInspector,
	}
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Pig Farm",
		},
		Player: PlayerConfig{
			Speed:  100.0,
			StartX: 47.0,
			StartY: 59.0,
			Z:      1.5,
			Scale:  0.5,
		},
		Animation: AnimationConfig{
			FrameInterval: 0.2,
			CellSize:      48,
			Columns:       4,
			Rows:          4,
			WalkDown:      []int{0, 4, 8, 12},
			WalkUp:        []int{2, 6, 10, 14},
			WalkLeft:      []int{1, 5, 9, 13},
			WalkRight:     []int{3, 7, 11, 15},
		},
		Pig: PigConfig{
			Cost:           10.0,
			Reward:         15.0,
			Lifetime:       10.0,
			Speed:          25.0,
			WanderInterval: 2.0,
			Z:              1.0,
			Scale:          1.0,
		},
		Economy: EconomyConfig{
			InitialMoney: 100.0,
		},
		Camera: CameraConfig{
			Zoom:    0.5,
			OffsetX: 1280.0 / 4.0,
			OffsetY: 720.0 / 4.0,
		},
		Keys: KeyBindings{
			MoveUp:          "W",
			MoveDown:        "S",
			MoveLeft:        "A",
			MoveRight:       "D",
			SpawnPig:        "Space",
			ToggleInspector: "Escape",
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 开头读取嵌入资源，否则读取磁盘）
//
// 返回：
//
//	*GameConfig - 合并默认值并校验后的配置
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	return ParseGameConfig(data, filepath)
}

// LoadGameConfigFile 从磁盘加载游戏配置（命令行 -config 指定的文件）
// 与 LoadGameConfig 不同，"data/" 开头的路径也读取磁盘而不是嵌入资源
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	return ParseGameConfig(data, path)
}

// ParseGameConfig 解析 YAML 数据为游戏配置
// 解析结果叠加在默认配置之上：YAML 中未出现的字段保留默认值
func ParseGameConfig(data []byte, source string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", source, err)
	}

	return cfg, nil
}

// Validate 验证配置的完整性和合法性
// 动画表每个方向至少一帧，保证取模查表时不会除零
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Player.Speed < 0 {
		return fmt.Errorf("player.speed cannot be negative, got %v", c.Player.Speed)
	}

	if err := c.Animation.Validate(); err != nil {
		return err
	}

	if c.Pig.Cost < 0 {
		return fmt.Errorf("pig.cost cannot be negative, got %v", c.Pig.Cost)
	}
	if c.Pig.Lifetime <= 0 {
		return fmt.Errorf("pig.lifetime must be positive, got %v", c.Pig.Lifetime)
	}
	if c.Pig.WanderInterval <= 0 {
		return fmt.Errorf("pig.wanderInterval must be positive, got %v", c.Pig.WanderInterval)
	}
	if c.Pig.Speed < 0 {
		return fmt.Errorf("pig.speed cannot be negative, got %v", c.Pig.Speed)
	}

	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("camera.zoom must be positive, got %v", c.Camera.Zoom)
	}

	return nil
}

// Validate 验证动画表
func (a *AnimationConfig) Validate() error {
	if a.FrameInterval <= 0 {
		return fmt.Errorf("animation.frameInterval must be positive, got %v", a.FrameInterval)
	}
	if a.CellSize <= 0 || a.Columns <= 0 || a.Rows <= 0 {
		return fmt.Errorf("animation: cellSize/columns/rows must be positive, got %d/%d/%d", a.CellSize, a.Columns, a.Rows)
	}

	cellCount := a.Columns * a.Rows
	lists := []struct {
		name   string
		frames []int
	}{
		{"walkDown", a.WalkDown},
		{"walkUp", a.WalkUp},
		{"walkLeft", a.WalkLeft},
		{"walkRight", a.WalkRight},
	}
	for _, l := range lists {
		if len(l.frames) == 0 {
			return fmt.Errorf("animation.%s: at least one frame is required", l.name)
		}
		for _, idx := range l.frames {
			if idx < 0 || idx >= cellCount {
				return fmt.Errorf("animation.%s: frame index %d out of range [0, %d)", l.name, idx, cellCount)
			}
		}
	}
	return nil
}

// Frames 返回指定朝向的帧序列
func (a *AnimationConfig) Frames(dir types.Direction) []int {
	switch dir {
	case types.DirectionUp:
		return a.WalkUp
	case types.DirectionLeft:
		return a.WalkLeft
	case types.DirectionRight:
		return a.WalkRight
	default:
		return a.WalkDown
	}
}

// CellFor 返回朝向 dir 在第 frame 帧时应显示的格子索引
// frame 不设上限，回绕在这里通过取模完成
func (a *AnimationConfig) CellFor(dir types.Direction, frame uint64) int {
	frames := a.Frames(dir)
	return frames[frame%uint64(len(frames))]
}
