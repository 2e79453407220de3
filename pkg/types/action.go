package types

// Action 抽象的输入动作，与具体按键解耦
type Action int

const (
	// ActionMoveUp 向上移动
	ActionMoveUp Action = iota
	// ActionMoveDown 向下移动
	ActionMoveDown
	// ActionMoveLeft 向左移动
	ActionMoveLeft
	// ActionMoveRight 向右移动
	ActionMoveRight
	// ActionSpawnPig 购买一头猪
	ActionSpawnPig
	// ActionToggleInspector 切换检查面板
	ActionToggleInspector
)

// AllActions 全部输入动作
var AllActions = []Action{
	ActionMoveUp,
	ActionMoveDown,
	ActionMoveLeft,
	ActionMoveRight,
	ActionSpawnPig,
	ActionToggleInspector,
}

// String 返回动作名称
func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSpawnPig:
		return "SpawnPig"
	case ActionToggleInspector:
		return "ToggleInspector"
	default:
		return "Unknown"
	}
}
