package systems

import "github.com/decker502/pigfarm/pkg/types"

// InputSource 输入源抽象
// 生产环境由 utils.KeyboardInput 实现，测试和无头模拟使用 utils.ScriptedInput
type InputSource interface {
	// Pressed 动作当前是否按住
	Pressed(action types.Action) bool
	// JustPressed 动作是否在本帧刚按下
	JustPressed(action types.Action) bool
}
