package utils

import "github.com/decker502/pigfarm/pkg/types"

// ScriptedInput 由代码驱动的输入源，用于测试和无头模拟
//
// Hold/Release 控制持续按住的动作；Tap 让动作在下一次 EndFrame 之前
// 报告一次 JustPressed（同时视为按住）
type ScriptedInput struct {
	held   map[types.Action]bool
	tapped map[types.Action]bool
}

// NewScriptedInput 创建空的脚本输入
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		held:   make(map[types.Action]bool),
		tapped: make(map[types.Action]bool),
	}
}

// Hold 按住动作
func (s *ScriptedInput) Hold(actions ...types.Action) {
	for _, a := range actions {
		s.held[a] = true
	}
}

// Release 松开动作
func (s *ScriptedInput) Release(actions ...types.Action) {
	for _, a := range actions {
		delete(s.held, a)
	}
}

// ReleaseAll 松开全部动作并清除未消费的点按
func (s *ScriptedInput) ReleaseAll() {
	s.held = make(map[types.Action]bool)
	s.tapped = make(map[types.Action]bool)
}

// Tap 本帧点按一次动作
func (s *ScriptedInput) Tap(action types.Action) {
	s.tapped[action] = true
}

// EndFrame 帧结束，清除本帧的点按
func (s *ScriptedInput) EndFrame() {
	for a := range s.tapped {
		delete(s.tapped, a)
	}
}

// Pressed 动作是否按住（本帧点按也算）
func (s *ScriptedInput) Pressed(action types.Action) bool {
	return s.held[action] || s.tapped[action]
}

// JustPressed 动作是否在本帧点按
func (s *ScriptedInput) JustPressed(action types.Action) bool {
	return s.tapped[action]
}
