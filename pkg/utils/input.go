// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/decker502/pigfarm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ParseKey 将按键名称（如 "W"、"Space"、"ArrowUp"）解析为 ebiten.Key
// 名称不区分大小写
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name %q: %w", name, err)
	}
	return key, nil
}

// KeyboardInput 基于 ebiten 键盘状态的输入源
// 每个动作绑定一个按键；可选地把点击/触摸映射为一个边沿触发的动作
type KeyboardInput struct {
	keys      map[types.Action]ebiten.Key
	tapAction types.Action
	tapBound  bool
}

// NewKeyboardInput 根据动作 -> 按键名称映射创建键盘输入源
// 任何按键名称无法解析都会返回错误；空名称表示该动作不绑定按键
func NewKeyboardInput(bindings map[types.Action]string) (*KeyboardInput, error) {
	keys := make(map[types.Action]ebiten.Key, len(bindings))
	for action, name := range bindings {
		if name == "" {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding for %s: %w", action, err)
		}
		keys[action] = key
	}
	return &KeyboardInput{keys: keys}, nil
}

// KeyFor 返回动作绑定的按键
func (k *KeyboardInput) KeyFor(action types.Action) (ebiten.Key, bool) {
	key, ok := k.keys[action]
	return key, ok
}

// BindTap 让点击或触摸额外触发 action 的 JustPressed（移动端没有键盘）
func (k *KeyboardInput) BindTap(action types.Action) {
	k.tapAction = action
	k.tapBound = true
}

// Pressed 动作对应的按键当前是否按住
func (k *KeyboardInput) Pressed(action types.Action) bool {
	key, ok := k.keys[action]
	return ok && ebiten.IsKeyPressed(key)
}

// JustPressed 动作对应的按键是否在本帧刚按下（边沿触发）
func (k *KeyboardInput) JustPressed(action types.Action) bool {
	if key, ok := k.keys[action]; ok && inpututil.IsKeyJustPressed(key) {
		return true
	}
	if k.tapBound && k.tapAction == action {
		tapped, _, _ := IsJustTouchedOrClicked()
		return tapped
	}
	return false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
