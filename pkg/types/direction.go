// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "math/rand"

// Direction 定义四个基本方向
// 玩家朝向与猪的游荡方向共用此类型
type Direction int

const (
	// DirectionDown 向下（玩家默认朝向）
	DirectionDown Direction = iota
	// DirectionUp 向上
	DirectionUp
	// DirectionLeft 向左
	DirectionLeft
	// DirectionRight 向右
	DirectionRight
)

// AllDirections 按固定顺序列出全部四个方向
// 随机选择方向时从这里均匀抽取
var AllDirections = [4]Direction{DirectionUp, DirectionDown, DirectionRight, DirectionLeft}

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Vector 返回方向对应的单位向量（世界坐标，Y轴向上）
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// DirectionPicker 返回一个随机方向
// 所有需要随机方向的地方都通过显式传入的 DirectionPicker 获取，便于测试注入
type DirectionPicker func() Direction

// NewRandomDirectionPicker 基于给定随机源创建均匀分布的方向选择器
// rng 为 nil 时使用全局随机源
func NewRandomDirectionPicker(rng *rand.Rand) DirectionPicker {
	if rng == nil {
		return func() Direction {
			return AllDirections[rand.Intn(len(AllDirections))]
		}
	}
	return func() Direction {
		return AllDirections[rng.Intn(len(AllDirections))]
	}
}

// FixedDirectionPicker 按顺序循环返回给定方向
// 用于测试和无头验证工具，保证结果可复现
func FixedDirectionPicker(sequence ...Direction) DirectionPicker {
	if len(sequence) == 0 {
		sequence = []Direction{DirectionDown}
	}
	next := 0
	return func() Direction {
		d := sequence[next%len(sequence)]
		next++
		return d
	}
}
