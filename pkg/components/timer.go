package components

import "math"

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时器：到时后停在终点，不再触发
	TimerOnce TimerMode = iota
	// TimerRepeating 重复计时器：到时后回绕，继续下一周期
	TimerRepeating
)

// timerEpsilon 浮点累加误差容差
// 例如 600 帧 × (1/60) 秒累加后可能略小于 10.0
const timerEpsilon = 1e-9

// maxCyclesPerTick 单次 Tick 计入的最大周期数
const maxCyclesPerTick = math.MaxInt32

// Timer 通用计时器
// 嵌入在需要时间驱动行为的组件中（猪的寿命、游荡方向切换、动画帧间隔）
// 只在 Tick 时推进，"刚完成"状态只在完成的那一次 Tick 后为真
type Timer struct {
	Duration float64   // 周期时长（秒）
	Elapsed  float64   // 当前周期已过时间（秒）
	Mode     TimerMode // 单次 / 重复

	finished      bool // 单次计时器是否已完成
	timesFinished int  // 最近一次 Tick 中完成的周期数
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick 推进计时器 dt 秒，返回本次完成的周期数
// 单次计时器最多完成一次；重复计时器在一次大步长内可能完成多个周期
func (t *Timer) Tick(dt float64) int {
	t.timesFinished = 0
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	if t.Mode == TimerOnce {
		if t.finished {
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed+timerEpsilon >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.timesFinished = 1
		}
		return t.timesFinished
	}

	// 重复计时器
	if t.Duration <= 0 {
		// 零周期：每次 Tick 视为完成一次，避免除零
		t.timesFinished = 1
		return 1
	}
	// 周期数过大或 dt 为无穷时截断到上限，剩余时间归零
	total := t.Elapsed + dt
	cycles := math.Floor((total + timerEpsilon) / t.Duration)
	if cycles >= maxCyclesPerTick || math.IsInf(total, 0) {
		t.timesFinished = maxCyclesPerTick
		t.Elapsed = 0
		return t.timesFinished
	}
	t.timesFinished = int(cycles)
	t.Elapsed = total - cycles*t.Duration
	if t.Elapsed < 0 {
		t.Elapsed = 0
	}
	return t.timesFinished
}

// JustFinished 最近一次 Tick 是否完成了至少一个周期
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick 最近一次 Tick 完成的周期数
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished 单次计时器是否已到时；重复计时器等同于 JustFinished
func (t *Timer) Finished() bool {
	if t.Mode == TimerOnce {
		return t.finished
	}
	return t.JustFinished()
}

// Remaining 当前周期剩余时间（秒）
func (t *Timer) Remaining() float64 {
	remaining := t.Duration - t.Elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset 重置计时器到周期起点
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
