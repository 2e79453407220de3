package components

import "github.com/decker502/pigfarm/pkg/types"

// PigComponent 标记实体为猪，并存储寿命与游荡状态
//
// 状态机：
//   - Alive：每帧沿当前方向移动；DirectionTimer 每完成一个周期重新随机方向
//   - Removed：Lifetime 到时，发出赚钱通知并递归删除实体（终态）
type PigComponent struct {
	Lifetime         Timer           // 寿命（单次计时器）
	Speed            float64         // 移动速度（单位/秒）
	CurrentDirection types.Direction // 当前游荡方向
	DirectionTimer   Timer           // 方向切换计时器（重复计时器）
}

// PigParentComponent 标记所有猪的分组父实体
type PigParentComponent struct{}
