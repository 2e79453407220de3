package components

import "github.com/decker502/pigfarm/pkg/types"

// PlayerComponent 标记实体为玩家，并存储移动与朝向状态
// 整个会话只存在一个玩家实体
type PlayerComponent struct {
	Speed            float64         // 移动速度（单位/秒）
	CurrentDirection types.Direction // 当前朝向，默认向下
	IsMoving         bool            // 本帧是否有方向键按下（每帧重新计算）
}
