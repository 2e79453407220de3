package game

// GamePhase 游戏阶段
type GamePhase int

const (
	// PhaseMainMenu 主菜单阶段：玩法系统不运行
	PhaseMainMenu GamePhase = iota
	// PhaseGameplay 游戏进行中
	PhaseGameplay
)

// String 返回阶段名称
func (p GamePhase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseGameplay:
		return "Gameplay"
	default:
		return "Unknown"
	}
}

// GameState 存储一局游戏的全局状态（金钱账本、游戏阶段）
// 由场景创建并显式传给需要它的系统，不使用全局单例
type GameState struct {
	Money float64   // 当前金钱（不做下限截断）
	Phase GamePhase // 当前游戏阶段
}

// NewGameState 创建游戏状态
func NewGameState(initialMoney float64) *GameState {
	return &GameState{
		Money: initialMoney,
		Phase: PhaseGameplay,
	}
}

// Credit 增加金钱
// 仅由 MoneySystem 在消费赚钱通知时调用
func (gs *GameState) Credit(amount float64) {
	gs.Money += amount
}

// Debit 直接扣除金钱，不检查余额
func (gs *GameState) Debit(amount float64) {
	gs.Money -= amount
}

// CanAfford 余额是否足够支付 amount（允许恰好花光）
func (gs *GameState) CanAfford(amount float64) bool {
	return gs.Money >= amount
}

// TrySpend 余额充足时扣除金钱并返回 true，否则不做任何修改并返回 false
func (gs *GameState) TrySpend(amount float64) bool {
	if !gs.CanAfford(amount) {
		return false
	}
	gs.Debit(amount)
	return true
}

// GetMoney 返回当前金钱
func (gs *GameState) GetMoney() float64 {
	return gs.Money
}

// IsGameplay 是否处于游戏进行阶段
func (gs *GameState) IsGameplay() bool {
	return gs.Phase == PhaseGameplay
}

// SetPhase 切换游戏阶段
func (gs *GameState) SetPhase(phase GamePhase) {
	gs.Phase = phase
}
