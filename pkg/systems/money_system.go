package systems

import (
	"github.com/decker502/pigfarm/pkg/game"
	"github.com/decker502/pigfarm/pkg/logger"
)

// MoneyListener 接收本帧已入账的赚钱通知
type MoneyListener interface {
	OnMoneyEarned(event game.MoneyEarnedEvent)
}

// MoneySystem 金钱账本的唯一入账入口
// 每帧取走通知队列中的全部事件，逐个入账并转发给监听者
type MoneySystem struct {
	gameState   *game.GameState
	moneyEvents *game.EventQueue[game.MoneyEarnedEvent]
	listeners   []MoneyListener
}

// NewMoneySystem 创建金钱系统
func NewMoneySystem(gs *game.GameState, events *game.EventQueue[game.MoneyEarnedEvent]) *MoneySystem {
	return &MoneySystem{
		gameState:   gs,
		moneyEvents: events,
	}
}

// AddListener 注册监听者（如收钱音效）
func (s *MoneySystem) AddListener(listener MoneyListener) {
	s.listeners = append(s.listeners, listener)
}

// Update 结算本帧所有赚钱通知
func (s *MoneySystem) Update(deltaTime float64) {
	for _, event := range s.moneyEvents.Drain() {
		s.gameState.Credit(event.Amount)
		logger.Infof("[MoneySystem] Earned $%.2f, money: $%.2f", event.Amount, s.gameState.GetMoney())
		for _, l := range s.listeners {
			l.OnMoneyEarned(event)
		}
	}
}
