package systems

import (
	"github.com/decker502/pigfarm/pkg/game"
)

// SoundPlayer 按资源ID播放音效（由 game.AudioManager 实现）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// MoneySoundSystem 每条赚钱通知播放一次收钱音效
// 作为 MoneySystem 的监听者注册，不直接读取通知队列
type MoneySoundSystem struct {
	player  SoundPlayer
	soundID string
	played  int
}

// NewMoneySoundSystem 创建收钱音效系统
func NewMoneySoundSystem(player SoundPlayer, soundID string) *MoneySoundSystem {
	return &MoneySoundSystem{
		player:  player,
		soundID: soundID,
	}
}

// OnMoneyEarned 实现 MoneyListener
func (s *MoneySoundSystem) OnMoneyEarned(event game.MoneyEarnedEvent) {
	if s.player == nil {
		return
	}
	if s.player.PlaySound(s.soundID) {
		s.played++
	}
}

// PlayedCount 成功播放的次数
func (s *MoneySoundSystem) PlayedCount() int {
	return s.played
}
