package game

import (
	"github.com/decker502/pigfarm/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效管理器
// 职责：
//   - 通过资源ID播放单次音效（收钱音效等）
//   - 从 SettingsManager 读取音量和开关
//
// 没有音频上下文（无头运行、测试）时所有播放请求静默失败
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音效）
	settingsManager *SettingsManager         // 设置管理器，可为 nil
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	missing         map[string]bool          // 加载失败的资源ID，避免每帧重复报警
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效，返回是否真正开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		logger.Warnf("[AudioManager] Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量并同步到设置
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = am.GetSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		am.missing[soundID] = true
		logger.Warnf("[AudioManager] Sound %s unavailable: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	logger.Infof("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}
