package game

import (
	"path/filepath"
	"testing"
)

// newTestAudioManager 构造带清单的音效管理器
func newTestAudioManager(t *testing.T, withSound bool, settings *SettingsManager) *AudioManager {
	t.Helper()
	manifest, root := writeManifest(t)
	if withSound {
		createTestWAV(t, filepath.Join(root, "sounds", "money.wav"))
	}
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(manifest); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	return NewAudioManager(rm, settings)
}

func TestAudioManagerPlaySound(t *testing.T) {
	disabled := NewSettingsManager(nil)
	disabled.SetSoundEnabled(false)

	tests := []struct {
		name      string
		withSound bool
		settings  *SettingsManager
		soundID   string
		want      bool
	}{
		{"正常播放", true, nil, SoundMoney, true},
		{"音效关闭", true, disabled, SoundMoney, false},
		{"文件缺失", false, nil, SoundMoney, false},
		{"未知ID", true, nil, "SOUND_MOO", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := newTestAudioManager(t, tt.withSound, tt.settings)
			if got := am.PlaySound(tt.soundID); got != tt.want {
				t.Errorf("PlaySound(%s) = %v, expected %v", tt.soundID, got, tt.want)
			}
		})
	}
}

// TestAudioManagerMissingSoundCached 缺失的音效只尝试加载一次
func TestAudioManagerMissingSoundCached(t *testing.T) {
	am := newTestAudioManager(t, false, nil)

	am.PlaySound(SoundMoney)
	if !am.missing[SoundMoney] {
		t.Fatal("Expected missing sound to be remembered")
	}
	if am.PlaySound(SoundMoney) {
		t.Error("Missing sound should keep failing")
	}
}

func TestAudioManagerVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := newTestAudioManager(t, true, sm)
	am.PreloadSounds([]string{SoundMoney})

	am.SetSoundVolume(0.25)
	if got := am.GetSoundVolume(); got != 0.25 {
		t.Errorf("Expected volume 0.25, got %v", got)
	}
	if sm.GetSettings().SoundVolume != 0.25 {
		t.Errorf("Volume should be written to settings, got %v", sm.GetSettings().SoundVolume)
	}

	// 没有设置管理器时使用默认音量
	plain := NewAudioManager(NewResourceManager(nil), nil)
	if got := plain.GetSoundVolume(); got != DefaultSettings().SoundVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultSettings().SoundVolume, got)
	}
}
