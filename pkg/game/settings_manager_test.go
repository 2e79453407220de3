package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: "pigfarm_test_settings"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowInspector {
		t.Error("ShowInspector: got false, want true")
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Expected default volume in degraded mode, got %v", sm.GetSettings().SoundVolume)
	}

	// 降级模式下 Save/Load 都不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() with nil gdata should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() with nil gdata should not fail: %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStorage(t)

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	sm.SetShowInspector(false)

	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例应读到保存的值
	reloaded := NewSettingsManager(manager)
	settings := reloaded.GetSettings()

	if settings.SoundVolume != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if settings.ShowInspector {
		t.Error("ShowInspector: got true, want false")
	}
}

func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToggleInspector(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleInspector() {
		t.Error("First toggle should hide the inspector (default visible)")
	}
	if !sm.ToggleInspector() {
		t.Error("Second toggle should show the inspector again")
	}
}
