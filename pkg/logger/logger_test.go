package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevelsAndMessages(t *testing.T) {
	t.Cleanup(Reset)

	core, recorded := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debugf("[Test] debug %d", 1)
	Infof("[Test] info %s", "pig")
	Warnf("[Test] warn")
	Errorf("[Test] error %.1f", 2.5)

	logs := recorded.All()
	if len(logs) != 4 {
		t.Fatalf("Expected 4 logs, got %d", len(logs))
	}

	expected := []struct {
		level zapcore.Level
		msg   string
	}{
		{zapcore.DebugLevel, "[Test] debug 1"},
		{zapcore.InfoLevel, "[Test] info pig"},
		{zapcore.WarnLevel, "[Test] warn"},
		{zapcore.ErrorLevel, "[Test] error 2.5"},
	}
	for i, e := range expected {
		if logs[i].Level != e.level {
			t.Errorf("Log %d: expected level %v, got %v", i, e.level, logs[i].Level)
		}
		if logs[i].Message != e.msg {
			t.Errorf("Log %d: expected %q, got %q", i, e.msg, logs[i].Message)
		}
	}
}

func TestLoggerWithFieldsSurviveSetLogger(t *testing.T) {
	t.Cleanup(Reset)

	With("session", "abc")

	core, recorded := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))

	Infof("[Test] hello")

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(logs))
	}
	ctx := logs[0].ContextMap()
	if ctx["session"] != "abc" {
		t.Errorf("Expected session field abc, got %v", ctx["session"])
	}
}

func TestLoggerDefaultIsNop(t *testing.T) {
	Reset()
	// 未初始化时不应 panic
	Infof("[Test] discarded")
	if err := Sync(); err != nil {
		t.Errorf("Nop logger Sync should not fail: %v", err)
	}
}

func TestInitRejectsInvalidLevel(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"warn", false},
		{"", false}, // zap 把空字符串解析为 info
		{"not-a-level", true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Level = tt.level
		err := Init(cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("Init(level=%q): expected error=%v, got %v", tt.level, tt.wantErr, err)
		}
		if err != nil && !strings.Contains(err.Error(), "invalid log level") {
			t.Errorf("Init(level=%q): unexpected error %v", tt.level, err)
		}
	}
}
