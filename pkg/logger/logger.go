// Package logger 提供全局结构化日志（基于 zap）
//
// 调用方式与标准库 log 保持一致，消息以 "[SystemName]" 开头：
//
//	logger.Infof("[PigSpawnSystem] Spent $%.0f on a pig, remaining money: $%.2f", cost, money)
//
// 未调用 Init 前所有日志都被丢弃。
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	base   = zap.NewNop()
	sugar  = base.Sugar()
	fields []interface{}
)

// Init 按配置创建全局 logger
func Init(cfg Config) error {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}
	// 游戏每帧都可能打日志，关闭采样避免丢失调试信息
	zapConfig.Sampling = nil

	built, err := zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	SetLogger(built)
	return nil
}

// SetLogger 替换全局 logger（测试中可传入 observer 核心）
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	sugar = l.Sugar().With(fields...)
}

// With 为之后的所有日志附加固定字段（如会话ID）
func With(keysAndValues ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fields = append(fields, keysAndValues...)
	sugar = sugar.With(keysAndValues...)
}

// Reset 恢复为丢弃所有日志的 logger
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	fields = nil
	base = zap.NewNop()
	sugar = base.Sugar()
}

// Sync 刷新缓冲
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debugf 输出调试日志
func Debugf(template string, args ...interface{}) {
	current().Debugf(template, args...)
}

// Infof 输出信息日志
func Infof(template string, args ...interface{}) {
	current().Infof(template, args...)
}

// Warnf 输出警告日志
func Warnf(template string, args ...interface{}) {
	current().Warnf(template, args...)
}

// Errorf 输出错误日志
func Errorf(template string, args ...interface{}) {
	current().Errorf(template, args...)
}

// Fatalf 输出致命错误并退出进程
func Fatalf(template string, args ...interface{}) {
	current().Fatalf(template, args...)
}
