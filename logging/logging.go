// Package logging builds the zap logger the game writes to and exposes it to
// systems that have no other way to reach it.
package logging

import (
	"fmt"
	"sync/atomic"

	cfg "github.com/automoto/pacdots/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// New builds a logger from the log configuration. Development mode writes a
// coloured console format; otherwise JSON.
func New(c cfg.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if c.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// L returns the process logger. It is a no-op logger until SetLogger is called.
func L() *zap.Logger {
	return global.Load()
}

// SetLogger replaces the process logger. A nil logger restores the no-op one.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}
