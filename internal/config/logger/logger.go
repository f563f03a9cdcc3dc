package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// Init replaces the no-op loggers. Production builds log JSON at the given
// level; otherwise a colored console encoder is used.
func Init(production bool, level string) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		Log.Error("failed to build logger, keeping no-op logger", zap.Error(err))
		return
	}
	Log = l
	SLog = l.Sugar()
}

func Sync() {
	_ = Log.Sync()
}
