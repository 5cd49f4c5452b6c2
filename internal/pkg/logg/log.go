package logg

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New prepares a console logger for the whole process. Verbose mode unlocks
// debug entries, most notably the per-event input commentary of the sampler.
func New(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
