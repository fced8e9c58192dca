package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a JSON production logger at the given level.
// Timestamps are ISO8601 and every entry carries the service name.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{"service": "wallet-profiles"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
