package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared counterpart.
// Both are safe to use before InitLogger runs (no-op until then),
// which keeps repositories usable from tests and one-off tools.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger builds the application logger according to APP_ENV.
// Production uses the JSON encoder, everything else the console encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it deferred from main.
func SyncLogger() {
	_ = Log.Sync()
}
