package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debugMode bool
	logger    = zap.NewNop().Sugar()
)

func SetDebug(enable bool) {
	_ = logger.Sync()
	debugMode = enable
	if !enable {
		logger = zap.NewNop().Sugar()
		return
	}

	// stderr only, stdout belongs to the prompt
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

func DebugLog(format string, v ...interface{}) {
	if debugMode {
		logger.Debugf(format, v...)
	}
}

func SyncLog() {
	_ = logger.Sync()
}
