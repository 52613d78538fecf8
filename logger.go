package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var gameLog *zap.SugaredLogger

// setupLogging initializes the rolling log file. Debug level messages are
// only recorded when the -debug flag is set.
func setupLogging(debug bool) {
	lj := &lumberjack.Logger{
		Filename:   "gowander.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), level),
	)
	gameLog = zap.New(core, zap.AddCaller()).Sugar()
}

func syncLogging() {
	if gameLog != nil {
		_ = gameLog.Sync()
	}
}

func logError(format string, v ...interface{}) {
	if gameLog != nil {
		gameLog.Errorf(format, v...)
	}
}

func logInfo(format string, v ...interface{}) {
	if gameLog != nil {
		gameLog.Infof(format, v...)
	}
}

func logDebug(format string, v ...interface{}) {
	if gameLog != nil {
		gameLog.Debugf(format, v...)
	}
}
