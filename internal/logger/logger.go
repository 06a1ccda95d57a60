package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel - уровень, на который откатывается InitializeOrDefault
const DefaultLevel = "info"

// Initialize создает логгер заданного уровня.
// Логи пишутся только в stderr, stdout занят результатом генерации.
func Initialize(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to determine logging level %w", err)
	}

	logger, err := newConfig(lvl).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger %w", err)
	}

	return logger.With(zap.String("app", "classgen")), nil
}

// InitializeOrDefault как Initialize, но при неизвестном уровне
// создает логгер уровня DefaultLevel и пишет предупреждение
func InitializeOrDefault(level string) (*zap.Logger, error) {
	logger, err := Initialize(level)
	if err == nil {
		return logger, nil
	}

	logger, fallbackErr := Initialize(DefaultLevel)
	if fallbackErr != nil {
		return nil, fallbackErr
	}

	logger.Warn("unknown log level, falling back to default",
		zap.String("level", level),
		zap.String("default", DefaultLevel),
		zap.Error(err),
	)
	return logger, nil
}

func newConfig(lvl zap.AtomicLevel) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	return cfg
}
