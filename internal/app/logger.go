package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер. development включает человекочитаемый вывод,
// остальные значения трактуются как уровень для production конфигурации.
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "development" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
