package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Task периодическая задача обслуживания
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Sweeper периодически выполняет задачи обслуживания
type Sweeper struct {
	interval time.Duration
	tasks    []Task
	logger   *zap.Logger
}

// NewSweeper создает новый Sweeper
func NewSweeper(interval time.Duration, logger *zap.Logger, tasks ...Task) *Sweeper {
	return &Sweeper{
		interval: interval,
		tasks:    tasks,
		logger:   logger,
	}
}

// Run выполняет задачи по таймеру до отмены контекста
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep выполняет все задачи один раз. Ошибка задачи не останавливает остальные.
func (s *Sweeper) sweep(ctx context.Context) {
	for _, task := range s.tasks {
		if ctx.Err() != nil {
			return
		}
		if err := task.Run(ctx); err != nil {
			s.logger.Error("maintenance task failed",
				zap.String("task", task.Name),
				zap.Error(err),
			)
		}
	}
}
