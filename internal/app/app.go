package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc/plantstore/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация зависимостей
	deps, err := initDependencies(ctx, cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to init dependencies: %w", err)
	}

	// Настройка роутера и HTTP сервера
	router := setupRouter(deps, logger)
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		db:     dbPool,
		deps:   deps,
		server: server,
	}, nil
}

// Run запускает HTTP сервер, бота и обслуживание и ждет сигнала завершения.
// Ошибка любого из компонентов останавливает остальные.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Пул стартует первым и останавливается последним, чтобы принять задачи от остальных
	a.deps.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.runServer(gctx)
	})

	g.Go(func() error {
		a.deps.sweeper.Run(gctx)
		return nil
	})

	if a.deps.bot != nil {
		g.Go(func() error {
			return a.deps.bot.Run(gctx)
		})
	}

	err := g.Wait()
	a.shutdown()

	if err != nil {
		return fmt.Errorf("application stopped with error: %w", err)
	}
	return nil
}

// shutdown освобождает ресурсы после остановки компонентов
func (a *App) shutdown() {
	a.deps.workerPool.Stop()
	a.logger.Info("worker pool stopped")

	if err := a.deps.publisher.Close(); err != nil {
		a.logger.Error("failed to close event publisher", zap.Error(err))
	}

	if a.deps.redis != nil {
		if err := a.deps.redis.Close(); err != nil {
			a.logger.Error("failed to close redis client", zap.Error(err))
		}
	}

	a.db.Close()
	a.logger.Info("database connection closed")

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
