package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Job задача для выполнения в пуле
type Job func(ctx context.Context)

// Pool представляет пул воркеров для фоновых задач: уведомлений, рассылок и публикации событий
type Pool struct {
	workers int
	queue   chan Job
	logger  *zap.Logger
	wg      sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewPool создает новый worker pool
func NewPool(workers int, queueSize int, logger *zap.Logger) *Pool {
	return &Pool{
		workers: workers,
		queue:   make(chan Job, queueSize),
		logger:  logger,
	}
}

// Start запускает воркеры. Задачи получают контекст без отмены,
// чтобы очередь дорабатывалась при остановке.
func (p *Pool) Start(ctx context.Context) {
	jobCtx := context.WithoutCancel(ctx)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(jobCtx, i)
	}
}

// Submit ставит задачу в очередь не блокируясь. false означает, что очередь
// заполнена или пул остановлен.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	select {
	case p.queue <- job:
		return true
	default:
		return false
	}
}

// Stop закрывает очередь и ждет выполнения уже принятых задач
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// worker выполняет задачи из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Debug("worker started", zap.Int("worker_id", id))

	for job := range p.queue {
		p.run(ctx, id, job)
	}

	p.logger.Debug("worker stopped", zap.Int("worker_id", id))
}

func (p *Pool) run(ctx context.Context, id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker job panicked",
				zap.Int("worker_id", id),
				zap.Any("panic", r),
			)
		}
	}()

	job(ctx)
}
