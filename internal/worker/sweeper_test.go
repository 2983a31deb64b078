package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSweeper_RunsTasksUntilCancelled(t *testing.T) {
	logger := zap.NewNop()

	var failing, counting atomic.Int32
	sweeper := NewSweeper(10*time.Millisecond, logger,
		Task{Name: "failing", Run: func(ctx context.Context) error {
			failing.Add(1)
			return errors.New("db down")
		}},
		Task{Name: "counting", Run: func(ctx context.Context) error {
			counting.Add(1)
			return nil
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return counting.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}

	// Ошибка первой задачи не мешает второй
	assert.GreaterOrEqual(t, failing.Load(), counting.Load()-1)
}
