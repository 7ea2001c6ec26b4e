// Package async runs independent indexed tasks on a bounded set of workers.
package async

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/joseph-ayodele/posteingang/internal/common"
)

// Task handles item i. Tasks must only write to state owned by index i.
type Task func(ctx context.Context, i int) error

type Pool struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithTaskTimeout bounds every single task; zero means no bound.
func WithTaskTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		logger:  logger,
		workers: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Workers returns the configured parallelism.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes task for 0..n-1 and waits for all of them. A failing or
// panicking task is logged and does not stop the others. Run returns the
// context error if ctx ends before every index was dispatched.
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	if n <= 0 {
		return nil
	}
	workers := p.workers
	if workers > n {
		workers = n
	}

	ch := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range ch {
				if err := p.runOne(ctx, task, i); err != nil {
					p.logger.Error("task failed", "worker_id", workerID, "index", i, "error", err)
				}
			}
		}(w + 1)
	}

	var err error
feed:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case ch <- i:
		}
	}
	close(ch)
	wg.Wait()
	return err
}

func (p *Pool) runOne(ctx context.Context, task Task, i int) (err error) {
	ctx, cancel := common.WithTimeout(ctx, p.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return task(ctx, i)
}
