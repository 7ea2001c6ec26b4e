package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunVisitsEveryIndexOnce(t *testing.T) {
	p := NewPool(nil, WithWorkers(3))
	const n = 50
	var hits [n]int32
	err := p.Run(context.Background(), n, func(_ context.Context, i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d ran %d times", i, h)
		}
	}
}

func TestRunBoundsParallelism(t *testing.T) {
	p := NewPool(nil, WithWorkers(2))
	var running, peak int32
	_ = p.Run(context.Background(), 10, func(_ context.Context, _ int) error {
		cur := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	})
	if peak > 2 {
		t.Fatalf("peak parallelism %d, want <= 2", peak)
	}
}

func TestRunSurvivesFailures(t *testing.T) {
	p := NewPool(nil, WithWorkers(2))
	var done int32
	err := p.Run(context.Background(), 6, func(_ context.Context, i int) error {
		defer atomic.AddInt32(&done, 1)
		switch i {
		case 1:
			panic("boom")
		case 2:
			return errors.New("no text")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done != 6 {
		t.Fatalf("%d tasks finished, want 6", done)
	}
}

func TestTaskTimeout(t *testing.T) {
	p := NewPool(nil, WithWorkers(1), WithTaskTimeout(10*time.Millisecond))
	var expired int32
	_ = p.Run(context.Background(), 1, func(ctx context.Context, _ int) error {
		select {
		case <-ctx.Done():
			atomic.StoreInt32(&expired, 1)
		case <-time.After(2 * time.Second):
		}
		return nil
	})
	if expired != 1 {
		t.Fatal("task context did not expire")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPool(nil, WithWorkers(1))
	err := p.Run(ctx, 100, func(context.Context, int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
