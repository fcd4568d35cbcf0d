package resettle

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=resettle

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// RetryPool runs settlement retries on a fixed number of workers.
type RetryPool interface {
	// Enqueue queues the task. It reports false when a retry of the same
	// order step is already queued or running.
	Enqueue(ctx context.Context, task RetryTask) (bool, error)
	Close()
}

// RetryTask is one retry of a failed settlement step.
type RetryTask struct {
	OrderID int
	Step    string
	Run     func() error
}

func (t RetryTask) key() string {
	return fmt.Sprintf("%d/%s", t.OrderID, t.Step)
}

type WorkerPool struct {
	queue    chan RetryTask
	inFlight sync.Map
	wg       sync.WaitGroup
	once     sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	wp := &WorkerPool{queue: make(chan RetryTask, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.queue {
		err := task.Run()
		wp.inFlight.Delete(task.key())
		if err != nil {
			zap.L().Error("settlement retry failed",
				zap.Int("order_id", task.OrderID),
				zap.String("step", task.Step),
				zap.Error(err))
		}
	}
}

// Enqueue blocks while every worker is busy and the queue is full.
func (wp *WorkerPool) Enqueue(ctx context.Context, task RetryTask) (bool, error) {
	key := task.key()
	if _, loaded := wp.inFlight.LoadOrStore(key, struct{}{}); loaded {
		return false, nil
	}
	select {
	case <-ctx.Done():
		wp.inFlight.Delete(key)
		return false, ctx.Err()
	case wp.queue <- task:
		return true, nil
	}
}

// Close stops accepting retries and waits for queued ones to finish. Enqueue
// must not be called after Close.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.queue)
	})
	wp.wg.Wait()
}
