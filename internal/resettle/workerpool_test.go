package resettle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{name: "runs all retries", numTasks: 5, numWorkers: 2},
		{name: "failing retry does not stop the pool", numTasks: 3, numWorkers: 2, expectedErrors: 1},
		{name: "zero size falls back to one worker", numTasks: 2, numWorkers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				queued, err := wp.Enqueue(context.Background(), RetryTask{
					OrderID: i + 1,
					Step:    "coins",
					Run: func() error {
						if i < tt.expectedErrors {
							failed.Add(1)
							return assert.AnError
						}
						time.Sleep(10 * time.Millisecond)
						executed.Add(1)
						return nil
					},
				})
				require.NoError(t, err)
				assert.True(t, queued)
			}
			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.expectedErrors), executed.Load())
			assert.Equal(t, int32(tt.expectedErrors), failed.Load())
		})
	}
}

func TestWorkerPoolSkipsStepInFlight(t *testing.T) {
	wp := NewWorkerPool(1)

	block := make(chan struct{})
	started := make(chan struct{})
	queued, err := wp.Enqueue(context.Background(), RetryTask{OrderID: 7, Step: "coupon", Run: func() error {
		close(started)
		<-block
		return nil
	}})
	require.NoError(t, err)
	assert.True(t, queued)
	<-started

	queued, err = wp.Enqueue(context.Background(), RetryTask{OrderID: 7, Step: "coupon", Run: func() error {
		t.Error("duplicate retry should not run")
		return nil
	}})
	require.NoError(t, err)
	assert.False(t, queued)

	// another step of the same order is independent
	var ran atomic.Bool
	queued, err = wp.Enqueue(context.Background(), RetryTask{OrderID: 7, Step: "coins", Run: func() error {
		ran.Store(true)
		return nil
	}})
	require.NoError(t, err)
	assert.True(t, queued)

	close(block)
	wp.Close()
	assert.True(t, ran.Load())
}

func TestWorkerPoolReleasesStepAfterRun(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	var runs atomic.Int32
	task := RetryTask{OrderID: 7, Step: "refund", Run: func() error {
		runs.Add(1)
		return assert.AnError
	}}
	queued, err := wp.Enqueue(context.Background(), task)
	require.NoError(t, err)
	require.True(t, queued)
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		queued, err := wp.Enqueue(context.Background(), task)
		return err == nil && queued
	}, time.Second, 5*time.Millisecond)
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	_, err := wp.Enqueue(context.Background(), RetryTask{OrderID: 1, Step: "coins", Run: func() error {
		close(started)
		<-block
		return nil
	}})
	require.NoError(t, err)
	<-started
	// fill the single queue slot
	_, err = wp.Enqueue(context.Background(), RetryTask{OrderID: 2, Step: "coins", Run: func() error { return nil }})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	canceled := RetryTask{OrderID: 3, Step: "coins", Run: func() error {
		t.Error("task should not be executed")
		return nil
	}}
	queued, err := wp.Enqueue(ctx, canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, queued)

	_, held := wp.inFlight.Load(canceled.key())
	assert.False(t, held)
	close(block)
}

func TestWorkerPoolCloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	wp.Close()
}
