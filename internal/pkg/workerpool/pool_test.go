package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_RunsEveryTask(t *testing.T) {
	var n int64
	tasks := make([]Task, 0, 50)
	for i := 0; i < 50; i++ {
		tasks = append(tasks, func(ctx context.Context) error {
			atomic.AddInt64(&n, 1)
			return nil
		})
	}

	require.NoError(t, Do(context.Background(), 4, tasks))
	assert.Equal(t, int64(50), atomic.LoadInt64(&n))
}

func TestDo_ReturnsTaskError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error { return nil },
	}

	err := Do(context.Background(), 2, tasks)
	assert.ErrorIs(t, err, boom)
}

func TestDo_NoTasks(t *testing.T) {
	assert.NoError(t, Do(context.Background(), 3, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Do(ctx, 3, nil), context.Canceled)
}

func TestDo_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	tasks := []Task{
		func(ctx context.Context) error {
			started <- struct{}{}
			<-release
			return nil
		},
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return nil },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- Do(ctx, 1, tasks) }()

	<-started
	cancel()
	close(release)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after cancel")
	}
}

func TestPool_SubmitAfterCancel(t *testing.T) {
	p := New(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, p.Submit(ctx, func(ctx context.Context) error { return nil }))
	assert.False(t, p.Submit(context.Background(), nil))
	p.Close()
	p.Close()
}

func TestPool_NilSafe(t *testing.T) {
	var p *Pool
	p.Close()
	_, ok := <-p.Run(context.Background())
	assert.False(t, ok)
}

func TestDo_FirstErrorCancelsSiblings(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(2 * time.Second):
				return errors.New("sibling was not canceled")
			}
		},
		func(ctx context.Context) error { return boom },
	}

	start := time.Now()
	err := Do(context.Background(), 2, tasks)

	assert.ErrorIs(t, err, boom)
	assert.Less(t, time.Since(start), time.Second)
}
