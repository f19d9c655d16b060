package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	once    sync.Once
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// Submit blocks until a worker or the buffer accepts t. It reports false when
// ctx is done first.
func (p *Pool) Submit(ctx context.Context, t Task) bool {
	if p == nil || t == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.tasks <- t:
		return true
	}
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		close(p.tasks)
	})
}

func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// Do runs tasks on a fresh pool of the given size and waits for the workers
// to stop. The first task error cancels the context the remaining tasks see,
// and tasks not yet started are skipped. It returns that error, or
// ctx.Err() if the parent context ends early.
func Do(ctx context.Context, workers int, tasks []Task) error {
	if len(tasks) == 0 {
		return ctx.Err()
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	p := New(workers, 0)
	results := p.Run(ctx)

	go func() {
		defer p.Close()
		for _, t := range tasks {
			if !p.Submit(ctx, t) {
				return
			}
		}
	}()

	var firstErr error
	done := 0
	for r := range results {
		done++
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
			cancel()
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if done < len(tasks) {
		if err := parent.Err(); err != nil {
			return err
		}
	}
	return nil
}
