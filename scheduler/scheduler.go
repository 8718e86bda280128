package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Task is one run of a periodic job. A returned error is logged and the
// job keeps its schedule.
type Task func(ctx context.Context) error

// Job runs a Task right away and then at a fixed interval until stopped.
// It implements core.Interface so the registry owns its lifecycle.
type Job struct {
	name     string
	interval time.Duration
	task     Task
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	runs   int
}

func NewJob(name string, interval time.Duration, task Task, logger *zap.Logger) *Job {
	return &Job{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.Named("scheduler").With(zap.String("job", name)),
	}
}

// Start launches the job. Starting a running job is a no-op.
func (j *Job) Start(ctx context.Context) error {
	if j.interval <= 0 {
		return errors.Errorf("job %s: interval must be positive, got %s", j.name, j.interval)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return nil
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})
	go j.loop(ctx, j.done)
	return nil
}

func (j *Job) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.run(ctx)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (j *Job) run(ctx context.Context) {
	if err := j.task(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn("job run failed", zap.Error(err))
	}
	j.mu.Lock()
	j.runs++
	j.mu.Unlock()
}

// Stop cancels the job and waits for an in-flight run to return.
func (j *Job) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (j *Job) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}

// Runs reports how many times the task has completed
func (j *Job) Runs() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}
