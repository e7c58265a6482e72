package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"loadhive/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task is a periodic job run by a Worker.
type Task interface {
	// TTL is the pause between two runs. Non-positive TTL means run once on start only.
	TTL() time.Duration
	Do(context.Context) error
	// Info names the task in logs.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Worker struct {
	log   workerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New runs every task once synchronously and fails if any of them fails or panics.
// After that each task is scheduled on its own ticker until ctx is cancelled.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %q init panic: %v", task.Info(), r)
					log.Error("task panic during warm-up",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()
			log.Info("warming up task", logger.NewField("task", task.Info()))
			if err := task.Do(initCtx); err != nil {
				return fmt.Errorf("task %q: %w", task.Info(), err)
			}
			return nil
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

// Wait blocks until every scheduled task loop has returned.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	defer w.wg.Done()

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("non-positive TTL, periodic execution disabled",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
