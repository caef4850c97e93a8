package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Task represents a unit of work to be executed by the worker pool.
// Each task covers one named section of a larger fan-out, typically a
// single resource-kind read for the overview.
type Task struct {
	// Section identifies what this task collects, e.g. "pods"
	Section string

	// Execute is the function to run for this task
	Execute func(ctx context.Context) (interface{}, error)
}

// Result represents the outcome of executing a task
type Result struct {
	// Section identifies which section this result belongs to
	Section string

	// Data contains the successful result data (nil if error occurred)
	Data interface{}

	// Error contains any error that occurred during execution (nil if successful)
	Error error

	// Duration is how long the task took to execute
	Duration time.Duration
}

// Pool manages a pool of workers that execute tasks concurrently.
// It provides bounded concurrency, graceful shutdown, and progress reporting.
type Pool struct {
	// workers is the number of concurrent workers
	workers int

	// tasks is the queue of tasks to execute
	tasks []Task

	// mu protects the tasks slice
	mu sync.Mutex

	logger *slog.Logger

	// shutdown indicates if the pool is shutting down
	shutdown atomic.Bool

	// running indicates if the pool is currently executing
	running atomic.Bool
}

// NewPool creates a new worker pool with the specified number of workers.
// workers must be > 0, otherwise it defaults to 1.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		workers: workers,
		tasks:   make([]Task, 0),
		logger:  logger,
	}
}

// Submit adds a task to the pool's queue.
// Returns an error if the pool is shutting down or already running.
func (p *Pool) Submit(task Task) error {
	if p.shutdown.Load() {
		return fmt.Errorf("pool is shutting down, cannot submit new tasks")
	}

	if p.running.Load() {
		return fmt.Errorf("pool is running, cannot submit new tasks")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if task.Section == "" {
		return fmt.Errorf("task must have a section name")
	}

	if task.Execute == nil {
		return fmt.Errorf("task must have an execute function")
	}

	p.tasks = append(p.tasks, task)
	p.logger.Debug("task submitted", "section", task.Section, "total_tasks", len(p.tasks))

	return nil
}

// Execute runs all submitted tasks using the worker pool pattern.
// Returns a slice of results in submission order.
func (p *Pool) Execute(ctx context.Context) []Result {
	return p.ExecuteWithProgress(ctx, nil)
}

// ExecuteWithProgress runs all tasks with progress reporting.
// The progressFn callback is called after each task completes with
// (completed, total) counts.
func (p *Pool) ExecuteWithProgress(ctx context.Context, progressFn func(completed, total int)) []Result {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Error("pool is already running")
		return []Result{}
	}
	defer p.running.Store(false)

	p.mu.Lock()
	taskCount := len(p.tasks)
	if taskCount == 0 {
		p.mu.Unlock()
		p.logger.Debug("no tasks to execute")
		return []Result{}
	}

	// Copy tasks to avoid holding the lock during execution
	tasksCopy := make([]Task, len(p.tasks))
	copy(tasksCopy, p.tasks)
	p.mu.Unlock()

	p.logger.Debug("starting task execution",
		"workers", p.workers,
		"tasks", taskCount)

	startTime := time.Now()

	// Buffer size = task count to avoid blocking
	taskChan := make(chan taskWithIndex, taskCount)
	resultChan := make(chan resultWithIndex, taskCount)

	var completed atomic.Int32

	var wg sync.WaitGroup
	workerCount := p.workers
	if workerCount > taskCount {
		workerCount = taskCount
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, i, taskChan, resultChan, &wg, &completed, taskCount, progressFn)
	}

	for i, task := range tasksCopy {
		select {
		case taskChan <- taskWithIndex{task: task, index: i}:
		case <-ctx.Done():
			p.logger.Warn("context cancelled while queuing tasks")
			close(taskChan)
			goto waitForWorkers
		}
	}
	close(taskChan)

waitForWorkers:
	wg.Wait()
	close(resultChan)

	// Collect results back into submission order
	results := make([]Result, taskCount)
	for res := range resultChan {
		if res.index >= 0 && res.index < taskCount {
			results[res.index] = res.result
		}
	}

	// Tasks that never ran (context cancelled before execution) get
	// explicit error results so callers see every section accounted for.
	for i := range results {
		if results[i].Section == "" {
			results[i] = Result{
				Section:  tasksCopy[i].Section,
				Error:    fmt.Errorf("task not executed: %w", ctx.Err()),
				Duration: 0,
			}
		}
	}

	totalDuration := time.Since(startTime)
	successCount := CountSuccessful(results)

	p.logger.Debug("task execution completed",
		"total", taskCount,
		"successful", successCount,
		"failed", taskCount-successCount,
		"duration", totalDuration)

	return results
}

// worker processes tasks from the task channel until it closes.
func (p *Pool) worker(
	ctx context.Context,
	workerID int,
	taskChan <-chan taskWithIndex,
	resultChan chan<- resultWithIndex,
	wg *sync.WaitGroup,
	completed *atomic.Int32,
	total int,
	progressFn func(completed, total int),
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping due to context cancellation", "worker_id", workerID)
			return

		case taskItem, ok := <-taskChan:
			if !ok {
				return
			}

			result := p.executeTask(ctx, taskItem.task)

			select {
			case resultChan <- resultWithIndex{result: result, index: taskItem.index}:
			case <-ctx.Done():
				p.logger.Warn("context cancelled while sending result",
					"worker_id", workerID,
					"section", taskItem.task.Section)
				return
			}

			completedCount := completed.Add(1)
			p.logger.Debug("task completed",
				"worker_id", workerID,
				"section", taskItem.task.Section,
				"success", result.Error == nil,
				"duration", result.Duration)

			if progressFn != nil {
				progressFn(int(completedCount), total)
			}
		}
	}
}

// executeTask executes a single task and returns the result
func (p *Pool) executeTask(ctx context.Context, task Task) Result {
	startTime := time.Now()

	select {
	case <-ctx.Done():
		return Result{
			Section:  task.Section,
			Error:    fmt.Errorf("task cancelled before execution: %w", ctx.Err()),
			Duration: time.Since(startTime),
		}
	default:
	}

	data, err := task.Execute(ctx)

	duration := time.Since(startTime)

	result := Result{
		Section:  task.Section,
		Data:     data,
		Error:    err,
		Duration: duration,
	}

	if err != nil {
		p.logger.Warn("task failed",
			"section", task.Section,
			"error", err,
			"duration", duration)
	}

	return result
}

// Shutdown gracefully shuts down the pool.
// It stops accepting new tasks and waits for in-progress tasks to complete.
// The context timeout controls how long to wait for tasks to finish.
func (p *Pool) Shutdown(ctx context.Context) error {
	if !p.shutdown.CompareAndSwap(false, true) {
		return fmt.Errorf("pool already shut down")
	}

	p.logger.Debug("shutting down worker pool")

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for p.running.Load() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("shutdown timeout: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	return nil
}

// IsShutdown returns true if the pool has been shut down
func (p *Pool) IsShutdown() bool {
	return p.shutdown.Load()
}

// IsRunning returns true if the pool is currently executing tasks
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// TaskCount returns the number of tasks currently queued
func (p *Pool) TaskCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workers
}

// taskWithIndex pairs a task with its original index for result ordering
type taskWithIndex struct {
	task  Task
	index int
}

// resultWithIndex pairs a result with its original task index
type resultWithIndex struct {
	result Result
	index  int
}
