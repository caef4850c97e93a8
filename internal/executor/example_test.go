package executor_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/avikram/kubeportal/internal/executor"
)

// Example demonstrates collecting several overview sections in parallel.
func Example() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	pool := executor.NewPool(3, logger)

	sections := []string{"pods", "deployments", "services"}
	for _, section := range sections {
		name := section
		pool.Submit(executor.Task{
			Section: name,
			Execute: func(ctx context.Context) (interface{}, error) {
				// A real task would run a cluster read here.
				time.Sleep(10 * time.Millisecond)
				return fmt.Sprintf("%s collected", name), nil
			},
		})
	}

	results := pool.Execute(context.Background())

	fmt.Printf("Collected %d sections\n", len(results))
	// Output:
	// Collected 3 sections
}

// ExamplePool_ExecuteWithProgress demonstrates progress reporting.
func ExamplePool_ExecuteWithProgress() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	pool := executor.NewPool(2, logger)

	for i := 1; i <= 5; i++ {
		section := fmt.Sprintf("section-%d", i)
		pool.Submit(executor.Task{
			Section: section,
			Execute: func(ctx context.Context) (interface{}, error) {
				time.Sleep(20 * time.Millisecond)
				return "done", nil
			},
		})
	}

	ctx := context.Background()
	results := pool.ExecuteWithProgress(ctx, func(completed, total int) {
		// A real caller would update a progress indicator here.
	})

	fmt.Printf("Completed %d tasks\n", len(results))
	// Output:
	// Completed 5 tasks
}

// Example_partialFailure demonstrates that failed sections do not hide
// the successful ones.
func Example_partialFailure() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	pool := executor.NewPool(2, logger)

	pool.Submit(executor.Task{
		Section: "pods",
		Execute: func(ctx context.Context) (interface{}, error) {
			return 12, nil
		},
	})
	pool.Submit(executor.Task{
		Section: "metrics",
		Execute: func(ctx context.Context) (interface{}, error) {
			return nil, fmt.Errorf("metrics-server unavailable")
		},
	})

	results := pool.Execute(context.Background())

	summary := executor.Summarize(results)
	fmt.Printf("Successful: %d, Failed: %d\n", summary.Successful, summary.Failed)
	// Output:
	// Successful: 1, Failed: 1
}
