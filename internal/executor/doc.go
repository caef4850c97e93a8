// Package executor provides a concurrent execution engine for fanning out
// independent cluster reads, such as collecting every section of the portal
// overview in one pass.
//
// The package implements a worker pool pattern with bounded concurrency,
// graceful shutdown, context-aware cancellation, and result aggregation
// capabilities. Each task carries its own error and timing, so a slow or
// failing section never hides the others.
//
// # Basic Usage
//
// Create a pool, submit tasks, and execute them:
//
//	pool := executor.NewPool(5, logger)
//
//	for _, section := range sections {
//	    pool.Submit(executor.Task{
//	        Section: section,
//	        Execute: func(ctx context.Context) (interface{}, error) {
//	            // Perform a cluster read
//	            return result, nil
//	        },
//	    })
//	}
//
//	results := pool.Execute(context.Background())
//
// # Progress Reporting
//
// Track execution progress with a callback:
//
//	results := pool.ExecuteWithProgress(ctx, func(completed, total int) {
//	    fmt.Printf("Progress: %d/%d\n", completed, total)
//	})
//
// # Result Aggregation
//
// Filter and analyze results:
//
//	failed := executor.FilterFailed(results)
//	summary := executor.Summarize(results)
//
// # Error Handling
//
// Task errors are captured in results and don't stop other tasks:
//
//	for _, r := range results {
//	    if r.Error != nil {
//	        log.Printf("section %s failed: %v", r.Section, r.Error)
//	    }
//	}
//
// # Concurrency Guarantees
//
// The pool guarantees bounded concurrency (max N workers), no goroutine
// leaks, thread-safe submission, and proper cleanup on shutdown or context
// cancellation. Submit can be called concurrently while the pool is idle;
// Execute and ExecuteWithProgress are mutually exclusive.
package executor
