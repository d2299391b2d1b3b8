// Package resource implements the Controller that bounds worker concurrency.
//
// Graph operations that only read independent containers (one vertex vector
// or adjacency matrix per worker) may fan out across goroutines. The
// Controller caps how many run at once with a weighted semaphore shared by
// every graph built on the same execution context, and Run wraps the common
// "for each container" pattern in an errgroup:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//
//	err := rc.Run(ctx, len(matrices), func(ctx context.Context, i int) error {
//	    counts[i] = matrices[i].NVals()
//	    return nil
//	})
//
// Writers never go through the Controller: mutation is single-threaded and
// serialised by the graph's lock.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; Run then executes
// sequentially on the calling goroutine.
package resource
