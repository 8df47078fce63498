// run.go implements RunSearch, the package's sole entry point:
// validate input, build the root multidomains, drive either a single
// sequential search or a work-donating parallel search (optionally
// repeated under the big-first strategy via bigfirst.go), and assemble
// the Result. Grounded on tsp/bb.go's top-level solve function shape:
// one validate-then-dispatch entry point, mirrored here with the
// addition of worker-pool setup/teardown.
package mcis

import "golang.org/x/sync/errgroup"

// RunSearch computes the maximum common (connected) induced subgraph
// across graphs under cfg. It returns the best matching found, its size,
// the total number of search-tree nodes visited across every worker, and
// whether the search was cut short by Config.Timeout or Config.Ctx
// cancellation before exhausting the search space (Result.TimedOut); in
// that case Matching still holds the best incumbent found before the
// deadline.
//
// graphs is never mutated. Per preprocessing contract, RunSearch
// does not degree-sort graphs itself: callers that want that benefit call
// PreprocessByDegree first and reverse the permutation on the returned
// VtxSets.
func RunSearch(graphs []*Graph, cfg Config) (Result, error) {
	if err := validateAll(graphs, &cfg); err != nil {
		return Result{}, err
	}

	ctx := &searchContext{
		graphs:    graphs,
		k:         len(graphs),
		cfg:       cfg,
		order:     identityOrder(len(graphs)),
		incumbent: &atomicIncumbent{},
		abort:     &abortFlag{},
	}

	deadline, cancel := watchDeadline(cfg.Ctx, cfg.Timeout, ctx.abort, func() {
		if ctx.scheduler != nil {
			ctx.scheduler.wake()
		}
	})
	defer cancel()
	if deadline.Err() != nil {
		// Already expired or cancelled: raise the flag now instead of
		// racing the watcher goroutine against a search that may finish first.
		ctx.abort.Set()
	}

	buffers, domains := buildRootDomains(graphs, cfg.VertexLabelled)
	if len(domains) == 0 {
		// No label is common to every graph.
		return Result{}, nil
	}

	ctx.workers = make([]*worker, cfg.Threads)
	for i := range ctx.workers {
		ctx.workers[i] = &worker{ctx: ctx}
	}

	var pool *workerPool
	if cfg.Threads > 1 {
		ctx.scheduler = newScheduler()
		pool = startWorkerPool(ctx)
	}

	var matching []VtxSet
	var size int
	if cfg.BigFirst {
		matching, size = runBigFirst(ctx, buffers, domains)
	} else {
		ctx.goal = 0
		runRootSearch(ctx, buffers, domains)
		matching, size = bestAcrossWorkers(ctx.workers)
	}

	if pool != nil {
		ctx.scheduler.shutdown()
		pool.wait()
	}

	return Result{
		Matching: matching,
		Size:     size,
		Nodes:    sumNodes(ctx.workers),
		TimedOut: ctx.abort.IsSet(),
	}, nil
}

// runRootSearch runs exactly one complete search over buffers/domains,
// leaving its results in ctx.workers for the caller to aggregate:
// sequential when no scheduler is configured (Threads == 1), otherwise
// dispatching the root node directly into the work-donation scheduler via
// ctx.workers[0], the slot representing this call's own goroutine.
func runRootSearch(ctx *searchContext, buffers [][]int, domains []*multidomain) {
	if ctx.scheduler == nil {
		w := ctx.workers[0]
		w.buffers = cloneBuffers(buffers)
		w.dfs(nil, cloneDomains(domains))

		return
	}

	ctx.workers[0].parallelNode(cloneBuffers(buffers), nil, cloneDomains(domains), 0)
}

// bestAcrossWorkers scans every worker's private incumbent slot and
// returns the largest. Workers only synchronize on *size* via the shared
// atomicIncumbent; the actual matching data lives only in
// whichever worker found it, so the final reduction must be a plain
// linear scan.
func bestAcrossWorkers(workers []*worker) ([]VtxSet, int) {
	var bestSize int
	var bestMatching []VtxSet
	for _, w := range workers {
		if w.bestSize > bestSize {
			bestSize = w.bestSize
			bestMatching = w.bestMatching
		}
	}

	return bestMatching, bestSize
}

// sumNodes totals every worker's private node counter.
func sumNodes(workers []*worker) uint64 {
	var total uint64
	for _, w := range workers {
		total += w.nodes
	}

	return total
}

// workerPool supervises the fixed pool of helper goroutines backing the
// work-donation scheduler, grounded on golang.org/x/sync/errgroup's
// bounded-goroutine-lifecycle idiom (SPEC_FULL.md Part C): errgroup.Group
// joins every helper goroutine on Wait, the same role tsp's and the
// pack's other concurrent helpers use sync.WaitGroup for, but with the
// first-error propagation errgroup adds for free (unused here since
// workerLoop never returns an error, but it is the correct primitive for
// this shape and keeps the pool's lifecycle idiomatic).
type workerPool struct {
	g *errgroup.Group
}

// startWorkerPool launches len(ctx.workers)-1 helper goroutines; slot 0
// is reserved for the caller's own goroutine, which acts as the main
// search thread of rather than running through the pool.
func startWorkerPool(ctx *searchContext) *workerPool {
	g := new(errgroup.Group)
	for id := 1; id < len(ctx.workers); id++ {
		workerID := id
		g.Go(func() error {
			ctx.scheduler.workerLoop(workerID)

			return nil
		})
	}

	return &workerPool{g: g}
}

// wait blocks until every helper goroutine in the pool has returned.
func (p *workerPool) wait() {
	_ = p.g.Wait()
}
