// bigfirst.go implements the big-first search strategy:
// instead of growing the incumbent from size 0, search for a common
// subgraph of an exact target size T, then T-1, and so on, stopping at
// the first size actually achieved.
package mcis

// runBigFirst drives repeated full searches over the same root
// buffers/domains, one per candidate target size from the smallest
// graph's vertex count down to 1. Each attempt resets the shared
// incumbent and every worker's private best-matching slot so a prior
// (necessarily infeasible, since it stopped short of its own target)
// attempt's pruning state never leaks into the next; per-worker node
// counters are deliberately left untouched, so the final Result.Nodes
// reflects the total work across every attempt.
func runBigFirst(ctx *searchContext, buffers [][]int, domains []*multidomain) ([]VtxSet, int) {
	target := ctx.graphs[0].N
	for _, g := range ctx.graphs[1:] {
		if g.N < target {
			target = g.N
		}
	}

	for ; target >= 1; target-- {
		if ctx.abort.IsSet() {
			break
		}

		ctx.goal = target
		ctx.incumbent.Reset()
		for _, w := range ctx.workers {
			w.bestSize = 0
			w.bestMatching = nil
		}

		runRootSearch(ctx, buffers, domains)

		matching, size := bestAcrossWorkers(ctx.workers)
		if size == target {
			return matching, size
		}
	}

	return nil, 0
}
