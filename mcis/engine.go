// engine.go holds the search engine's shared immutable context and each
// worker's private mutable state, grounded on tsp/bb.go's bbEngine: a
// dedicated struct (rather than captured closures) keeps dependencies
// explicit, testing simple, and hot-path state predictable.
package mcis

// searchContext is immutable for the lifetime of one RunSearch call and
// shared (read-only) by every worker.
type searchContext struct {
	graphs []*Graph
	k      int
	cfg    Config
	order  []int // pivot-graph enumeration order; identity by default

	incumbent *atomicIncumbent
	abort     *abortFlag
	scheduler *scheduler // nil when cfg.Threads <= 1

	// workers holds every worker slot for the lifetime of one RunSearch
	// call: slot 0 is the caller's goroutine (the main thread), slots
	// 1..len(workers)-1 back the work-donation scheduler's helper
	// goroutines. Re-used across big-first's repeated attempts so node
	// counters accumulate across the whole RunSearch call.
	workers []*worker

	// goal is the target matching size pruning threshold: in normal
	// (size-growing) mode goal is 0 (no extra pruning beyond the
	// incumbent); in big-first mode goal is the current target size T,
	// and a node is pruned once it can no longer reach T.
	goal int
}

// identityOrder returns (0, 1, ..., k-1).
func identityOrder(k int) []int {
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}

	return order
}

// worker holds one goroutine's private, mutable search state. Per // this is deep-copied at every donation point and never aliased with the
// donor's state; between donation points it is mutated and restored via
// ordinary recursion, exactly as tsp/bb.go's bbEngine mutates
// visited/path in place across dfs calls.
type worker struct {
	ctx *searchContext

	buffers [][]int // per-graph vertex buffers, private to this worker's subtree
	nodes   uint64

	bestSize     int
	bestMatching []VtxSet
}

// newWorker builds a worker over a fresh copy of buffers, ready to search
// from domains.
func newWorker(ctx *searchContext, buffers [][]int) *worker {
	return &worker{ctx: ctx, buffers: cloneBuffers(buffers)}
}

// recordIfBetter updates w's local incumbent and the shared atomicIncumbent
// if current is larger than anything seen so far.
func (w *worker) recordIfBetter(current []VtxSet) {
	if len(current) <= w.bestSize {
		return
	}
	w.bestSize = len(current)
	w.bestMatching = make([]VtxSet, len(current))
	for i, vs := range current {
		w.bestMatching[i] = vs.clone()
	}
	w.ctx.incumbent.Update(w.bestSize)
}

// boundValue computes bound: |current| + sum of
// min(length_i over MD) across every multidomain eligible for selection
// (restricted to isAdjacent multidomains when a connected search's
// matching is already non-empty, matching selectMultidomain's
// eligibility rule so the bound and the selection heuristic never
// disagree about which domains can still contribute matches).
func boundValue(currentSize int, domains []*multidomain, connected, matchingNonEmpty bool) int {
	restrictAdjacent := connected && matchingNonEmpty
	bound := currentSize
	for _, md := range domains {
		if restrictAdjacent && !md.isAdjacent {
			continue
		}
		min := md.length[0]
		for _, l := range md.length[1:] {
			if l < min {
				min = l
			}
		}
		bound += min
	}

	return bound
}
