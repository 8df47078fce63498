// search.go implements the sequential depth-first branch-and-bound walk,
// grounded on tsp/bb.go's dfs(last, depth, cost): update incumbent,
// bound, select, branch, recurse, and finally try the "matches nothing"
// sibling — all driven off one worker's private state.
package mcis

// restDomains returns a fresh slice containing every multidomain in
// domains except the one at index selIdx.
func restDomains(domains []*multidomain, selIdx int) []*multidomain {
	out := make([]*multidomain, 0, len(domains)-1)
	out = append(out, domains[:selIdx]...)
	out = append(out, domains[selIdx+1:]...)

	return out
}

// dfs is the core search step. current is the matching accumulated so
// far; domains is this node's multidomain set. It updates the incumbent,
// prunes by bound and (in big-first mode) by goal, selects a multidomain,
// enumerates every candidate tuple pairing the pivot vertex with one
// vertex per other graph, recurses on the refined child domains, and
// finally recurses once more with the pivot vertex excluded.
func (w *worker) dfs(current []VtxSet, domains []*multidomain) {
	w.nodes++
	if w.ctx.abort.IsSet() {
		return
	}

	w.recordIfBetter(current)

	goal := w.ctx.goal
	if goal > 0 && len(current) == goal {
		// Big-first: a full-size solution for the current target was
		// found; no point growing this branch past the target.
		return
	}

	connected := w.ctx.cfg.Connected
	matchingNonEmpty := len(current) > 0

	bound := boundValue(len(current), domains, connected, matchingNonEmpty)
	if bound <= w.ctx.incumbent.Load() {
		return
	}
	if goal > 0 && bound < goal {
		return
	}

	selIdx := selectMultidomain(domains, w.buffers, w.ctx.cfg.Heuristic, connected, matchingNonEmpty)
	if selIdx == -1 {
		return
	}
	md := domains[selIdx]
	rest := restDomains(domains, selIdx)

	pivotGraph := w.ctx.order[0]
	v := pivotVertex(md, w.buffers, pivotGraph)

	// bufSnapshot is the pristine state of w.buffers at this node, decoded
	// by comboAt/removeTuple but never itself mutated: every iteration
	// below clones it fresh, exactly as drainNode clones ns.bufSnapshot in
	// parallel.go, so one combo's swap-and-shrink can never corrupt the
	// positions a later combo still needs to read.
	bufSnapshot := cloneBuffers(w.buffers)
	multiway := w.ctx.cfg.EdgeLabelled || w.ctx.cfg.Directed

	count := comboCount(md, w.ctx.order, pivotGraph)
	for idx := 0; idx < count; idx++ {
		if w.ctx.abort.IsSet() {
			return
		}

		buffers := cloneBuffers(bufSnapshot)
		chosen := comboAt(idx, md, buffers, w.ctx.order, pivotGraph, v)
		remainder := removeTuple(md, buffers, chosen)

		nextDomains := make([]*multidomain, 0, len(rest)+1)
		nextDomains = append(nextDomains, rest...)
		nextDomains = append(nextDomains, remainder)

		childDomains := filterDomains(nextDomains, buffers, w.ctx.graphs, chosen, multiway)
		w.buffers = buffers
		w.dfs(append(current, chosen), childDomains)
	}

	noMatch := md.clone()
	w.buffers = cloneBuffers(bufSnapshot)
	noMatch.length[pivotGraph] = removeValue(w.buffers[pivotGraph], noMatch.start[pivotGraph], noMatch.length[pivotGraph], v)
	if noMatch.length[pivotGraph] > 0 {
		domainsNoMatch := make([]*multidomain, 0, len(rest)+1)
		domainsNoMatch = append(domainsNoMatch, rest...)
		domainsNoMatch = append(domainsNoMatch, noMatch)
		w.dfs(current, domainsNoMatch)
	}
}

// solveSequential runs the full search to completion (or abort) starting
// from the root multidomains, entirely on the calling goroutine.
func solveSequential(ctx *searchContext, buffers [][]int, roots []*multidomain) *worker {
	w := newWorker(ctx, buffers)
	w.dfs(nil, cloneDomains(roots))

	return w
}
