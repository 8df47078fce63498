// parallel.go implements the work-donating recursion variant: the mirror
// of search.go's sequential dfs, except that at depth <= SplitLevels a
// node's tuple-enumeration loop is advertised to the scheduler so idle
// workers can join, instead of running as a plain Go for loop. At depth
// > SplitLevels recursion falls back to the sequential worker.dfs.
//
// Grounded on tsp/bb.go's dfs shape, generalized with the donation hooks
// schedule.go provides; the node-local fetch-and-add cursor mirrors a
// VertexSubset.Apply-style fan-out, applied per-node instead of once per
// call.
package mcis

import "sync/atomic"

// nodeShared is the state one donated node shares between its donor and
// every helper that joins its tuple-enumeration loop. bufSnapshot is
// captured once, when the node is entered, and never mutated afterward;
// every claimed iteration clones it before touching it, so concurrent
// iterations never alias the same backing array.
type nodeShared struct {
	i    uint64 // fetch-and-add cursor over [0, iEnd)
	iEnd uint64 // count matched-tuple iterations, plus one synthetic "matches nothing" iteration

	bufSnapshot [][]int
	md          *multidomain
	rest        []*multidomain
	pivotGraph  int
	pivotVal    int
}

// next fetch-and-adds ns's cursor, returning the claimed iteration index
// and whether one was actually available.
func (ns *nodeShared) next() (idx uint64, ok bool) {
	idx = atomic.AddUint64(&ns.i, 1) - 1

	return idx, idx < ns.iEnd
}

// parallelNode is the work-donating counterpart of worker.dfs (search.go):
// it performs the exact same incumbent/bound/select/pivot steps, then
// publishes its tuple-enumeration loop as a task before draining it
// itself, so any idle worker can join before the donor finishes alone.
func (w *worker) parallelNode(buffers [][]int, current []VtxSet, domains []*multidomain, depth int) {
	w.buffers = buffers
	w.nodes++
	if w.ctx.abort.IsSet() {
		return
	}

	w.recordIfBetter(current)

	goal := w.ctx.goal
	if goal > 0 && len(current) == goal {
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
	count := comboCount(md, w.ctx.order, pivotGraph)

	ns := &nodeShared{
		iEnd:        uint64(count) + 1,
		bufSnapshot: cloneBuffers(w.buffers),
		md:          md,
		rest:        rest,
		pivotGraph:  pivotGraph,
		pivotVal:    v,
	}

	childDepth := depth + 1
	pos := newPosition(current)

	t := w.ctx.scheduler.publish(pos, func(workerID int) {
		helper := w.ctx.workers[workerID]
		helper.drainNode(ns, current, childDepth)
	})

	w.drainNode(ns, current, childDepth)

	w.ctx.scheduler.awaitDrain(pos, t)
}

// drainNode repeatedly claims an iteration index from ns and replays the
// corresponding branch (matched tuple, or the final synthetic "matches
// nothing" branch) exactly as search.go's sequential loop body does, but
// against a private per-iteration clone of ns.bufSnapshot rather than the
// node's live buffers.
func (w *worker) drainNode(ns *nodeShared, current []VtxSet, childDepth int) {
	for {
		if w.ctx.abort.IsSet() {
			return
		}
		idx, ok := ns.next()
		if !ok {
			return
		}

		buffers := cloneBuffers(ns.bufSnapshot)

		if idx == ns.iEnd-1 {
			noMatch := ns.md.clone()
			noMatch.length[ns.pivotGraph] = removeValue(buffers[ns.pivotGraph], noMatch.start[ns.pivotGraph], noMatch.length[ns.pivotGraph], ns.pivotVal)
			if noMatch.length[ns.pivotGraph] > 0 {
				childDomains := make([]*multidomain, 0, len(ns.rest)+1)
				childDomains = append(childDomains, ns.rest...)
				childDomains = append(childDomains, noMatch)
				w.descend(buffers, current, childDomains, childDepth)
			}

			continue
		}

		chosen := comboAt(int(idx), ns.md, buffers, w.ctx.order, ns.pivotGraph, ns.pivotVal)
		remainder := removeTuple(ns.md, buffers, chosen)

		nextDomains := make([]*multidomain, 0, len(ns.rest)+1)
		nextDomains = append(nextDomains, ns.rest...)
		nextDomains = append(nextDomains, remainder)

		childDomains := filterDomains(nextDomains, buffers, w.ctx.graphs, chosen, w.ctx.cfg.EdgeLabelled || w.ctx.cfg.Directed)

		childCurrent := make([]VtxSet, len(current)+1)
		copy(childCurrent, current)
		childCurrent[len(current)] = chosen

		w.descend(buffers, childCurrent, childDomains, childDepth)
	}
}

// descend routes one child node to the sequential walk once depth exceeds
// SplitLevels (or when no scheduler is configured at all), otherwise
// keeps donating.
func (w *worker) descend(buffers [][]int, current []VtxSet, domains []*multidomain, depth int) {
	if w.ctx.scheduler == nil || depth > SplitLevels {
		w.buffers = buffers
		w.dfs(current, domains)

		return
	}
	w.parallelNode(buffers, current, domains, depth)
}
