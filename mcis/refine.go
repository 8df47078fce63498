// refine.go implements filterDomains: partitioning every
// remaining multidomain's slices into with-edge/no-edge relative to a
// newly chosen vertex tuple, with an optional multiway split by matching
// edge label across all k graphs.
package mcis

import "sort"

// edgeWord returns the raw packed adjacency word between a and b: low 16
// bits the forward label, high 16 bits the backward label (directed
// graphs only). Using the full word as a comparison key lets
// splitByEdgeLabel group vertices that match identically in both
// directions without special-casing directedness.
func edgeWord(g *Graph, a, b int) uint32 {
	return g.Adj[a*g.N+b]
}

// partitionByAdjacency reorders buf[start:start+length] in place so that
// vertices not adjacent to the pivot come first, returning their count.
// Relative order within each group is unspecified; the search never
// depends on it (multidomains are unordered sets of candidates).
//
// Complexity: O(length).
func partitionByAdjacency(buf []int, start, length int, adjacent func(x int) bool) int {
	i, j := start, start+length-1
	for i <= j {
		for i <= j && !adjacent(buf[i]) {
			i++
		}
		for i <= j && adjacent(buf[j]) {
			j--
		}
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
			i++
			j--
		}
	}

	return i - start
}

// filterDomains refines every multidomain in domains against a newly
// chosen vertex tuple, returning the child multidomains for the next
// recursion depth. For each old multidomain it partitions every graph's
// slice into a no-edge group (unchanged isAdjacent) and an edge group
// (isAdjacent=true); a group is only emitted when every graph contributed
// a non-empty slice. When multiway is set (the search is edge-labelled or
// directed), the edge group is further split by matching edge word via
// splitByEdgeLabel instead of being emitted as a single child — directed
// graphs need this same split even without distinct edge labels, since
// otherwise a forward-only edge in one graph and a backward-only edge in
// another would both satisfy the simple "some edge exists" check and end
// up in the same domain despite disagreeing on direction.
//
// buffers are mutated in place (partitioned); callers that need the
// pre-refine buffers must clone first (see cloneBuffers).
//
// Complexity: O(|domains| * k * maxSliceLength) plus
// O(k * maxSliceLength * log(maxSliceLength)) when multiway.
func filterDomains(domains []*multidomain, buffers [][]int, graphs []*Graph, chosen VtxSet, multiway bool) []*multidomain {
	k := len(graphs)
	out := make([]*multidomain, 0, 2*len(domains))

	for _, md := range domains {
		noStart := make([]int, k)
		noLen := make([]int, k)
		edgeStart := make([]int, k)
		edgeLen := make([]int, k)

		for i := 0; i < k; i++ {
			g := graphs[i]
			pivot := chosen[i]
			n := partitionByAdjacency(buffers[i], md.start[i], md.length[i], func(x int) bool {
				return edgeWord(g, pivot, x) != 0
			})
			noStart[i] = md.start[i]
			noLen[i] = n
			edgeStart[i] = md.start[i] + n
			edgeLen[i] = md.length[i] - n
		}

		if productNonZero(noLen) {
			out = append(out, &multidomain{start: noStart, length: noLen, isAdjacent: md.isAdjacent})
		}

		if productNonZero(edgeLen) {
			if multiway {
				out = append(out, splitByEdgeLabel(graphs, buffers, chosen, edgeStart, edgeLen)...)
			} else {
				out = append(out, &multidomain{start: edgeStart, length: edgeLen, isAdjacent: true})
			}
		}
	}

	return out
}

// productNonZero reports whether every length is non-zero, i.e. whether
// every graph contributed at least one candidate to the group.
func productNonZero(lengths []int) bool {
	for _, l := range lengths {
		if l == 0 {
			return false
		}
	}

	return true
}

// splitByEdgeLabel further partitions an already-adjacent group into
// sub-multidomains sharing the same edgeWord relative to chosen, via a
// k-cursor parallel walk over edge-label-sorted slices. Each buffer's slice is sorted ascending by its
// edgeWord-to-chosen[i] value (tie-break by vertex index) in place; the
// walk then advances, graph by graph, through equal-label runs and emits
// one multidomain per label value present with non-zero length in every
// graph.
//
// Complexity: O(k*length*log(length)) for the sort, O(k*length) for the walk.
func splitByEdgeLabel(graphs []*Graph, buffers [][]int, chosen VtxSet, starts, lengths []int) []*multidomain {
	k := len(graphs)
	label := func(i, x int) uint32 { return edgeWord(graphs[i], chosen[i], x) }

	ends := make([]int, k)
	for i := 0; i < k; i++ {
		ends[i] = starts[i] + lengths[i]
		sub := buffers[i][starts[i]:ends[i]]
		sort.Slice(sub, func(a, b int) bool {
			la, lb := label(i, sub[a]), label(i, sub[b])
			if la != lb {
				return la < lb
			}

			return sub[a] < sub[b]
		})
	}

	cursor := make([]int, k)
	copy(cursor, starts)

	var out []*multidomain
	for {
		active := false
		var minLabel uint32
		for i := 0; i < k; i++ {
			if cursor[i] >= ends[i] {
				continue
			}
			l := label(i, buffers[i][cursor[i]])
			if !active || l < minLabel {
				minLabel = l
				active = true
			}
		}
		if !active {
			break
		}

		start := make([]int, k)
		length := make([]int, k)
		for i := 0; i < k; i++ {
			start[i] = cursor[i]
			for cursor[i] < ends[i] && label(i, buffers[i][cursor[i]]) == minLabel {
				cursor[i]++
			}
			length[i] = cursor[i] - start[i]
		}
		if productNonZero(length) {
			out = append(out, &multidomain{start: start, length: length, isAdjacent: true})
		}
	}

	return out
}
