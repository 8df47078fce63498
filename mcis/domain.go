// domain.go implements the multidomain data structure (C2) and its root
// construction: vertex buffers per graph, and multidomains
// indexing contiguous ranges into them.
package mcis

import "sort"

// multidomain is one branching unit: for each of the k graphs, a contiguous
// slice [start[i], start[i]+length[i]) into that graph's vertex buffer.
// Invariant: every vertex across every slice of one multidomain shares the
// same label, and (once the matching is non-empty) the same
// adjacency-to-matching profile with respect to every graph.
type multidomain struct {
	start      []int
	length     []int
	isAdjacent bool
}

// clone returns a deep copy of md, safe to mutate independently.
func (md *multidomain) clone() *multidomain {
	out := &multidomain{
		start:      make([]int, len(md.start)),
		length:     make([]int, len(md.length)),
		isAdjacent: md.isAdjacent,
	}
	copy(out.start, md.start)
	copy(out.length, md.length)

	return out
}

// cloneBuffers deep-copies k vertex buffers; used at every donation point
//.
func cloneBuffers(buffers [][]int) [][]int {
	out := make([][]int, len(buffers))
	for i, b := range buffers {
		out[i] = make([]int, len(b))
		copy(out[i], b)
	}

	return out
}

// cloneDomains deep-copies a slice of multidomain pointers.
func cloneDomains(domains []*multidomain) []*multidomain {
	out := make([]*multidomain, len(domains))
	for i, md := range domains {
		out[i] = md.clone()
	}

	return out
}

// buildRootDomains constructs the initial vertex buffers and root
// multidomain set //
// When vertexLabelled is false, every vertex is treated as sharing one
// virtual label, producing a single root multidomain spanning every
// vertex of every graph. When vertexLabelled is true, labels is the
// intersection of label sets appearing in every graph; one multidomain is
// emitted per shared label present (with nonzero length) in every graph.
//
// Complexity: O(k*n) time and space, or O(k*n*log(distinct labels)) when
// vertexLabelled, dominated by the per-graph label scan.
func buildRootDomains(graphs []*Graph, vertexLabelled bool) ([][]int, []*multidomain) {
	k := len(graphs)
	buffers := make([][]int, k)
	for i := range buffers {
		buffers[i] = make([]int, 0, graphs[i].N)
	}

	if !vertexLabelled {
		start := make([]int, k)
		length := make([]int, k)
		for i, g := range graphs {
			for v := 0; v < g.N; v++ {
				buffers[i] = append(buffers[i], v)
			}
			length[i] = g.N
		}

		return buffers, []*multidomain{{start: start, length: length, isAdjacent: false}}
	}

	labelSets := make([]map[uint32]struct{}, k)
	for i, g := range graphs {
		set := make(map[uint32]struct{}, g.N)
		for v := 0; v < g.N; v++ {
			set[g.VertexLabel(v)] = struct{}{}
		}
		labelSets[i] = set
	}

	common := make([]uint32, 0, len(labelSets[0]))
	for l := range labelSets[0] {
		inAll := true
		for i := 1; i < k; i++ {
			if _, ok := labelSets[i][l]; !ok {
				inAll = false

				break
			}
		}
		if inAll {
			common = append(common, l)
		}
	}
	sort.Slice(common, func(a, b int) bool { return common[a] < common[b] })

	domains := make([]*multidomain, 0, len(common))
	for _, l := range common {
		start := make([]int, k)
		length := make([]int, k)
		feasible := true
		for i, g := range graphs {
			start[i] = len(buffers[i])
			for v := 0; v < g.N; v++ {
				if g.VertexLabel(v) == l {
					buffers[i] = append(buffers[i], v)
				}
			}
			length[i] = len(buffers[i]) - start[i]
			if length[i] == 0 {
				feasible = false
			}
		}
		if feasible {
			domains = append(domains, &multidomain{start: start, length: length, isAdjacent: false})
		}
	}

	return buffers, domains
}
