// branch.go implements the k-way branching primitives used by the search:
// picking a pivot vertex, enumerating the Cartesian product of candidate
// tuples via a mixed-radix linear-index decomposition (the same indexing
// scheme the work-donating walk in parallel.go fetch-and-adds over), and
// extracting matched vertices from a
// multidomain's slices.
package mcis

// pivotVertex returns the smallest vertex index present in md's slice for
// graph pivotGraph — the deterministic branching pivot.
func pivotVertex(md *multidomain, buffers [][]int, pivotGraph int) int {
	s := md.start[pivotGraph]
	l := md.length[pivotGraph]

	return minInt(buffers[pivotGraph][s : s+l])
}

// comboCount returns the number of full candidate tuples obtainable by
// pairing a fixed pivot vertex with every combination of one vertex from
// each other graph's slice in md: the product of md.length[g] for g in
// order, excluding pivotGraph.
func comboCount(md *multidomain, order []int, pivotGraph int) int {
	count := 1
	for _, g := range order {
		if g == pivotGraph {
			continue
		}
		count *= md.length[g]
	}

	return count
}

// comboAt decodes linear index idx (0 <= idx < comboCount(...)) into a full
// vertex tuple via mixed-radix (odometer) decomposition against md's
// per-graph slice lengths, fixing tuple[pivotGraph] = pivotVertex. This is
// a bijection between [0, comboCount) and the Cartesian product of md's
// non-pivot slices, letting both the sequential walk (search.go) and the
// work-donated fetch-and-add walk (parallel.go) share one enumeration.
func comboAt(idx int, md *multidomain, buffers [][]int, order []int, pivotGraph, pivotVal int) VtxSet {
	k := len(buffers)
	tuple := make(VtxSet, k)
	tuple[pivotGraph] = pivotVal

	for _, g := range order {
		if g == pivotGraph {
			continue
		}
		length := md.length[g]
		w := idx % length
		idx /= length
		tuple[g] = buffers[g][md.start[g]+w]
	}

	return tuple
}

// removeValue locates value within buf[start:start+length], swaps it to
// the slice's last live position, and returns the shrunk length. The
// search for value is necessary because prior sibling combos may have
// reordered buf[start:start+length] without changing its element set.
//
// Complexity: O(length).
func removeValue(buf []int, start, length, value int) int {
	for idx := start; idx < start+length; idx++ {
		if buf[idx] == value {
			last := start + length - 1
			buf[idx], buf[last] = buf[last], buf[idx]

			return length - 1
		}
	}

	// value must always be present; a miss indicates a scheduler/branch bug.
	panic("mcis: removeValue: value not found in domain slice")
}

// removeTuple clones md and removes every chosen[g] from graph g's slice,
// producing the multidomain of md's candidates still unmatched after this
// tuple is committed.
func removeTuple(md *multidomain, buffers [][]int, chosen VtxSet) *multidomain {
	out := md.clone()
	for g, v := range chosen {
		out.length[g] = removeValue(buffers[g], out.start[g], out.length[g], v)
	}

	return out
}
