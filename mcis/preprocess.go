// preprocess.go documents and implements the degree-sort contract callers
// are expected to satisfy before invoking RunSearch. RunSearch
// never calls this automatically: sorting is the caller's responsibility,
// the same way graph file parsing and CLI argument handling are the
// caller's responsibility.
package mcis

import "sort"

// PreprocessByDegree returns a copy of g with vertices permuted so that
// degree is descending, ties broken by original index, plus the
// permutation applied: perm[i] is the original index of the vertex now at
// position i. Degree counts the forward and reverse edge-label words of
// each packed adjacency entry separately (self-loops ignored), so a
// directed edge present in only one direction still contributes exactly
// one to degree, and a bidirectional pair contributes two.
//
// Branching on a high-degree pivot first tends to shrink multidomains
// faster, so callers that pre-sort typically see fewer search-tree nodes.
// RunSearch operates on whatever ordering it is given; if the caller
// degree-sorts first, the caller is responsible for mapping the VtxSets in
// the returned Result back through perm before presenting results to a
// human.
//
// Complexity: O(n^2) time, O(n) extra space.
func PreprocessByDegree(g *Graph) (sorted *Graph, perm []int) {
	n := g.N
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		d := 0
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			word := g.Adj[v*n+u]
			if word&0xFFFF != 0 {
				d++
			}
			if word&0xFFFF0000 != 0 {
				d++
			}
		}
		degree[v] = d
	}

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return degree[perm[i]] > degree[perm[j]]
	})

	// pos[original] = new position
	pos := make([]int, n)
	for newIdx, orig := range perm {
		pos[orig] = newIdx
	}

	adj := make([]uint32, n*n)
	label := make([]uint32, n)
	for origU := 0; origU < n; origU++ {
		newU := pos[origU]
		label[newU] = g.Label[origU]
		for origV := 0; origV < n; origV++ {
			adj[newU*n+pos[origV]] = g.Adj[origU*n+origV]
		}
	}

	return &Graph{N: n, Adj: adj, Label: label}, perm
}
