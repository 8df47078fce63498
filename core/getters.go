// File: getters.go
// Role: Read-only flag accessors used by view.go and external packages.
package core

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces or retrieved from a map of pointers.
// Complexity: O(1).
func (e *Edge) IsNil() bool { return e == nil }

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.weighted
}

// Directed reports the graph's default edge directedness.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge directedness overrides are permitted.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.allowMixed
}
