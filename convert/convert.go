// Package convert bridges github.com/gomcis/mcis/builder's generic graph
// construction DSL (itself built on github.com/gomcis/mcis/core's
// adjacency-list Graph) into the dense, packed-uint32 Graph that
// github.com/gomcis/mcis/mcis's search engine consumes.
//
// mcis.RunSearch deliberately treats graph *parsing* (DIMACS/LAD/binary
// loaders) as an external collaborator out of scope for the search engine
// itself; this package is not such a loader — it is a programmatic
// fixture generator, letting tests and examples build named topologies
// (cycles, complete graphs, paths, …) via builder and feed them straight
// into RunSearch without hand-assembling adjacency matrices.
package convert

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/gomcis/mcis/core"
	"github.com/gomcis/mcis/mcis"
)

// ErrNonNumericID indicates a vertex ID produced by a non-default
// builder.IDFn (FromCoreGraph only understands builder.DefaultIDFn's
// decimal string IDs, since it must recover the original 0..n-1
// construction order to build a dense adjacency matrix).
var ErrNonNumericID = errors.New("convert: vertex ID is not a decimal index; FromCoreGraph requires builder.DefaultIDFn")

// FromCoreGraph converts g into an *mcis.Graph plus the vertex-ID slice
// mapping each mcis vertex index back to g's original string ID (for
// presenting RunSearch's results in terms of the caller's own graph).
//
// g must have been built with builder.DefaultIDFn (the package default):
// FromCoreGraph recovers each vertex's construction index by parsing its
// ID as a decimal integer, rather than trusting core.Graph.Vertices()'s
// lexicographic string order (which misorders "10" before "2").
//
// Every edge is treated as carrying label 1 unless it has a positive
// integer Weight, in which case that weight (clamped to 0xFFFF) becomes
// its label — letting a builder.BuildGraph call with WithWeighted() and a
// weight function double as a way to construct an edge-labelled fixture.
// Per-edge directedness overrides (core.WithMixedEdges) are not
// supported; g.Directed() alone decides whether the encoded adjacency is
// directed.
//
// Complexity: O(V² + E) time and O(V²) space for the dense adjacency matrix.
func FromCoreGraph(g *core.Graph) (*mcis.Graph, []string, error) {
	ids := g.Vertices()
	n := len(ids)

	type indexed struct {
		idx int
		id  string
	}
	parsed := make([]indexed, 0, n)
	for _, id := range ids {
		v, err := strconv.Atoi(id)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrNonNumericID, id)
		}
		parsed = append(parsed, indexed{idx: v, id: id})
	}
	sort.Slice(parsed, func(a, b int) bool { return parsed[a].idx < parsed[b].idx })

	order := make([]string, n)
	index := make(map[string]int, n)
	for pos, p := range parsed {
		order[pos] = p.id
		index[p.id] = pos
	}

	adj := make([]uint32, n*n)
	directed := g.Directed()
	for _, e := range g.Edges() {
		a, ok := index[e.From]
		if !ok {
			continue
		}
		b, ok := index[e.To]
		if !ok {
			continue
		}

		label := uint32(0)
		if e.Weight > 0 {
			label = uint32(e.Weight)
		} else {
			label = 1
		}
		if label > 0xFFFF {
			label = 0xFFFF
		}

		if directed {
			adj[a*n+b] |= label
			adj[b*n+a] |= label << 16
		} else {
			adj[a*n+b] |= label
			adj[b*n+a] |= label
		}
	}

	return &mcis.Graph{N: n, Adj: adj, Label: make([]uint32, n)}, order, nil
}
