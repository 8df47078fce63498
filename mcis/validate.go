// validate.go - staged validation for RunSearch inputs, grounded on
// tsp/validate.go's validateAll shape: small, deterministic, side-effect
// free helpers, returning only sentinel errors (never panicking on caller
// input).
package mcis

// validateAll verifies graphs and cfg together, normalizing cfg in place
// (filling in Ctx and Logger from DefaultConfig when they are nil).
//
// Complexity: O(k*n^2) where n is the largest graph's vertex count.
func validateAll(graphs []*Graph, cfg *Config) error {
	if err := validateGraphs(graphs, cfg.Directed); err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	return nil
}

// validateGraphs checks k range, per-graph shape, and (for undirected mode)
// adjacency symmetry.
//
// Complexity: O(k*n^2).
func validateGraphs(graphs []*Graph, directed bool) error {
	k := len(graphs)
	if k < 2 {
		return ErrTooFewGraphs
	}
	if k > MaxGraphs {
		return ErrTooManyGraphs
	}

	for _, g := range graphs {
		if err := validateOneGraph(g, directed); err != nil {
			return err
		}
	}

	return nil
}

// validateOneGraph checks a single Graph's shape invariants.
//
// Complexity: O(n^2).
func validateOneGraph(g *Graph, directed bool) error {
	if g == nil || g.N <= 0 {
		return ErrEmptyGraph
	}
	n := g.N
	if len(g.Adj) != n*n {
		return ErrBadAdjacencyLength
	}
	if len(g.Label) != n {
		return ErrBadLabelLength
	}

	if !directed {
		var u, v int
		for u = 0; u < n; u++ {
			for v = u + 1; v < n; v++ {
				if g.Adj[u*n+v] != g.Adj[v*n+u] {
					return ErrAsymmetricUndirected
				}
			}
		}
	}

	return nil
}

// validateConfig checks Config field ranges and fills in documented
// defaults for zero-value fields that must never be nil/unset at runtime
// (Ctx, Logger).
//
// Complexity: O(1).
func validateConfig(cfg *Config) error {
	if cfg.Threads < 1 {
		return ErrInvalidThreads
	}
	if cfg.Timeout < 0 {
		return ErrInvalidTimeout
	}
	switch cfg.Heuristic {
	case MinMax, MinMin, MinSum, MinProduct:
		// ok
	default:
		return ErrInvalidHeuristic
	}

	if cfg.Ctx == nil {
		cfg.Ctx = DefaultConfig().Ctx
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultConfig().Logger
	}
	if cfg.Quiet {
		cfg.Logger = func(string, ...any) {}
	}

	return nil
}
