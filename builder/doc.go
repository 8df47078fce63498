// Package builder provides reusable "functional-options"-style building
// blocks for constructing core.Graph fixtures by name instead of by hand:
// Cycle, Path, and Complete cover the topologies convert.FromCoreGraph's
// callers need.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     - BuilderOption:     a function that mutates builderConfig before use.
//     - builderConfig:     holds RNG, ID-scheme, weight function, etc.
//   - Vertex-ID schemes (IDFn implementations):
//     - DefaultIDFn:       decimal strings ("0","1",...).
//     - SymbolIDFn:        single letters ("A","B",...).
//     - ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",...).
//     - AlphanumericIDFn:  base-36 strings ("0"..."z","10",...).
//     - HexIDFn:           lowercase hexadecimal ("0","a","ff",...).
//   - Edge-weight distributions (WeightFn implementations):
//     - DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     - ConstantWeightFn:  fixed user-provided value.
//     - UniformWeightFn:   uniform ~U[min,max].
//     - NormalWeightFn:    Gaussian ~N(mean,stddev), clipped.
//     - ExponentialWeightFn: exponential ~Exp(rate).
//
// Guarantees:
//
//   - Deterministic construction: running the same builder on a fresh graph yields
//     the same vertices and edges. Re-running it on the same g does not duplicate
//     vertices, but its edges are not deduplicated: a non-multigraph rejects them
//     with core.ErrMultiEdgeNotAllowed, a multigraph stores them as parallel edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Documented algorithmic complexity (O(n), O(n^2), O(V+E), etc.) per constructor.
//   - Fully testable: IDFn, WeightFn, and BuilderOption behavior is covered by
//     unit tests in builder/id_fn_test.go, builder/weight_fn_test.go and
//     builder/config_test.go; the constructors by builder/builder_impl_test.go.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
