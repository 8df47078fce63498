// Package mcis computes a Maximum Common (Connected) Induced Subgraph over
// k ≥ 2 input graphs simultaneously via a parallel branch-and-bound search.
//
// Given k graphs, mcis finds the largest set of vertex tuples
// (v0, v1, …, v_{k-1}), one vertex per graph, such that the induced
// subgraphs on the chosen vertices are isomorphic under the identity tuple
// mapping — edge-preserving and, when configured, label-preserving. The
// search optionally restricts the result to connected subgraphs (MCCS),
// supports directed and edge/vertex-labelled graphs, and offers a
// big-first strategy that searches for a target size T, then T-1, and so
// on until a match is found.
//
// Architecture:
//
//	types.go      — Graph, VtxSet, sentinel errors
//	config.go     — Config, Heuristic, DefaultConfig
//	validate.go   — input validation
//	preprocess.go — degree-sort helper (caller's responsibility, not automatic)
//	domain.go     — Multidomain construction (root)
//	select.go     — multidomain selection heuristics
//	refine.go     — domain refinement after a branch
//	branch.go     — k-way branching / cascading walk
//	engine.go     — shared search context, per-worker mutable state
//	search.go     — sequential depth-first search
//	position.go   — scheduler task-map key
//	schedule.go   — work-donation scheduler ("HelpMe")
//	parallel.go   — work-donating recursion variant
//	bigfirst.go   — big-first goal iteration
//	incumbent.go  — atomic incumbent, cooperative abort flag
//	run.go        — RunSearch entrypoint
//
// Use RunSearch when you need an exact maximum common (connected) induced
// subgraph across a small number of moderately sized graphs; the search is
// exponential in the worst case, and practical performance depends on the
// bound pruning enough of the search tree.
package mcis
