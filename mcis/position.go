// position.go implements Position, the scheduler task-map key:
// a (depth, v0, v1, …) tuple identifying a node's location in the search
// tree, tracked only for the shallowest SplitLevels depths.
package mcis

import (
	"strconv"
	"strings"
)

// position identifies a donation point in the search tree by the depth of
// the current matching plus the matched vertex tuples accumulated so far,
// truncated to at most SplitLevels entries: only the shallowest
// SplitLevels positions are tracked. Two positions are equal iff the
// depth and every tracked matched tuple are equal. The struct holds
// slices and is not comparable, so the task map is keyed by key().
type position struct {
	depth int
	path  [SplitLevels]VtxSet
}

// newPosition builds a position from the current matching, keeping only
// the first SplitLevels entries: deeper matchings never reach the
// scheduler's task map, since recursion past that depth is purely
// sequential.
func newPosition(current []VtxSet) position {
	var p position
	p.depth = len(current)
	n := len(current)
	if n > SplitLevels {
		n = SplitLevels
	}
	for i := 0; i < n; i++ {
		p.path[i] = current[i].clone()
	}

	return p
}

// key renders p as a comparable string usable as a map key: VtxSet slices
// are not themselves comparable in Go, so the task map is keyed by this
// string rendering rather than the position struct directly.
func (p position) key() string {
	var b strings.Builder
	var buf [20]byte
	b.Write(strconv.AppendInt(buf[:0], int64(p.depth), 10))
	for i := 0; i < SplitLevels && i < p.depth; i++ {
		b.WriteByte('|')
		for _, v := range p.path[i] {
			b.WriteByte(',')
			b.Write(strconv.AppendInt(buf[:0], int64(v), 10))
		}
	}

	return b.String()
}
