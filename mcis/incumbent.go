// incumbent.go implements the lock-free global incumbent size and the
// cooperative timeout abort flag, grounded on
// core.Graph.nextEdgeID's atomic function-form idiom
// (atomic.AddUint64/LoadUint64/StoreUint64) and algorithms.BFS's
// context.Context cancellation checks.
package mcis

import (
	"context"
	"sync/atomic"
	"time"
)

// atomicIncumbent is a single atomic integer tracking the largest matching
// size observed by any worker, used for lock-free cross-worker pruning.
// Update is monotone non-decreasing.
type atomicIncumbent struct {
	value uint64
}

// Load reads the current incumbent size.
func (a *atomicIncumbent) Load() int {
	return int(atomic.LoadUint64(&a.value))
}

// Update CASes a.value up to v if v is larger than the current value,
// retrying until either the CAS succeeds or another worker has already
// published a value >= v.
func (a *atomicIncumbent) Update(v int) {
	nv := uint64(v)
	for {
		cur := atomic.LoadUint64(&a.value)
		if nv <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&a.value, cur, nv) {
			return
		}
	}
}

// Reset zeroes the incumbent size, used between big-first's successive
// goal attempts so a prior (possibly infeasible) target's incumbent never
// prunes the next, smaller target's search.
func (a *atomicIncumbent) Reset() {
	atomic.StoreUint64(&a.value, 0)
}

// abortFlag is a process-wide-within-one-search atomic bool checked before
// recursing into a child node and on worker task completion.
type abortFlag struct {
	flag uint32
}

// Set raises the flag; idempotent.
func (a *abortFlag) Set() {
	atomic.StoreUint32(&a.flag, 1)
}

// IsSet reports whether the flag has been raised.
func (a *abortFlag) IsSet() bool {
	return atomic.LoadUint32(&a.flag) != 0
}

// watchDeadline derives a context from ctx and timeout (timeout<=0 means
// no deadline), starts a goroutine that sets abort and calls wake when the
// derived context is done, and returns the derived context and its cancel
// function. Callers must
// call the returned cancel() to release resources once the search ends.
func watchDeadline(ctx context.Context, timeout time.Duration, abort *abortFlag, wake func()) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	var derived context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		derived, cancel = context.WithTimeout(ctx, timeout)
	} else {
		derived, cancel = context.WithCancel(ctx)
	}

	go func() {
		<-derived.Done()
		abort.Set()
		wake()
	}()

	return derived, cancel
}
