package lasagna

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// PendingResult is the future side of a navigation result: a value some
// screen will produce when it is eventually dismissed. Any number of callers
// may wait on the same handle; all of them observe the same value once it
// resolves.
//
// A handle resolves exactly once. Resolution with no value (a pop without a
// result, controller disposal) delivers nil.
type PendingResult struct {
	key      string
	done     chan struct{}
	resolved atomic.Bool
	value    any
}

func newPendingResult(key string) *PendingResult {
	return &PendingResult{
		key:  key,
		done: make(chan struct{}),
	}
}

// Key returns the route-path key this handle is registered under.
func (p *PendingResult) Key() string {
	return p.key
}

// Done returns a channel that is closed once the result is resolved.
func (p *PendingResult) Done() <-chan struct{} {
	return p.done
}

// Resolved reports whether the result has been delivered.
func (p *PendingResult) Resolved() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Value returns the delivered result. The second return is false while the
// handle is still pending.
func (p *PendingResult) Value() (any, bool) {
	select {
	case <-p.done:
		return p.value, true
	default:
		return nil, false
	}
}

// Wait blocks until the result is resolved or ctx is cancelled. This is the
// only suspending operation in the library; there is no timeout of its own,
// so a waiter whose key never resolves blocks until disposal or ctx expiry.
func (p *PendingResult) Wait(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve delivers the value and wakes every waiter. The compare-and-swap
// decides a single winner; late calls report false and change nothing.
// Readers observe the value only through the done channel, so the close
// publishes the write.
func (p *PendingResult) resolve(value any) bool {
	if !p.resolved.CompareAndSwap(false, true) {
		return false
	}
	p.value = value
	close(p.done)
	return true
}

// resultRegistry maps route-path keys to pending results. Mutations come
// from the controller's goroutine; waits happen anywhere, so the map is
// mutex-guarded. An entry is either pending or already resolved-and-removed,
// never both.
type resultRegistry struct {
	mu      sync.Mutex
	pending map[string]*PendingResult
}

func newResultRegistry() *resultRegistry {
	return &resultRegistry{pending: make(map[string]*PendingResult)}
}

// await returns the pending handle for key, registering a fresh one when
// none exists. Callers awaiting the same key share one handle.
func (r *resultRegistry) await(key string) *PendingResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pending[key]; ok {
		return p
	}
	p := newPendingResult(key)
	r.pending[key] = p
	return p
}

// resolve delivers value to the handle registered under key and removes it.
// A key with nothing pending is a no-op: speculative results are dropped,
// not queued for a future awaiter.
func (r *resultRegistry) resolve(key string, value any) bool {
	r.mu.Lock()
	p, ok := r.pending[key]
	if ok {
		delete(r.pending, key)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	return p.resolve(value)
}

// disposeAll resolves every pending handle with no value, so nothing stays
// suspended past teardown.
func (r *resultRegistry) disposeAll() {
	r.mu.Lock()
	drained := make([]*PendingResult, 0, len(r.pending))
	for _, p := range r.pending {
		drained = append(drained, p)
	}
	r.pending = make(map[string]*PendingResult)
	r.mu.Unlock()

	for _, p := range drained {
		p.resolve(nil)
	}
}

// size reports how many keys are still pending.
func (r *resultRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
