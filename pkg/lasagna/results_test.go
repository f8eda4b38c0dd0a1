package lasagna

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/atomic"
)

func TestResultRegistry_AwaitThenResolve(t *testing.T) {
	reg := newResultRegistry()

	pending := reg.await("/a/a/b")
	if pending.Resolved() {
		t.Error("Resolved() before setResult = true, want false")
	}
	if _, ok := pending.Value(); ok {
		t.Error("Value() before setResult reported a value")
	}

	if !reg.resolve("/a/a/b", "picked") {
		t.Error("resolve() with a pending handle = false, want true")
	}

	value, ok := pending.Value()
	if !ok || value != "picked" {
		t.Errorf("Value() = %v, %t, want picked, true", value, ok)
	}
	if reg.size() != 0 {
		t.Errorf("size() after resolve = %d, want 0", reg.size())
	}
}

// Resolving twice must deliver exactly once; the second call finds nothing
// pending and is a no-op.
func TestResultRegistry_SingleResolution(t *testing.T) {
	reg := newResultRegistry()

	pending := reg.await("/k")
	if !reg.resolve("/k", "first") {
		t.Fatal("first resolve() = false, want true")
	}
	if reg.resolve("/k", "second") {
		t.Error("second resolve() = true, want false")
	}

	value, _ := pending.Value()
	if value != "first" {
		t.Errorf("Value() after double resolve = %v, want first", value)
	}
}

func TestPendingResult_ResolveRaceHasOneWinner(t *testing.T) {
	pending := newPendingResult("/k")

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if pending.resolve(n) {
				wins.Inc()
			}
		}(i)
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Errorf("resolve() winners = %d, want 1", got)
	}
}

// Every awaiter registered before resolution observes the same value.
func TestResultRegistry_FanOut(t *testing.T) {
	reg := newResultRegistry()

	first := reg.await("/k")
	second := reg.await("/k")
	if first != second {
		t.Fatal("await() twice for the same key returned distinct handles")
	}

	results := make(chan any, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := first.Wait(context.Background())
			if err != nil {
				t.Errorf("Wait() error = %v", err)
				return
			}
			results <- value
		}()
	}

	reg.resolve("/k", 42)
	wg.Wait()
	close(results)

	for value := range results {
		if value != 42 {
			t.Errorf("Wait() = %v, want 42", value)
		}
	}
}

func TestResultRegistry_SpeculativeResultDropped(t *testing.T) {
	reg := newResultRegistry()

	if reg.resolve("/k", "dropped") {
		t.Error("resolve() with nothing pending = true, want false")
	}

	pending := reg.await("/k")
	if pending.Resolved() {
		t.Error("await() after speculative resolve returned a resolved handle")
	}
}

func TestResultRegistry_AwaitAfterResolveStartsFresh(t *testing.T) {
	reg := newResultRegistry()

	first := reg.await("/k")
	reg.resolve("/k", "one")

	second := reg.await("/k")
	if first == second {
		t.Error("await() after resolve returned the already-resolved handle")
	}
	if second.Resolved() {
		t.Error("fresh handle is already resolved")
	}
}

// Disposal answers every open key with no value instead of leaving waiters
// suspended.
func TestResultRegistry_DisposeReleasesAllAwaiters(t *testing.T) {
	reg := newResultRegistry()

	keys := []string{"/a", "/a/b", "/a/b/c"}
	handles := make([]*PendingResult, 0, len(keys))
	for _, key := range keys {
		handles = append(handles, reg.await(key))
	}

	reg.disposeAll()

	if reg.size() != 0 {
		t.Errorf("size() after disposeAll = %d, want 0", reg.size())
	}
	for i, pending := range handles {
		value, ok := pending.Value()
		if !ok {
			t.Errorf("handle %d still pending after disposeAll", i)
		}
		if value != nil {
			t.Errorf("handle %d value = %v, want nil", i, value)
		}
	}
}

func TestPendingResult_WaitHonorsContext(t *testing.T) {
	pending := newPendingResult("/k")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := pending.Wait(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Wait() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if pending.Resolved() {
		t.Error("context expiry resolved the handle")
	}
}

func TestPendingResult_DoneChannelCloses(t *testing.T) {
	pending := newPendingResult("/k")

	select {
	case <-pending.Done():
		t.Fatal("Done() closed before resolution")
	default:
	}

	pending.resolve("v")

	select {
	case <-pending.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after resolution")
	}
}
