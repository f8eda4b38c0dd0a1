package lasagna

import (
	"fmt"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna/internal"
	"go.uber.org/atomic"
)

// Options configures a Controller.
type Options struct {
	// RootScope is the key of the outermost navigator scope. Defaults to
	// DefaultRootScope.
	RootScope ScopeKey

	// Surfaces resolves scope keys to the presentation layer's live
	// surfaces. When nil, the controller installs a single root surface
	// that mirrors its own match list, which is enough for hosts without
	// nested scopes or overlays.
	Surfaces SurfaceLookup

	// Builder produces the renderable surface tree on demand. Optional;
	// Build returns nil without one.
	Builder Builder

	// Resolver turns locations into match lists for Navigate and PushURI.
	// Optional; both return ErrNoResolver without one.
	Resolver Resolver

	// RouterNeglect asks the presentation layer not to record history
	// entries for changes it builds. Forwarded to the Builder untouched.
	RouterNeglect bool
}

// Controller owns the navigation stack of an application shell: an ordered
// list of route matches, the pending-result registry that correlates pushes
// with their eventual close results, and the scope walk that decides which
// navigator absorbs a pop.
//
// All mutating operations (Push, Pop, Replace, PopUntil, SetNewRoutePath,
// Dispose) are synchronous and must run on a single goroutine, the same
// event loop that delivers input, the way the hosting framework already
// serializes navigation. Waiting on a PendingResult is the one exception:
// any goroutine may wait, and resolution crosses safely.
type Controller struct {
	opts      Options
	matches   *MatchList
	keys      pageKeys
	results   *resultRegistry
	observers *notifier
	disposed  atomic.Bool
}

// NewController creates a controller owning the given initial stack. A nil
// initial list starts empty; the first SetNewRoutePath establishes the
// stack.
func NewController(initial *MatchList, opts Options) *Controller {
	if opts.RootScope == "" {
		opts.RootScope = DefaultRootScope
	}
	if initial == nil {
		initial = NewMatchList()
	}
	c := &Controller{
		opts:      opts,
		matches:   initial,
		keys:      newPageKeys(),
		results:   newResultRegistry(),
		observers: newNotifier(),
	}
	if c.opts.Surfaces == nil {
		c.opts.Surfaces = SurfaceMap{c.opts.RootScope: &mirrorSurface{controller: c}}
	}
	return c
}

// Matches returns the current stack as a cloned, read-only view.
func (c *Controller) Matches() *MatchList {
	return c.matches.Clone()
}

// RoutePathKey returns the correlation key for the current stack shape: the
// concatenation of every entry's FullURI in stack order.
func (c *Controller) RoutePathKey() string {
	return c.matches.PathKey()
}

// Push appends one imperative entry built from the resolved list, keyed so
// that repeated pushes of the same path stay distinguishable. Grouping
// routes are structural and cannot be pushed; attempting to is a
// programming error.
func (c *Controller) Push(list *MatchList) {
	if list == nil || list.IsEmpty() {
		panic("lasagna: push of an empty match list")
	}
	if _, ok := list.Last().Route.(*ShellRoute); ok {
		panic(fmt.Sprintf("lasagna: grouping route for %q is structural and cannot be pushed", list.URI()))
	}
	key := c.keys.next(list.FullPath())
	c.matches.Push(newImperativeMatch(key, list))
	internal.GetInternalLogger().Debug("Pushed route",
		"uri", list.URI(), "pageKey", string(key), "depth", c.matches.Len())
	c.observers.notify()
}

// PushURI resolves a location through the Resolver collaborator and pushes
// the result.
func (c *Controller) PushURI(uri string) error {
	if c.opts.Resolver == nil {
		return ErrNoResolver
	}
	list, err := c.opts.Resolver.Resolve(uri)
	if err != nil {
		return fmt.Errorf("lasagna: resolve %q: %w", uri, err)
	}
	c.Push(list)
	return nil
}

// Pop resolves the pending result for the current route-path key with
// result, then delegates the pop to the topmost scope whose surface can
// absorb it. When no scope along the walk can pop, Pop returns
// ErrNothingToPop and leaves the match list untouched.
func (c *Controller) Pop(result any) error {
	c.results.resolve(c.matches.PathKey(), result)

	walker := newScopeWalker(c.matches.Slice(), c.opts.RootScope, c.opts.Surfaces)
	for surface, ok := walker.next(); ok; surface, ok = walker.next() {
		if !surface.CanPop() {
			continue
		}
		surface.Pop(result)
		c.assertNotEmpty("pop")
		internal.GetInternalLogger().Debug("Popped route",
			"uri", c.matches.URI(), "depth", c.matches.Len())
		c.observers.notify()
		return nil
	}
	return ErrNothingToPop
}

// CanPop reports whether any scope along the walk can absorb a pop. A
// single-entry stack with no poppable nested scope cannot.
func (c *Controller) CanPop() bool {
	walker := newScopeWalker(c.matches.Slice(), c.opts.RootScope, c.opts.Surfaces)
	for surface, ok := walker.next(); ok; surface, ok = walker.next() {
		if surface.CanPop() {
			return true
		}
	}
	return false
}

// Replace swaps the top of the stack for the resolved list: the pending
// result for the current key resolves with no value, the top entry comes
// off, and the new entry is pushed with a fresh page key.
func (c *Controller) Replace(list *MatchList) {
	if c.matches.IsEmpty() {
		panic("lasagna: replace on an empty match list")
	}
	c.results.resolve(c.matches.PathKey(), nil)
	// The stack is transiently empty between these two lines when it held
	// a single entry; Push restores the invariant immediately.
	c.matches.removeLast()
	c.Push(list)
}

// PopUntil pops entries, resolving each level's pending result with no
// value, until the top entry's FullURI equals targetURI or the stack can no
// longer pop. Observers are notified once, at the end.
func (c *Controller) PopUntil(targetURI string) {
	for c.matches.URI() != targetURI && c.matches.CanPop() {
		c.results.resolve(c.matches.PathKey(), nil)
		c.matches.Pop()
	}
	internal.GetInternalLogger().Debug("Popped until route",
		"uri", c.matches.URI(), "depth", c.matches.Len())
	c.observers.notify()
}

// SetNewRoutePath installs a freshly resolved stack, as produced by
// system-level navigation. Awaiters tied to the outgoing stack are released
// first: every cumulative prefix of the old list is resolved with no value.
// The call completes synchronously; by the time it returns, the new list is
// installed and observers have run.
func (c *Controller) SetNewRoutePath(list *MatchList) {
	var prefix string
	for _, m := range c.matches.Slice() {
		prefix += m.FullURI
		c.results.resolve(prefix, nil)
	}
	if list == nil {
		panic("lasagna: new route path must not be nil")
	}
	c.matches = list
	c.assertNotEmpty("set new route path")
	internal.GetInternalLogger().Debug("Set new route path",
		"uri", c.matches.URI(), "depth", c.matches.Len())
	c.observers.notify()
}

// Navigate resolves a location through the Resolver collaborator and
// installs the result via SetNewRoutePath.
func (c *Controller) Navigate(uri string) error {
	if c.opts.Resolver == nil {
		return ErrNoResolver
	}
	list, err := c.opts.Resolver.Resolve(uri)
	if err != nil {
		return fmt.Errorf("lasagna: resolve %q: %w", uri, err)
	}
	c.SetNewRoutePath(list)
	return nil
}

// AwaitResult returns the pending result registered under key, creating it
// when absent. An empty key means the current route-path key. Multiple
// callers awaiting the same key share one handle and observe the same
// value.
func (c *Controller) AwaitResult(key string) *PendingResult {
	if key == "" {
		key = c.matches.PathKey()
	}
	return c.results.await(key)
}

// SetResult resolves the pending result registered under key. An empty key
// means the current route-path key. With nothing pending under the key the
// call is a no-op: the value is dropped, not stored for a future awaiter.
func (c *Controller) SetResult(key string, result any) {
	if key == "" {
		key = c.matches.PathKey()
	}
	c.results.resolve(key, result)
}

// PendingResults reports how many route-path keys currently have an
// unresolved awaiter.
func (c *Controller) PendingResults() int {
	return c.results.size()
}

// Subscribe registers an observer called after every stack mutation. The
// returned function removes it.
func (c *Controller) Subscribe(fn func()) func() {
	return c.observers.subscribe(fn)
}

// Build asks the Builder collaborator for the surface tree of the current
// stack, passing the pop-page callback surfaces report paged pops through.
// Hosts typically call it from a Subscribe observer. Returns nil without a
// Builder.
func (c *Controller) Build() any {
	if c.opts.Builder == nil {
		return nil
	}
	return c.opts.Builder.Build(c.matches.Clone(), c.popPage, c.opts.RouterNeglect)
}

// Dispose resolves every still-pending result with no value and drops all
// observers. The first call wins; later calls are no-ops. The controller
// must not be used afterwards.
func (c *Controller) Dispose() {
	if !c.disposed.CompareAndSwap(false, true) {
		return
	}
	c.results.disposeAll()
	c.observers.clear()
	internal.GetInternalLogger().Debug("Disposed navigation controller")
}

// popPage is the PopPageFunc handed to Builder implementations: a surface
// calls it when a paged entry finished popping visually. It removes the top
// match and notifies, or reports false at the root so the host can decide
// what a back press there means.
func (c *Controller) popPage(result any) bool {
	if !c.matches.CanPop() {
		return false
	}
	popped := c.matches.Pop()
	c.assertNotEmpty("pop page")
	internal.GetInternalLogger().Debug("Popped page",
		"pageKey", string(popped.PageKey), "hasResult", result != nil)
	c.observers.notify()
	return true
}

func (c *Controller) assertNotEmpty(op string) {
	if c.matches.IsEmpty() {
		panic(fmt.Sprintf("lasagna: match list empty after %s", op))
	}
}

// mirrorSurface is the default root surface: it treats the controller's own
// match list as the visual stack. Suitable whenever the presentation layer
// keeps no stack of its own.
type mirrorSurface struct {
	controller *Controller
}

func (s *mirrorSurface) CanPop() bool {
	return s.controller.matches.CanPop()
}

// Pop shortens the match list directly; the controller notifies once the
// delegation returns. Only called after CanPop reported true.
func (s *mirrorSurface) Pop(result any) {
	s.controller.matches.Pop()
}

func (s *mirrorSurface) ModalHosted() bool { return false }

func (s *mirrorSurface) Topmost() bool { return true }
