package lasagna

import "fmt"

// scopeWalker yields candidate navigator scopes for a pop or can-pop query,
// scanning the match list from the top entry downward. A fresh walker is
// built per operation and recomputes everything from the list it was given,
// so there is no cursor state to go stale between operations.
//
// The walk exists because the visual stack and the match list are not 1:1:
// nested shells own sub-stacks, pageless overlays obscure scopes without
// appearing as entries, and a match may declare an ancestor scope as its
// host. The naive "pop the global top" is wrong in all three cases.
type scopeWalker struct {
	matches []*Match
	root    ScopeKey
	lookup  SurfaceLookup
	idx     int
}

func newScopeWalker(matches []*Match, root ScopeKey, lookup SurfaceLookup) *scopeWalker {
	// Start just past the last match so the first step lands on the top.
	return &scopeWalker{matches: matches, root: root, lookup: lookup, idx: len(matches)}
}

// next yields the surface of the next candidate scope, topmost first. The
// root surface is yielded at most once, as the final fallback. Unmounted
// scopes (nil surfaces) are skipped.
func (w *scopeWalker) next() (Surface, bool) {
	if w.idx < 0 {
		return nil, false
	}
	for w.idx--; w.idx >= 0; w.idx-- {
		match := w.matches[w.idx]
		switch route := match.Route.(type) {
		case *LeafRoute:
			if route.ParentScope == "" {
				continue
			}
			surface := w.lookup.Surface(route.ParentScope)
			if surface == nil {
				continue
			}
			if !surface.ModalHosted() {
				// Nothing hosts the declared parent, so it behaves as the
				// root scope and ends the walk.
				w.idx = -1
				return surface, true
			}
			// The scope lives under a modal; locate the shell actually
			// responsible for it before deciding.
			w.rewindToShell(route.ParentScope)
			if !surface.Topmost() {
				// An overlay above this scope resolves first; keep
				// scanning below the owning shell.
				continue
			}
			return surface, true
		case *ShellRoute:
			surface := w.lookup.Surface(route.Scope)
			if surface == nil {
				continue
			}
			if surface.ModalHosted() && !surface.Topmost() {
				continue
			}
			return surface, true
		}
	}
	root := w.lookup.Surface(w.root)
	if root == nil {
		return nil, false
	}
	return root, true
}

// rewindToShell moves the cursor onto the shell match owning scope. A live
// match can only declare scopes that appear below it; anything else is a
// mis-built route table.
func (w *scopeWalker) rewindToShell(scope ScopeKey) {
	for w.idx >= 0 {
		if shell, ok := w.matches[w.idx].Route.(*ShellRoute); ok && shell.Scope == scope {
			return
		}
		w.idx--
	}
	panic(fmt.Sprintf("lasagna: scope %q is not on the stack below the match that declares it", scope))
}
