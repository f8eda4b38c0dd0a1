package lasagna

// Surface is the pop-capable face of one navigator scope, implemented by the
// presentation layer. The controller never renders; it asks surfaces about
// their visual stacks and delegates pops to them.
type Surface interface {
	// CanPop reports whether this scope's own stack has anything to pop.
	CanPop() bool

	// Pop removes the top of this scope's visual stack. Pops of paged
	// entries come back to the controller through the pop-page callback
	// handed to the Builder; pageless overlays (dialogs, sheets) are
	// absorbed here without touching the match list.
	Pop(result any)

	// ModalHosted reports whether an overlay or modal surface hosts this
	// scope at all. The root scope is never modal-hosted.
	ModalHosted() bool

	// Topmost reports whether the surface hosting this scope is currently
	// the active, unobscured one. Only meaningful when ModalHosted.
	Topmost() bool
}

// SurfaceLookup resolves scope keys to their live surfaces. Returning nil
// means the scope is not currently mounted.
type SurfaceLookup interface {
	Surface(key ScopeKey) Surface
}

// SurfaceMap is a SurfaceLookup backed by a plain map.
type SurfaceMap map[ScopeKey]Surface

// Surface returns the surface registered for key, or nil.
func (m SurfaceMap) Surface(key ScopeKey) Surface {
	return m[key]
}

// PopPageFunc reports a completed paged pop back to the controller. It
// returns false when the stack is already at its root, in which case the
// hosting application decides what happens next (usually exit).
type PopPageFunc func(result any) bool

// Builder produces the renderable surface tree for a match list. The
// controller calls it with a cloned list, the pop-page callback surfaces
// must invoke for paged pops, and the neglect-history flag. What the
// returned value is (widget tree, texture list, scene graph) is entirely
// the presentation layer's business.
type Builder interface {
	Build(list *MatchList, onPopPage PopPageFunc, neglectHistory bool) any
}

// Resolver turns a location string into a resolved match list. Matching
// semantics (patterns, parameters, redirects) live entirely on the resolver
// side; a failed business-level resolution is expressed as a list whose leaf
// carries an Err payload, while a hard failure returns an error.
type Resolver interface {
	Resolve(uri string) (*MatchList, error)
}
