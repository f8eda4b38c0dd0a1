package lasagna

import (
	"github.com/google/uuid"
)

// ScopeKey identifies a navigator scope: a region of the application that
// owns its own sub-stack of screens. The root scope is the outermost
// navigator; every ShellRoute introduces a nested one.
//
// Keys are compared as plain strings, so hosts that declare scopes in
// configuration can use stable literals ("main", "tabs"). Use NewScopeKey
// when two shells might otherwise share a label.
type ScopeKey string

// DefaultRootScope is the scope key used for the root navigator when the
// host does not choose its own.
const DefaultRootScope ScopeKey = "root"

// NewScopeKey returns a scope key built from the label plus a random suffix,
// so repeated instances of the same shell never collide.
func NewScopeKey(label string) ScopeKey {
	return ScopeKey(label + "-" + uuid.NewString()[:8])
}

// Route is a single node of the route table. There are two variants:
// LeafRoute, which matches a path segment and renders a screen, and
// ShellRoute, which groups child routes under a nested navigator scope.
type Route interface {
	// ChildRoutes returns the nested routes below this node.
	ChildRoutes() []Route

	isRoute()
}

// LeafRoute matches a path segment and renders a single screen.
type LeafRoute struct {
	// Path is the segment pattern this route matches. Top-level paths are
	// absolute ("/settings"); child paths are relative ("detail").
	Path string

	// Name optionally identifies the route for name-based lookup.
	Name string

	// ParentScope pins the screen to an ancestor navigator scope instead of
	// its structural parent. A screen inside a shell can declare the root
	// scope here to render above the shell (full-screen dialogs, login
	// walls). Empty means the structural parent hosts it.
	ParentScope ScopeKey

	// Routes holds nested child routes.
	Routes []Route
}

// ChildRoutes returns the nested routes below this node.
func (r *LeafRoute) ChildRoutes() []Route { return r.Routes }

func (r *LeafRoute) isRoute() {}

// ShellRoute groups child routes under its own navigator scope. It is
// structural: it renders the chrome around a nested navigator (tab bars,
// side rails) and is never pushed imperatively.
type ShellRoute struct {
	// Scope is the navigator scope this shell owns. Child matches render
	// inside it unless they declare a ParentScope of their own.
	Scope ScopeKey

	// Routes holds the child routes rendered inside the shell.
	Routes []Route
}

// ChildRoutes returns the child routes rendered inside the shell.
func (r *ShellRoute) ChildRoutes() []Route { return r.Routes }

func (r *ShellRoute) isRoute() {}
