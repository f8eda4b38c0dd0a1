package lasagna

import (
	"net/url"
)

// Match is a single matched route occurrence: one entry of the navigation
// stack. Matches are immutable by convention: build them, never rewrite
// them in place.
type Match struct {
	// Route is the route definition this entry matched.
	Route Route

	// SubLocation is the path segment matched at this level.
	SubLocation string

	// FullPath is the route-pattern path from the root to this level.
	FullPath string

	// FullURI is the concrete location for this entry, with parameters
	// substituted and query preserved. It doubles as the correlation
	// identity for pending results.
	FullURI string

	// Params holds the encoded path parameters captured by the match.
	Params map[string]string

	// Query holds the query parameters of the matched location.
	Query url.Values

	// Extra is an opaque caller-supplied payload. The library never
	// inspects it.
	Extra any

	// Err carries the failure when this entry represents an error route.
	Err error

	// PageKey uniquely identifies this stack entry. Two matches for the
	// same location pushed at different times carry different keys.
	PageKey PageKey

	// snapshot is the resolved match list behind an imperative push, which
	// may describe an entire sub-path rather than a single segment.
	snapshot *MatchList
}

// Imperative reports whether this entry was produced by an imperative push
// rather than system navigation.
func (m *Match) Imperative() bool {
	return m.snapshot != nil
}

// Snapshot returns the resolved match list an imperative push was built
// from, or nil for matches produced by system navigation.
func (m *Match) Snapshot() *MatchList {
	return m.snapshot
}

// newImperativeMatch wraps the leaf of a resolved match list as a single
// pushable stack entry, carrying the whole list so the entry can stand in
// for a sub-path.
func newImperativeMatch(key PageKey, list *MatchList) *Match {
	leaf := list.Last()
	return &Match{
		Route:       leaf.Route,
		SubLocation: leaf.SubLocation,
		FullPath:    list.FullPath(),
		FullURI:     list.URI(),
		Params:      leaf.Params,
		Query:       leaf.Query,
		Extra:       leaf.Extra,
		Err:         leaf.Err,
		PageKey:     key,
		snapshot:    list,
	}
}
