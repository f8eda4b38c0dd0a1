package lasagna

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation failures.
var (
	// ErrNothingToPop indicates a pop was requested but no navigator scope
	// along the stack could absorb it. This is a hard failure for the calling
	// operation; the match list is left unchanged.
	ErrNothingToPop = errors.New("lasagna: nothing to pop")

	// ErrNoResolver indicates Navigate or PushURI was called on a controller
	// that was built without a Resolver collaborator.
	ErrNoResolver = errors.New("lasagna: no resolver configured")

	// ErrDuplicateRouteName indicates two routes in the same table declare
	// the same name.
	ErrDuplicateRouteName = errors.New("lasagna: duplicate route name")
)

// RouteError is the error payload attached to a match that represents a
// failed route resolution. It is data, not a fault: it flows through the
// normal match-list pipeline so the presentation layer can show an error
// page, rather than aborting the navigation that produced it.
type RouteError struct {
	URI string // location that failed to resolve
	Err error  // underlying cause, may be nil
}

func (e *RouteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lasagna: route %q: %v", e.URI, e.Err)
	}
	return fmt.Sprintf("lasagna: route %q failed", e.URI)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// NewRouteError creates an error payload for a failed route resolution.
func NewRouteError(uri string, err error) *RouteError {
	return &RouteError{URI: uri, Err: err}
}

// IsRouteError checks if an error is a route resolution error.
func IsRouteError(err error) bool {
	var routeErr *RouteError
	return errors.As(err, &routeErr)
}

// IsNothingToPop checks if an error indicates pop underflow.
func IsNothingToPop(err error) bool {
	return errors.Is(err, ErrNothingToPop)
}
