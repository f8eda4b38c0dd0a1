// Package lasagna provides the navigation stack behind a single-page
// application shell: an ordered list of route matches, stable page keys for
// surface reuse, result passing between a pushed route and its opener, and
// the scope walk that decides which nested navigator absorbs a pop.
//
// Unlike a transition-function router, lasagna keeps the whole navigation
// state in one match list and derives everything else from it. The
// presentation layer stays a pure function of that list: subscribe, rebuild,
// and report pops back through the pop-page callback.
//
// # Basic Usage
//
//	// Declare the route tree. Shell routes group children under a nested
//	// navigator scope; leaf routes render.
//	tabs := lasagna.NewScopeKey("tabs")
//	routes := []lasagna.Route{
//	    &lasagna.LeafRoute{Path: "/", Name: "home"},
//	    &lasagna.ShellRoute{
//	        Scope: tabs,
//	        Routes: []lasagna.Route{
//	            &lasagna.LeafRoute{Path: "/library", Name: "library"},
//	            &lasagna.LeafRoute{Path: "/settings", Name: "settings"},
//	        },
//	    },
//	}
//
//	ctrl := lasagna.NewController(initial, lasagna.Options{
//	    Resolver: resolver(routes),
//	})
//	defer ctrl.Dispose()
//
//	stop := ctrl.Subscribe(func() { render(ctrl.Matches()) })
//	defer stop()
//
//	// Imperative navigation. Push stacks a new top entry; Pop hands the
//	// result to whoever awaited it.
//	ctrl.PushURI("/settings")
//	if err := ctrl.Pop(savedSettings); err != nil {
//	    // Nothing left to pop: the host decides what back means here.
//	}
//
// # Result Passing
//
// A route pushed to collect something (a picker, a confirmation) hands its
// answer back through the pending-result registry. The opener awaits under
// the route-path key of the stack shape it pushed; the pushed route resolves
// that key when it closes:
//
//	ctrl.PushURI("/picker")
//	pending := ctrl.AwaitResult("")  // empty key: the stack shape just pushed
//	// ... later, the picker closes:
//	ctrl.Pop(picked)
//	value, err := pending.Wait(ctx)
//
// Pop, Replace, PopUntil, and SetNewRoutePath all release the keys of the
// stack shapes they retire, so an awaiter never outlives the route it was
// waiting on. A key released without an explicit result yields nil.
//
// # Nested Scopes
//
// Pop does not blindly shorten the match list. It walks the current matches
// from the top down, honoring declared parent scopes, modal overlays, and
// nested shells, and delegates to the first surface that can absorb the pop.
// Hosts with a single flat stack never notice the walk: the default root
// surface mirrors the match list and pops it directly.
package lasagna
