// Package config loads navigation route tables from TOML.
//
// A route table declares the tree of leaf and shell routes an application
// shell serves, so the tree can live next to the rest of the device
// configuration instead of in code:
//
//	root_scope = "root"
//
//	[[route]]
//	path = "/"
//	name = "home"
//
//	[[route]]
//	scope = "tabs"
//
//	  [[route.route]]
//	  path = "/library"
//	  name = "library"
//
//	    [[route.route.route]]
//	    path = "detail"
//	    name = "library-detail"
//	    parent_scope = "root"
//
// A route with a scope is a shell grouping its children under a nested
// navigator; anything else is a leaf and needs a path. Leaf paths are
// absolute until a leaf ancestor appears, relative below one. A
// parent_scope may only name the root scope or the scope of an enclosing
// shell.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna"
)

// Sentinel errors for malformed route tables.
var (
	ErrNoRoutes           = errors.New("route table declares no routes")
	ErrMissingPath        = errors.New("leaf route needs a path")
	ErrMixedRouteKind     = errors.New("route cannot mix shell and leaf fields")
	ErrShellWithoutRoutes = errors.New("shell route needs child routes")
	ErrAbsoluteChildPath  = errors.New("child route path must be relative")
	ErrRelativeTopPath    = errors.New("top-level route path must be absolute")
	ErrUnknownParentScope = errors.New("parent_scope names no enclosing scope")
)

// Table is a loaded and validated route table.
type Table struct {
	// RootScope is the scope key of the outermost navigator, taken from the
	// file's root_scope or DefaultRootScope when absent.
	RootScope lasagna.ScopeKey

	// Routes is the top-level route tree.
	Routes []lasagna.Route
}

type tableFile struct {
	RootScope string  `toml:"root_scope"`
	Routes    []entry `toml:"route"`
}

type entry struct {
	Path        string  `toml:"path"`
	Name        string  `toml:"name"`
	ParentScope string  `toml:"parent_scope"`
	Scope       string  `toml:"scope"`
	Routes      []entry `toml:"route"`
}

// Load reads and validates the route table at path.
func Load(path string) (*Table, error) {
	var file tableFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("config: read route table %s: %w", path, err)
	}
	return buildTable(&file)
}

// Parse validates a route table held in memory.
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: parse route table: %w", err)
	}
	return buildTable(&file)
}

func buildTable(file *tableFile) (*Table, error) {
	if len(file.Routes) == 0 {
		return nil, fmt.Errorf("config: %w", ErrNoRoutes)
	}

	root := lasagna.ScopeKey(file.RootScope)
	if root == "" {
		root = lasagna.DefaultRootScope
	}

	scopes := map[lasagna.ScopeKey]bool{root: true}
	routes, err := buildRoutes(file.Routes, "route", scopes, false)
	if err != nil {
		return nil, err
	}

	// Name collisions only surface once the whole tree is assembled.
	if _, err := lasagna.NameIndex(routes); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Table{RootScope: root, Routes: routes}, nil
}

// buildRoutes converts one level of entries, carrying the scopes visible at
// this depth and whether a leaf ancestor has made paths relative.
func buildRoutes(entries []entry, at string, scopes map[lasagna.ScopeKey]bool, insideLeaf bool) ([]lasagna.Route, error) {
	routes := make([]lasagna.Route, 0, len(entries))
	for i, e := range entries {
		here := fmt.Sprintf("%s[%d]", at, i)

		if e.Scope != "" {
			shell, err := buildShell(e, here, scopes, insideLeaf)
			if err != nil {
				return nil, err
			}
			routes = append(routes, shell)
			continue
		}

		leaf, err := buildLeaf(e, here, scopes, insideLeaf)
		if err != nil {
			return nil, err
		}
		routes = append(routes, leaf)
	}
	return routes, nil
}

func buildShell(e entry, at string, scopes map[lasagna.ScopeKey]bool, insideLeaf bool) (lasagna.Route, error) {
	if e.Path != "" || e.Name != "" || e.ParentScope != "" {
		return nil, fmt.Errorf("config: %s: %w", at, ErrMixedRouteKind)
	}
	if len(e.Routes) == 0 {
		return nil, fmt.Errorf("config: %s: %w", at, ErrShellWithoutRoutes)
	}

	scope := lasagna.ScopeKey(e.Scope)
	inner := withScope(scopes, scope)
	children, err := buildRoutes(e.Routes, at+".route", inner, insideLeaf)
	if err != nil {
		return nil, err
	}
	return &lasagna.ShellRoute{Scope: scope, Routes: children}, nil
}

func buildLeaf(e entry, at string, scopes map[lasagna.ScopeKey]bool, insideLeaf bool) (lasagna.Route, error) {
	if e.Path == "" {
		return nil, fmt.Errorf("config: %s: %w", at, ErrMissingPath)
	}
	if insideLeaf && e.Path[0] == '/' {
		return nil, fmt.Errorf("config: %s: path %q: %w", at, e.Path, ErrAbsoluteChildPath)
	}
	if !insideLeaf && e.Path[0] != '/' {
		return nil, fmt.Errorf("config: %s: path %q: %w", at, e.Path, ErrRelativeTopPath)
	}
	if e.ParentScope != "" && !scopes[lasagna.ScopeKey(e.ParentScope)] {
		return nil, fmt.Errorf("config: %s: scope %q: %w", at, e.ParentScope, ErrUnknownParentScope)
	}

	children, err := buildRoutes(e.Routes, at+".route", scopes, true)
	if err != nil {
		return nil, err
	}
	return &lasagna.LeafRoute{
		Path:        e.Path,
		Name:        e.Name,
		ParentScope: lasagna.ScopeKey(e.ParentScope),
		Routes:      children,
	}, nil
}

func withScope(scopes map[lasagna.ScopeKey]bool, scope lasagna.ScopeKey) map[lasagna.ScopeKey]bool {
	inner := make(map[lasagna.ScopeKey]bool, len(scopes)+1)
	for k := range scopes {
		inner[k] = true
	}
	inner[scope] = true
	return inner
}
