package lasagna

import (
	"fmt"
	"strings"
)

// JoinPaths concatenates a parent path and a child segment with exactly one
// slash between them, regardless of how either side is written.
func JoinPaths(parent, child string) string {
	if child == "" {
		return parent
	}
	if parent == "" {
		return child
	}
	return strings.TrimSuffix(parent, "/") + "/" + strings.TrimPrefix(child, "/")
}

// CanonicalURI normalizes a location string: the path keeps no trailing
// slash (except the bare root), the query survives untouched.
func CanonicalURI(uri string) string {
	path, query, hasQuery := strings.Cut(uri, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if hasQuery {
		return path + "?" + query
	}
	return path
}

// NameIndex walks a route table and returns the full path for every named
// route. Shell routes contribute no path of their own; their children join
// directly onto the enclosing path. Duplicate names are an error.
func NameIndex(routes []Route) (map[string]string, error) {
	index := make(map[string]string)
	if err := indexRoutes(routes, "", index); err != nil {
		return nil, err
	}
	return index, nil
}

func indexRoutes(routes []Route, parentPath string, index map[string]string) error {
	for _, route := range routes {
		fullPath := parentPath
		if leaf, ok := route.(*LeafRoute); ok {
			fullPath = JoinPaths(parentPath, leaf.Path)
			if leaf.Name != "" {
				if existing, dup := index[leaf.Name]; dup {
					return fmt.Errorf("%w: %q used by %q and %q",
						ErrDuplicateRouteName, leaf.Name, existing, fullPath)
				}
				index[leaf.Name] = fullPath
			}
		}
		if err := indexRoutes(route.ChildRoutes(), fullPath, index); err != nil {
			return err
		}
	}
	return nil
}
