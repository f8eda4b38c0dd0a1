package lasagna

import (
	"errors"
	"testing"
)

func TestJoinPaths(t *testing.T) {
	tests := []struct {
		parent string
		child  string
		want   string
	}{
		{"/", "games", "/games"},
		{"/games", "detail", "/games/detail"},
		{"/games/", "detail", "/games/detail"},
		{"/games", "/detail", "/games/detail"},
		{"/games/", "/detail", "/games/detail"},
		{"", "/games", "/games"},
		{"/games", "", "/games"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := JoinPaths(tt.parent, tt.child); got != tt.want {
			t.Errorf("JoinPaths(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestCanonicalURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/games/", "/games"},
		{"/games", "/games"},
		{"/", "/"},
		{"/games/?sort=name", "/games?sort=name"},
		{"/games?sort=name", "/games?sort=name"},
		{"/?q=1", "/?q=1"},
	}

	for _, tt := range tests {
		if got := CanonicalURI(tt.uri); got != tt.want {
			t.Errorf("CanonicalURI(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestNameIndex_FullPathsThroughShells(t *testing.T) {
	routes := []Route{
		&LeafRoute{Path: "/", Name: "home"},
		&ShellRoute{
			Scope: "tabs",
			Routes: []Route{
				&LeafRoute{
					Path: "/library",
					Name: "library",
					Routes: []Route{
						&LeafRoute{Path: "detail", Name: "library-detail"},
					},
				},
			},
		},
	}

	index, err := NameIndex(routes)
	if err != nil {
		t.Fatalf("NameIndex() error = %v", err)
	}

	want := map[string]string{
		"home":           "/",
		"library":        "/library",
		"library-detail": "/library/detail",
	}
	for name, path := range want {
		if got := index[name]; got != path {
			t.Errorf("index[%q] = %q, want %q", name, got, path)
		}
	}
	if len(index) != len(want) {
		t.Errorf("index has %d entries, want %d", len(index), len(want))
	}
}

func TestNameIndex_UnnamedRoutesSkipped(t *testing.T) {
	index, err := NameIndex([]Route{&LeafRoute{Path: "/a"}})
	if err != nil {
		t.Fatalf("NameIndex() error = %v", err)
	}
	if len(index) != 0 {
		t.Errorf("index has %d entries, want 0", len(index))
	}
}

func TestNameIndex_DuplicateNameRejected(t *testing.T) {
	routes := []Route{
		&LeafRoute{Path: "/a", Name: "dup"},
		&LeafRoute{Path: "/b", Name: "dup"},
	}

	_, err := NameIndex(routes)
	if !errors.Is(err, ErrDuplicateRouteName) {
		t.Errorf("NameIndex() error = %v, want ErrDuplicateRouteName", err)
	}
}
