package lasagna

import (
	"fmt"
	"slices"
)

// MatchList is the ordered navigation stack, from the root match to the
// currently active one. It is owned by a single Controller; everything else
// sees cloned or read-only views.
//
// A list is never empty except transiently while it is being replaced.
type MatchList struct {
	matches []*Match
}

// NewMatchList creates a match list holding the given entries in
// root-to-leaf order.
func NewMatchList(matches ...*Match) *MatchList {
	l := &MatchList{matches: make([]*Match, 0, len(matches))}
	for _, m := range matches {
		l.Push(m)
	}
	return l
}

// Push appends an entry to the top of the stack. Entries must carry page
// keys that are unique within the list; pushing a duplicate key is a
// programming error.
func (l *MatchList) Push(m *Match) {
	if m.PageKey != "" {
		for _, existing := range l.matches {
			if existing.PageKey == m.PageKey {
				panic(fmt.Sprintf("lasagna: page key %q already on the stack", m.PageKey))
			}
		}
	}
	l.matches = append(l.matches, m)
}

// Pop removes and returns the topmost entry. Popping a list that cannot pop
// (one entry or fewer) is a programming error and fails fast before any
// mutation.
func (l *MatchList) Pop() *Match {
	if !l.CanPop() {
		panic("lasagna: pop on a match list with one entry or fewer")
	}
	return l.removeLast()
}

// removeLast takes the topmost entry off without the single-entry guard.
// Replace relies on this: the list is transiently empty between the removal
// and the push that immediately follows.
func (l *MatchList) removeLast() *Match {
	last := l.matches[len(l.matches)-1]
	l.matches[len(l.matches)-1] = nil
	l.matches = l.matches[:len(l.matches)-1]
	return last
}

// CanPop reports whether the stack holds more than one entry.
func (l *MatchList) CanPop() bool {
	return len(l.matches) > 1
}

// Last returns the topmost (currently active) entry, or nil when empty.
func (l *MatchList) Last() *Match {
	if len(l.matches) == 0 {
		return nil
	}
	return l.matches[len(l.matches)-1]
}

// First returns the root entry, or nil when empty.
func (l *MatchList) First() *Match {
	if len(l.matches) == 0 {
		return nil
	}
	return l.matches[0]
}

// At returns the entry at position i, counted from the root.
func (l *MatchList) At(i int) *Match {
	return l.matches[i]
}

// Len returns the number of entries.
func (l *MatchList) Len() int {
	return len(l.matches)
}

// IsEmpty reports whether the list has no entries.
func (l *MatchList) IsEmpty() bool {
	return len(l.matches) == 0
}

// IsNotEmpty reports whether the list has at least one entry.
func (l *MatchList) IsNotEmpty() bool {
	return len(l.matches) > 0
}

// Slice returns the entries in root-to-leaf order. The slice is a copy;
// the entries are shared.
func (l *MatchList) Slice() []*Match {
	return slices.Clone(l.matches)
}

// Clone returns a list with the same entries. Mutating the clone leaves the
// original untouched.
func (l *MatchList) Clone() *MatchList {
	return &MatchList{matches: slices.Clone(l.matches)}
}

// FullPath returns the route-pattern path of the topmost entry, or "" when
// the list is empty.
func (l *MatchList) FullPath() string {
	if last := l.Last(); last != nil {
		return last.FullPath
	}
	return ""
}

// URI returns the concrete location of the topmost entry, or "" when the
// list is empty.
func (l *MatchList) URI() string {
	if last := l.Last(); last != nil {
		return last.FullURI
	}
	return ""
}

// PathKey derives the route-path key for the current stack shape: the
// concatenation, in stack order, of every entry's FullURI. Two stacks that
// share a top entry but differ in ancestry produce different keys.
func (l *MatchList) PathKey() string {
	var key string
	for _, m := range l.matches {
		key += m.FullURI
	}
	return key
}
