package lasagna

import "fmt"

// PageKey is the stable identity of one stack entry. Rendering layers key
// surfaces by it, so equal keys mean "same page instance" across rebuilds
// and distinct keys force a fresh instance.
type PageKey string

// pageKeys assigns page keys for imperative pushes. Each full path gets a
// monotonically increasing counter; counters survive pops so a key is never
// handed out twice, even for a push/pop/push sequence of the same path.
type pageKeys struct {
	counts map[string]int
}

func newPageKeys() pageKeys {
	return pageKeys{counts: make(map[string]int)}
}

// next returns the key for the n-th push of fullPath: "{fullPath}-p{n}",
// starting at 1.
func (k *pageKeys) next(fullPath string) PageKey {
	k.counts[fullPath]++
	return PageKey(fmt.Sprintf("%s-p%d", fullPath, k.counts[fullPath]))
}
