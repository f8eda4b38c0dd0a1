package lasagna

import "sync"

// notifier is a minimal observer list: subscribe, unsubscribe, broadcast.
// Callbacks run outside the lock in subscription order.
type notifier struct {
	mu        sync.Mutex
	nextID    int
	order     []int
	observers map[int]func()
}

func newNotifier() *notifier {
	return &notifier{observers: make(map[int]func())}
}

func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.order = append(n.order, id)
	n.observers[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.observers, id)
		n.mu.Unlock()
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.observers))
	for _, id := range n.order {
		if fn, ok := n.observers[id]; ok {
			fns = append(fns, fn)
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (n *notifier) clear() {
	n.mu.Lock()
	n.order = nil
	n.observers = make(map[int]func())
	n.mu.Unlock()
}
