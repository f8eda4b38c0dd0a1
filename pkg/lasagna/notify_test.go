package lasagna

import "testing"

func TestNotifier_ObserversRunInSubscriptionOrder(t *testing.T) {
	n := newNotifier()

	var calls []string
	n.subscribe(func() { calls = append(calls, "first") })
	n.subscribe(func() { calls = append(calls, "second") })

	n.notify()

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("notify() ran observers as %v, want [first second]", calls)
	}
}

func TestNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	n := newNotifier()

	count := 0
	stop := n.subscribe(func() { count++ })

	n.notify()
	stop()
	n.notify()

	if count != 1 {
		t.Errorf("observer ran %d times, want 1", count)
	}
}

func TestNotifier_UnsubscribeTwiceIsSafe(t *testing.T) {
	n := newNotifier()

	stop := n.subscribe(func() {})
	stop()
	stop()

	n.notify()
}

func TestNotifier_ClearDropsAllObservers(t *testing.T) {
	n := newNotifier()

	count := 0
	n.subscribe(func() { count++ })
	n.subscribe(func() { count++ })

	n.clear()
	n.notify()

	if count != 0 {
		t.Errorf("observers ran %d times after clear, want 0", count)
	}
}
