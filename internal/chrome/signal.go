package chrome

// Subscription represents a registered listener. Callers must invoke
// Unsubscribe to stop receiving values; calling it more than once is safe.
type Subscription interface {
	Unsubscribe()
}

// Bus is a single-threaded publish/subscribe channel for one kind of value.
// Publish delivers synchronously to every listener in subscription order.
// It is meant to be driven from one event loop and is not safe for
// concurrent use.
type Bus[T any] struct {
	nextID    int
	listeners []busListener[T]
}

type busListener[T any] struct {
	id int
	fn func(T)
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers fn and returns the handle that releases it.
func (b *Bus[T]) Subscribe(fn func(T)) Subscription {
	b.nextID++
	b.listeners = append(b.listeners, busListener[T]{id: b.nextID, fn: fn})
	return &busSubscription[T]{bus: b, id: b.nextID}
}

// Publish delivers v to the current listeners.
func (b *Bus[T]) Publish(v T) {
	// Snapshot so listeners may unsubscribe while being notified.
	listeners := append([]busListener[T](nil), b.listeners...)
	for _, l := range listeners {
		l.fn(v)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus[T]) Len() int {
	return len(b.listeners)
}

func (b *Bus[T]) remove(id int) {
	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

type busSubscription[T any] struct {
	bus *Bus[T]
	id  int
}

func (s *busSubscription[T]) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

// ScrollSource publishes raw viewport scroll offsets.
type ScrollSource interface {
	Subscribe(fn func(offset int)) Subscription
}

// RouteSource publishes the active navigation path.
type RouteSource interface {
	Subscribe(fn func(path string)) Subscription
}

var (
	_ ScrollSource = (*Bus[int])(nil)
	_ RouteSource  = (*Bus[string])(nil)
)
