package picking

import (
	"room-planner/internal/geom"
)

// Kind is the type of pointer event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	// PointerLeave is sent when the pointer leaves the viewport or the window loses focus.
	PointerLeave
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return "unknown"
}

// Event is one pointer event in screen pixels, with the viewport rectangle it was measured against.
type Event struct {
	Kind     Kind
	X, Y     float32
	Viewport geom.Rect
}

// Handler consumes pointer events in arrival order.
type Handler func(Event)

// Subscription is a live registration on a Source. Close stops delivery; it is safe to call twice.
type Subscription interface {
	Close()
}

// Source delivers pointer events to subscribers.
type Source interface {
	Subscribe(h Handler) Subscription
}

type subscriber struct {
	id uint32
	fn Handler
}

// Dispatcher is a Source that forwards every dispatched event to its subscribers, in the order
// they subscribed. It is not safe for concurrent use; events are expected on one thread.
type Dispatcher struct {
	subs   []subscriber
	nextID uint32
}

// Subscribe registers h and returns a handle that removes it.
func (d *Dispatcher) Subscribe(h Handler) Subscription {
	d.nextID++
	d.subs = append(d.subs, subscriber{id: d.nextID, fn: h})
	return &handle{id: d.nextID, d: d}
}

// Dispatch delivers ev to every current subscriber.
func (d *Dispatcher) Dispatch(ev Event) {
	// A handler may close its own subscription; iterate over a snapshot.
	subs := d.subs
	for _, s := range subs {
		s.fn(ev)
	}
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	return len(d.subs)
}

func (d *Dispatcher) remove(id uint32) {
	for i := range d.subs {
		if d.subs[i].id == id {
			d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			return
		}
	}
}

type handle struct {
	id uint32
	d  *Dispatcher
}

func (h *handle) Close() {
	if h.d == nil {
		return
	}
	h.d.remove(h.id)
	h.d = nil
}
