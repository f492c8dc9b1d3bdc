package control

import (
	"fmt"
	"math/bits"
)

// EventType identifies a semantic control event. Values are disjoint bits
// so several can be combined when subscribing.
type EventType uint8

const (
	// EventPress: the pointer went down inside the bounds.
	EventPress EventType = 1 << iota
	// EventRelease: the pointer came up while the control was Active,
	// wherever it came up.
	EventRelease
	// EventClick: a release inside the bounds following a press inside the bounds.
	EventClick
	// EventValueChanged is emitted by value controls when a new value is committed.
	EventValueChanged
	// EventTextChanged is emitted by text input controls after any edit.
	EventTextChanged

	// EventAll subscribes to every event type.
	EventAll = EventPress | EventRelease | EventClick | EventValueChanged | EventTextChanged
)

const eventTypeCount = 5

var eventNames = [eventTypeCount]string{"PRESS", "RELEASE", "CLICK", "VALUE_CHANGED", "TEXT_CHANGED"}

func (e EventType) String() string {
	if i, ok := e.index(); ok {
		return eventNames[i]
	}
	return fmt.Sprintf("EventType(%#x)", uint8(e))
}

// index returns the slot of a single-bit event type.
func (e EventType) index() (int, bool) {
	if bits.OnesCount8(uint8(e)) != 1 {
		return 0, false
	}
	i := bits.TrailingZeros8(uint8(e))
	return i, i < eventTypeCount
}

// Listener receives semantic events from controls it subscribed to.
type Listener interface {
	ControlEvent(c *Control, evt EventType)
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(c *Control, evt EventType)

// ControlEvent calls f(c, evt).
func (f ListenerFunc) ControlEvent(c *Control, evt EventType) {
	f(c, evt)
}

// ListenerID identifies one AddListener subscription.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	l  Listener
}

// listenerBus stores subscriptions in a flat array indexed by event type.
// Slots stay nil until something subscribes.
type listenerBus struct {
	byType [eventTypeCount][]listenerEntry
	nextID ListenerID
}

func (b *listenerBus) add(l Listener, events EventType) ListenerID {
	b.nextID++
	id := b.nextID
	for i := range eventTypeCount {
		if events&(1<<i) != 0 {
			b.byType[i] = append(b.byType[i], listenerEntry{id: id, l: l})
		}
	}
	return id
}

func (b *listenerBus) remove(id ListenerID) bool {
	found := false
	for i, list := range b.byType {
		for j, e := range list {
			if e.id == id {
				b.byType[i] = append(list[:j:j], list[j+1:]...)
				found = true
				break
			}
		}
	}
	return found
}

func (b *listenerBus) count(evt EventType) int {
	i, ok := evt.index()
	if !ok {
		return 0
	}
	return len(b.byType[i])
}

// AddListener subscribes l to every event type whose bit is set in events
// and returns a handle for RemoveListener. Registration order is the
// delivery order. The control does not own the listener.
func (c *Control) AddListener(l Listener, events EventType) ListenerID {
	return c.listeners.add(l, events&EventAll)
}

// RemoveListener unsubscribes the listener registered under id from all
// event types. It reports whether anything was removed.
func (c *Control) RemoveListener(id ListenerID) bool {
	return c.listeners.remove(id)
}

// ListenerCount returns the number of subscriptions for one event type.
func (c *Control) ListenerCount(evt EventType) int {
	return c.listeners.count(evt)
}

// NotifyListeners delivers evt, which must be a single event type, to the
// listeners registered for it in registration order. The list is copied
// first: listeners added during dispatch do not see the current event and
// listeners removed during dispatch are still called for it.
func (c *Control) NotifyListeners(evt EventType) {
	i, ok := evt.index()
	if !ok {
		return
	}
	list := c.listeners.byType[i]
	if len(list) == 0 {
		return
	}

	snapshot := acquireSnapshot(len(list))
	copy(snapshot, list)
	for _, e := range snapshot {
		e.l.ControlEvent(c, evt)
	}
	releaseSnapshot(snapshot)
}
