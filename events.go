package gizmo

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/scene"
)

type EventType int

const (
	EventDraggingStarted EventType = iota
	EventChanged
	EventDraggingStopped
)

func (e EventType) String() string {
	switch e {
	case EventDraggingStarted:
		return "dragging-started"
	case EventChanged:
		return "changed"
	case EventDraggingStopped:
		return "dragging-stopped"
	}
	return fmt.Sprintf("EventType(%d)", int(e))
}

// Event is delivered synchronously to listeners, in registration order,
// before the pointer call that caused it returns.
type Event struct {
	Type    EventType
	Session uuid.UUID
	Handle  HandleID
	Mode    Mode
	Target  Target
	// Transform is the target's world transform after the event.
	Transform scene.Transform
	// Aborted is set on EventDraggingStopped when the drag ended through
	// Cancel, Detach or a re-Attach rather than a pointer release.
	Aborted bool
}

type Listener func(Event)

type ListenerID uuid.UUID

type listenerEntry struct {
	id  ListenerID
	typ EventType
	fn  Listener
}

type dispatcher struct {
	entries []listenerEntry
}

func (d *dispatcher) add(typ EventType, fn Listener) ListenerID {
	id := ListenerID(uuid.New())
	d.entries = append(d.entries, listenerEntry{id: id, typ: typ, fn: fn})
	return id
}

func (d *dispatcher) remove(id ListenerID) bool {
	idx := slices.IndexFunc(d.entries, func(e listenerEntry) bool { return e.id == id })
	if idx < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, idx, idx+1)
	return true
}

func (d *dispatcher) emit(ev Event) {
	// Listeners may add or remove listeners while being called.
	for _, e := range slices.Clone(d.entries) {
		if e.typ == ev.Type {
			e.fn(ev)
		}
	}
}

// AddListener registers fn for events of type typ.
func (g *Gizmo) AddListener(typ EventType, fn Listener) ListenerID {
	return g.listeners.add(typ, fn)
}

// RemoveListener unregisters a listener. It reports whether id was found.
func (g *Gizmo) RemoveListener(id ListenerID) bool {
	return g.listeners.remove(id)
}

func (g *Gizmo) OnDraggingStarted(fn Listener) ListenerID {
	return g.AddListener(EventDraggingStarted, fn)
}

func (g *Gizmo) OnChanged(fn Listener) ListenerID {
	return g.AddListener(EventChanged, fn)
}

func (g *Gizmo) OnDraggingStopped(fn Listener) ListenerID {
	return g.AddListener(EventDraggingStopped, fn)
}
