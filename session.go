package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/scene"
)

// dragSession lives from a pointer-down on a handle until the drag ends.
type dragSession struct {
	id         uuid.UUID
	handle     *Handle
	mode       Mode
	constraint constraint

	// start is the target's world transform when the drag began.
	start scene.Transform
	// startPoint is where the pointer ray met the constraint at drag start.
	startPoint mgl32.Vec3
}

// constraintFor builds the world-space constraint of h for a target at world
// transform tw.
func (g *Gizmo) constraintFor(h *Handle, tw scene.Transform, cam Camera) constraint {
	frame := g.frameRotation(tw)
	c := constraint{kind: h.Kind, origin: tw.Position}

	switch h.Kind {
	case ConstraintAxis:
		c.dir = frame.Rotate(h.Axis).Normalize()
	case ConstraintPlane:
		c.dir = frame.Rotate(h.Axis).Normalize()
		c.plane = [2]mgl32.Vec3{
			frame.Rotate(h.Plane[0]),
			frame.Rotate(h.Plane[1]),
		}
	case ConstraintFree:
		c.dir = cam.Forward().Mul(-1).Normalize()
		c.plane = viewPlaneBasis(c.dir)
	}
	return c
}

// PointerDown starts a drag when the pointer is over a handle and a target is
// attached. It reports whether the event was consumed; unconsumed events
// should be forwarded to other input handlers such as camera navigation.
func (g *Gizmo) PointerDown(ev PointerEvent) (bool, error) {
	ray, err := ev.Ray()
	if err != nil {
		return false, err
	}
	if g.target == nil {
		return false, nil
	}
	if g.session != nil {
		// A second button while dragging belongs to the running gesture.
		return true, nil
	}

	g.sync()
	pick, ok := g.pickRay(ray, ev.Camera)
	if !ok {
		return false, nil
	}

	start := g.target.WorldTransform()
	c := g.constraintFor(pick.Handle, start, ev.Camera)
	p0, err := c.intersect(ray, g.cfg.ParallelLimit)
	if err != nil {
		g.logger.Debugf("handle %s hit but constraint is degenerate for this view", pick.Handle.ID)
		return false, nil
	}

	g.session = &dragSession{
		id:         uuid.New(),
		handle:     pick.Handle,
		mode:       g.mode,
		constraint: c,
		start:      start,
		startPoint: p0,
	}
	g.highlight(pick.Handle.ID)
	g.logger.Debugf("drag %s started on %s (%s)", g.session.id, pick.Handle.ID, g.mode)

	g.emit(EventDraggingStarted, false)
	return true, nil
}

// PointerMove advances the active drag. Frames where the ray cannot be
// projected onto the constraint leave the target untouched and emit nothing.
func (g *Gizmo) PointerMove(ev PointerEvent) (bool, error) {
	ray, err := ev.Ray()
	if err != nil {
		return false, err
	}
	if g.session == nil {
		return false, nil
	}

	next, err := g.session.solve(ray, g.cfg)
	if err != nil {
		g.logger.Debugf("drag %s: skipping frame: %v", g.session.id, err)
		return true, nil
	}

	g.target.SetWorldTransform(next)
	g.sync()
	g.emit(EventChanged, false)
	return true, nil
}

// PointerUp ends the active drag. It reports whether a drag was active.
func (g *Gizmo) PointerUp() bool {
	return g.endDrag(false)
}

// PointerLeave ends the active drag when the pointer leaves the viewport.
func (g *Gizmo) PointerLeave() bool {
	return g.endDrag(false)
}

// Cancel aborts the active drag. The target keeps its current transform.
func (g *Gizmo) Cancel() bool {
	return g.endDrag(true)
}

func (g *Gizmo) endDrag(aborted bool) bool {
	if g.session == nil {
		return false
	}
	s := g.session
	g.emitSession(s, EventDraggingStopped, aborted, func() {
		g.session = nil
		g.highlight(HandleNone)
		g.applyPending()
	})
	g.logger.Debugf("drag %s stopped (aborted=%t)", s.id, aborted)
	return true
}

func (g *Gizmo) emit(typ EventType, aborted bool) {
	g.emitSession(g.session, typ, aborted, nil)
}

// emitSession builds the event from s, runs before (if any) and then
// notifies listeners, so that listeners observe the post-transition state.
func (g *Gizmo) emitSession(s *dragSession, typ EventType, aborted bool, before func()) {
	ev := Event{
		Type:    typ,
		Session: s.id,
		Handle:  s.handle.ID,
		Mode:    s.mode,
		Target:  g.target,
		Aborted: aborted,
	}
	if g.target != nil {
		ev.Transform = g.target.WorldTransform()
	}
	if before != nil {
		before()
	}
	g.listeners.emit(ev)
}
