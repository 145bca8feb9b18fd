// Package gizmo turns pointer input into translate, rotate and scale edits
// of a scene node through axis, plane, ring and center handles.
//
// A Gizmo is driven from a single goroutine: every pointer call is processed
// to completion, including listener notification, before it returns.
package gizmo

import (
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/scene"
)

// Target is a scene node the gizmo manipulates. SetWorldTransform is expected
// to convert the world transform into the node's parent space.
type Target interface {
	WorldTransform() scene.Transform
	SetWorldTransform(scene.Transform)
}

type Option func(*Gizmo)

func WithLogger(l Logger) Option {
	return func(g *Gizmo) {
		if l != nil {
			g.logger = l
		}
	}
}

type Gizmo struct {
	cfg    Config
	logger Logger

	root    *scene.Node
	handles []*Handle

	mode  Mode
	space Space

	// Mode and space changes requested while dragging.
	pendingMode  *Mode
	pendingSpace *Space

	target  Target
	session *dragSession

	listeners dispatcher
}

func New(cfg Config, opts ...Option) (*Gizmo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	g := &Gizmo{
		cfg:    cfg,
		logger: NewNopLogger(),
		root:   scene.NewNode("gizmo"),
		mode:   cfg.Mode,
		space:  cfg.Space,
	}
	for _, opt := range opts {
		opt(g)
	}
	if cfg.Debug {
		if _, silent := g.logger.(nopLogger); silent {
			g.logger = NewDefaultLogger("gizmo", true)
		}
		g.logger.SetDebug(true)
	}

	g.handles = newHandles(g.root, cfg.Handles)
	g.root.Local.Scale = mgl32.Vec3{cfg.Size, cfg.Size, cfg.Size}
	g.root.Visible = false
	g.refreshVisibility()
	return g, nil
}

// Node returns the gizmo root node. Hosts add it to their scene to render
// the handles; it follows the attached target.
func (g *Gizmo) Node() *scene.Node {
	return g.root
}

func (g *Gizmo) Config() Config {
	return g.cfg
}

func (g *Gizmo) Target() Target {
	return g.target
}

func (g *Gizmo) Dragging() bool {
	return g.session != nil
}

// ActiveHandle is the handle being dragged, or HandleNone.
func (g *Gizmo) ActiveHandle() HandleID {
	if g.session == nil {
		return HandleNone
	}
	return g.session.handle.ID
}

func (g *Gizmo) Handles() []*Handle {
	return g.handles
}

func (g *Gizmo) Handle(id HandleID) *Handle {
	for _, h := range g.handles {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// SetHandleEnabled excludes or re-includes a handle from picking. A drag
// already running on the handle is not affected.
func (g *Gizmo) SetHandleEnabled(id HandleID, enabled bool) bool {
	h := g.Handle(id)
	if h == nil {
		return false
	}
	h.Enabled = enabled
	if !enabled {
		h.Highlighted = h.Highlighted && g.ActiveHandle() == id
	}
	g.refreshVisibility()
	return true
}

// Attach makes t the target. A running drag on the previous target is
// aborted without restoring its transform. Attaching nil, including a nil
// pointer of a concrete target type, detaches.
func (g *Gizmo) Attach(t Target) *Gizmo {
	if isNilTarget(t) {
		return g.Detach()
	}
	g.endDrag(true)
	g.target = t
	g.root.Visible = true
	g.sync()
	return g
}

func isNilTarget(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Detach clears the target, aborting any running drag.
func (g *Gizmo) Detach() *Gizmo {
	g.endDrag(true)
	g.target = nil
	g.root.Visible = false
	g.highlight(HandleNone)
	return g
}

func (g *Gizmo) Mode() Mode {
	return g.mode
}

// SetMode switches the interaction mode. While dragging the change is
// deferred until the drag ends.
func (g *Gizmo) SetMode(m Mode) {
	if !m.Valid() {
		g.logger.Warnf("ignoring invalid mode %s", m)
		return
	}
	if g.session != nil {
		g.pendingMode = &m
		g.logger.Debugf("mode %s deferred until drag %s ends", m, g.session.id)
		return
	}
	g.pendingMode = nil
	g.mode = m
	g.highlight(HandleNone)
	g.refreshVisibility()
	g.sync()
}

func (g *Gizmo) Space() Space {
	return g.space
}

// SetSpace switches between world and local handle alignment, deferred while
// dragging like SetMode.
func (g *Gizmo) SetSpace(s Space) {
	if !s.Valid() {
		g.logger.Warnf("ignoring invalid space %s", s)
		return
	}
	if g.session != nil {
		g.pendingSpace = &s
		return
	}
	g.pendingSpace = nil
	g.space = s
	g.sync()
}

func (g *Gizmo) applyPending() {
	if g.pendingMode != nil {
		m := *g.pendingMode
		g.pendingMode = nil
		g.SetMode(m)
	}
	if g.pendingSpace != nil {
		s := *g.pendingSpace
		g.pendingSpace = nil
		g.SetSpace(s)
	}
}

// Hover highlights the handle under the pointer while idle and returns it.
// During a drag the active handle stays highlighted.
func (g *Gizmo) Hover(ev PointerEvent) (HandleID, error) {
	if g.session != nil {
		return g.session.handle.ID, nil
	}
	res, ok, err := g.Pick(ev)
	if err != nil {
		return HandleNone, err
	}
	if !ok {
		g.highlight(HandleNone)
		return HandleNone, nil
	}
	g.highlight(res.Handle.ID)
	return res.Handle.ID, nil
}

func (g *Gizmo) highlight(id HandleID) {
	for _, h := range g.handles {
		h.Highlighted = id != HandleNone && h.ID == id
	}
}

func (g *Gizmo) refreshVisibility() {
	for _, h := range g.handles {
		h.Node.Visible = h.Enabled && h.Group.activeIn(g.mode)
	}
}

// frameRotation is the orientation of the handle frame. Scale always works
// on the target's own axes.
func (g *Gizmo) frameRotation(tw scene.Transform) mgl32.Quat {
	if g.space == SpaceLocal || g.mode == ModeScale {
		return tw.Rotation.Normalize()
	}
	return mgl32.QuatIdent()
}

// sync moves the gizmo root onto the target.
func (g *Gizmo) sync() {
	if g.target == nil {
		return
	}
	tw := g.target.WorldTransform()
	g.root.SetWorldTransform(scene.Transform{
		Position: tw.Position,
		Rotation: g.frameRotation(tw),
		Scale:    mgl32.Vec3{g.cfg.Size, g.cfg.Size, g.cfg.Size},
	})
}
