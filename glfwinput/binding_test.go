package glfwinput

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/scene"
)

type frame struct {
	x, y    float64
	pressed []Key
}

// harness replays frames the way Poll would produce them.
type harness struct {
	t     *testing.T
	state State
	ctrl  *Controller
}

func newHarness(t *testing.T) (*harness, *scene.Node) {
	t.Helper()
	g, err := gizmo.New(gizmo.DefaultConfig())
	require.NoError(t, err)
	target := scene.NewNode("box")
	g.Attach(target)

	cam := scene.NewOrthographicCamera(600, 1, 5000)
	cam.Position = mgl32.Vec3{0, 0, 1000}

	h := &harness{t: t, ctrl: NewController(g, func() gizmo.Camera { return cam })}
	h.state.WindowWidth, h.state.WindowHeight = 800, 600
	return h, target
}

func (h *harness) step(f frame) bool {
	h.t.Helper()
	down := map[Key]bool{}
	for _, k := range f.pressed {
		down[k] = true
	}
	for k := Key(0); k < numKeys; k++ {
		h.state.set(k, down[k])
	}
	h.state.setMouse(f.x, f.y)
	consumed, err := h.ctrl.Frame(&h.state)
	require.NoError(h.t, err)
	return consumed
}

func TestStateEdges(t *testing.T) {
	var s State
	s.set(KeyW, true)
	assert.True(t, s.JustPressed[KeyW])
	s.set(KeyW, true)
	assert.False(t, s.JustPressed[KeyW])
	assert.True(t, s.Pressed[KeyW])
	s.set(KeyW, false)
	assert.True(t, s.JustReleased[KeyW])
	assert.False(t, s.Pressed[KeyW])
}

func TestControllerDrag(t *testing.T) {
	h, target := newHarness(t)

	var navigated int
	h.ctrl.Fallthrough = func(*State) { navigated++ }

	// Pixel (470, 300) is world (70, 0) for this camera.
	assert.False(t, h.step(frame{x: 470, y: 300}))
	assert.Equal(t, 1, navigated)
	assert.True(t, h.ctrl.Gizmo.Handle(gizmo.HandleX).Highlighted)

	assert.True(t, h.step(frame{x: 470, y: 300, pressed: []Key{MouseButtonLeft}}))
	assert.True(t, h.step(frame{x: 520, y: 310, pressed: []Key{MouseButtonLeft}}))
	assert.True(t, h.step(frame{x: 520, y: 310}))
	assert.Equal(t, 1, navigated, "navigation is suppressed while dragging")

	assert.False(t, h.ctrl.Gizmo.Dragging())
	assert.InDelta(t, 50, target.WorldTransform().Position.X(), 1e-2)
	assert.InDelta(t, 0, target.WorldTransform().Position.Y(), 1e-4)
}

func TestControllerMissFallsThrough(t *testing.T) {
	h, _ := newHarness(t)
	var navigated int
	h.ctrl.Fallthrough = func(*State) { navigated++ }

	assert.False(t, h.step(frame{x: 50, y: 50, pressed: []Key{MouseButtonLeft}}))
	assert.False(t, h.ctrl.Gizmo.Dragging())
	assert.Equal(t, 1, navigated)
}

func TestControllerKeys(t *testing.T) {
	h, target := newHarness(t)
	g := h.ctrl.Gizmo

	h.step(frame{pressed: []Key{KeyE}})
	assert.Equal(t, gizmo.ModeRotate, g.Mode())
	h.step(frame{})
	h.step(frame{pressed: []Key{KeyR}})
	assert.Equal(t, gizmo.ModeScale, g.Mode())
	h.step(frame{pressed: []Key{KeyQ}})
	assert.Equal(t, gizmo.SpaceLocal, g.Space())
	h.step(frame{pressed: []Key{KeyQ}})
	assert.Equal(t, gizmo.SpaceLocal, g.Space(), "holding Q does not toggle again")
	h.step(frame{})
	h.step(frame{pressed: []Key{KeyQ}})
	assert.Equal(t, gizmo.SpaceWorld, g.Space())
	h.step(frame{pressed: []Key{KeyW}})
	assert.Equal(t, gizmo.ModeTranslate, g.Mode())

	// Escape aborts a running drag.
	h.step(frame{x: 470, y: 300, pressed: []Key{MouseButtonLeft}})
	require.True(t, g.Dragging())
	h.step(frame{x: 490, y: 300, pressed: []Key{MouseButtonLeft, KeyEscape}})
	assert.False(t, g.Dragging())
	assert.InDelta(t, 0, target.WorldTransform().Position.X(), 1e-2)
}

func TestControllerLeaveEndsDrag(t *testing.T) {
	h, _ := newHarness(t)
	g := h.ctrl.Gizmo

	h.step(frame{x: 470, y: 300, pressed: []Key{MouseButtonLeft}})
	require.True(t, g.Dragging())

	assert.True(t, h.step(frame{x: 900, y: 300, pressed: []Key{MouseButtonLeft}}))
	assert.False(t, g.Dragging())
}
