// Package glfwinput drives a gizmo from GLFW window input.
//
// Left mouse button drags handles, W/E/R select translate, rotate and scale,
// Q toggles world and local space and Escape cancels a running drag.
package glfwinput

import (
	"github.com/gekko3d/gizmo"
)

type Controller struct {
	Gizmo *gizmo.Gizmo
	// Camera returns the camera the window currently renders with.
	Camera func() gizmo.Camera
	Logger gizmo.Logger

	// Fallthrough receives every frame the gizmo did not consume, so that
	// camera navigation only runs while no handle is grabbed.
	Fallthrough func(s *State)

	wasInside bool
}

func NewController(g *gizmo.Gizmo, camera func() gizmo.Camera) *Controller {
	return &Controller{
		Gizmo:  g,
		Camera: camera,
		Logger: gizmo.NewNopLogger(),
	}
}

func (c *Controller) event(s *State) gizmo.PointerEvent {
	return gizmo.PointerEvent{
		X:      float32(s.MouseX),
		Y:      float32(s.MouseY),
		Camera: c.Camera(),
		Viewport: gizmo.Viewport{
			Width:  float32(s.WindowWidth),
			Height: float32(s.WindowHeight),
		},
	}
}

// Frame feeds one polled input state to the gizmo. It reports whether the
// gizmo consumed the pointer this frame.
func (c *Controller) Frame(s *State) (bool, error) {
	c.keys(s)

	consumed, err := c.pointer(s)
	c.wasInside = s.MouseInside
	if err != nil {
		return consumed, err
	}
	if !consumed && c.Fallthrough != nil {
		c.Fallthrough(s)
	}
	return consumed, nil
}

func (c *Controller) keys(s *State) {
	g := c.Gizmo
	switch {
	case s.JustPressed[KeyW]:
		g.SetMode(gizmo.ModeTranslate)
	case s.JustPressed[KeyE]:
		g.SetMode(gizmo.ModeRotate)
	case s.JustPressed[KeyR]:
		g.SetMode(gizmo.ModeScale)
	}
	if s.JustPressed[KeyQ] {
		if g.Space() == gizmo.SpaceWorld {
			g.SetSpace(gizmo.SpaceLocal)
		} else {
			g.SetSpace(gizmo.SpaceWorld)
		}
	}
	if s.JustPressed[KeyEscape] && g.Cancel() {
		c.Logger.Debugf("drag cancelled from keyboard")
	}
}

func (c *Controller) pointer(s *State) (bool, error) {
	g := c.Gizmo

	if c.wasInside && !s.MouseInside {
		return g.PointerLeave(), nil
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		// Minimized.
		return g.Dragging(), nil
	}

	ev := c.event(s)
	switch {
	case s.JustPressed[MouseButtonLeft]:
		return g.PointerDown(ev)
	case s.JustReleased[MouseButtonLeft]:
		return g.PointerUp(), nil
	case g.Dragging():
		if s.MouseDeltaX == 0 && s.MouseDeltaY == 0 {
			return true, nil
		}
		return g.PointerMove(ev)
	case s.MouseInside:
		_, err := g.Hover(ev)
		return false, err
	}
	return false, nil
}
