package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key is a binding slot tracked by State.
type Key int

const (
	KeyW Key = iota
	KeyE
	KeyR
	KeyQ
	KeyEscape
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	numKeys
)

var keyToGlfw = map[Key]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyE:      glfw.KeyE,
	KeyR:      glfw.KeyR,
	KeyQ:      glfw.KeyQ,
	KeyEscape: glfw.KeyEscape,
}

var buttonToGlfw = map[Key]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}

// State is the per-frame input snapshot of one window.
type State struct {
	Pressed      [numKeys]bool
	JustPressed  [numKeys]bool
	JustReleased [numKeys]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseInside              bool

	WindowWidth, WindowHeight int
}

// set records the key level for this frame and derives the edge flags.
func (s *State) set(k Key, down bool) {
	s.JustPressed[k] = false
	s.JustReleased[k] = false
	if down {
		if !s.Pressed[k] {
			s.JustPressed[k] = true
		}
		s.Pressed[k] = true
	} else {
		if s.Pressed[k] {
			s.JustReleased[k] = true
		}
		s.Pressed[k] = false
	}
}

func (s *State) setMouse(x, y float64) {
	s.MouseDeltaX = x - s.MouseX
	s.MouseDeltaY = y - s.MouseY
	s.MouseX = x
	s.MouseY = y
	s.MouseInside = x >= 0 && y >= 0 && x <= float64(s.WindowWidth) && y <= float64(s.WindowHeight)
}

// Poll processes pending window events and refreshes s from win.
func (s *State) Poll(win *glfw.Window) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		s.set(key, win.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range buttonToGlfw {
		s.set(btn, win.GetMouseButton(glfwBtn) == glfw.Press)
	}

	s.WindowWidth, s.WindowHeight = win.GetSize()
	s.setMouse(win.GetCursorPos())
}
