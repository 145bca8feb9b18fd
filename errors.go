package gizmo

import "errors"

var (
	// ErrInvalidViewport is returned when a pointer event carries a viewport
	// with zero or negative area.
	ErrInvalidViewport = errors.New("gizmo: viewport width and height must be positive")

	// ErrNoCamera is returned when a pointer event has no camera.
	ErrNoCamera = errors.New("gizmo: pointer event has no camera")

	// ErrDegenerateConstraint marks a frame where the pointer ray cannot be
	// projected onto the drag constraint. It never leaves the package.
	ErrDegenerateConstraint = errors.New("gizmo: degenerate constraint")
)
