package gizmo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/scene"
)

type HandleID int

const (
	HandleNone HandleID = iota
	HandleX
	HandleY
	HandleZ
	HandleXY
	HandleYZ
	HandleZX
	HandleRotateX
	HandleRotateY
	HandleRotateZ
	HandleCenter
)

var handleNames = [...]string{
	HandleNone:    "none",
	HandleX:       "X",
	HandleY:       "Y",
	HandleZ:       "Z",
	HandleXY:      "XY",
	HandleYZ:      "YZ",
	HandleZX:      "ZX",
	HandleRotateX: "RX",
	HandleRotateY: "RY",
	HandleRotateZ: "RZ",
	HandleCenter:  "center",
}

func (id HandleID) String() string {
	if id >= 0 && int(id) < len(handleNames) {
		return handleNames[id]
	}
	return fmt.Sprintf("HandleID(%d)", int(id))
}

// ConstraintKind is the geometry a drag on the handle is restricted to.
type ConstraintKind int

const (
	ConstraintAxis ConstraintKind = iota
	ConstraintPlane
	ConstraintFree // camera-facing plane through the gizmo center
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintAxis:
		return "axis"
	case ConstraintPlane:
		return "plane"
	case ConstraintFree:
		return "free"
	}
	return fmt.Sprintf("ConstraintKind(%d)", int(k))
}

// Group orders handles for pick tie-breaks; lower values win.
type Group int

const (
	GroupAxis Group = iota
	GroupPlane
	GroupRing
	GroupCenter
)

func (g Group) activeIn(m Mode) bool {
	switch g {
	case GroupAxis, GroupPlane:
		return m == ModeTranslate || m == ModeScale
	case GroupRing:
		return m == ModeRotate
	case GroupCenter:
		return true
	}
	return false
}

var (
	colorRed     = [4]float32{1, 0, 0, 1}
	colorGreen   = [4]float32{0, 1, 0, 1}
	colorBlue    = [4]float32{0, 0, 1, 1}
	colorYellow  = [4]float32{1, 1, 0, 0.5}
	colorCyan    = [4]float32{0, 1, 1, 0.5}
	colorMagenta = [4]float32{1, 0, 1, 0.5}
	colorCenter  = [4]float32{0.914, 0.118, 0.388, 1}

	// HighlightColor is reported by DisplayColor for the hovered or active handle.
	HighlightColor = [4]float32{1, 0.85, 0, 1}
)

// Handle is one interactive element of the gizmo. The set of handles is fixed
// at construction; only Enabled and Highlighted change afterwards.
type Handle struct {
	ID    HandleID
	Kind  ConstraintKind
	Group Group

	// Axis is the drag direction for axis handles and the plane normal for
	// plane handles and rings, in the gizmo frame.
	Axis mgl32.Vec3
	// Plane spans the handle plane for plane handles.
	Plane [2]mgl32.Vec3
	// Components lists the scale components a scale drag writes.
	Components []int

	Node  *scene.Node
	Color [4]float32

	Enabled     bool
	Highlighted bool
}

func (h *Handle) DisplayColor() [4]float32 {
	if h.Highlighted {
		return HighlightColor
	}
	return h.Color
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// newHandles builds the handle catalog as children of root. Arrows are
// cylinders along local Y, planes are quads and rings are circles in local
// XY, so each node is rotated onto its axis.
func newHandles(root *scene.Node, hc HandleConfig) []*Handle {
	rot := func(deg float32, axis mgl32.Vec3) mgl32.Quat {
		return mgl32.QuatRotate(mgl32.DegToRad(deg), axis)
	}
	arrow := scene.Cylinder{Radius: hc.ArrowRadius, Height: hc.ArrowLength}
	plane := scene.Quad{Width: hc.PlaneSize, Height: hc.PlaneSize}
	ring := scene.Ring{Radius: hc.RingRadius, Width: hc.RingWidth}
	off, poff := hc.ArrowOffset, hc.PlaneOffset

	handles := []*Handle{
		{ID: HandleX, Kind: ConstraintAxis, Group: GroupAxis, Axis: axisX, Components: []int{0}, Color: colorRed,
			Node: handleNode("arrow-x", arrow, mgl32.Vec3{off, 0, 0}, rot(-90, axisZ))},
		{ID: HandleY, Kind: ConstraintAxis, Group: GroupAxis, Axis: axisY, Components: []int{1}, Color: colorGreen,
			Node: handleNode("arrow-y", arrow, mgl32.Vec3{0, off, 0}, mgl32.QuatIdent())},
		{ID: HandleZ, Kind: ConstraintAxis, Group: GroupAxis, Axis: axisZ, Components: []int{2}, Color: colorBlue,
			Node: handleNode("arrow-z", arrow, mgl32.Vec3{0, 0, off}, rot(90, axisX))},

		{ID: HandleXY, Kind: ConstraintPlane, Group: GroupPlane, Axis: axisZ, Plane: [2]mgl32.Vec3{axisX, axisY},
			Components: []int{0, 1}, Color: colorYellow,
			Node: handleNode("plane-xy", plane, mgl32.Vec3{poff, poff, 0}, mgl32.QuatIdent())},
		{ID: HandleYZ, Kind: ConstraintPlane, Group: GroupPlane, Axis: axisX, Plane: [2]mgl32.Vec3{axisY, axisZ},
			Components: []int{1, 2}, Color: colorCyan,
			Node: handleNode("plane-yz", plane, mgl32.Vec3{0, poff, poff}, rot(90, axisY))},
		{ID: HandleZX, Kind: ConstraintPlane, Group: GroupPlane, Axis: axisY, Plane: [2]mgl32.Vec3{axisZ, axisX},
			Components: []int{2, 0}, Color: colorMagenta,
			Node: handleNode("plane-zx", plane, mgl32.Vec3{poff, 0, poff}, rot(-90, axisX))},

		{ID: HandleRotateX, Kind: ConstraintPlane, Group: GroupRing, Axis: axisX, Color: colorRed,
			Node: handleNode("rotate-x", ring, mgl32.Vec3{}, rot(90, axisY))},
		{ID: HandleRotateY, Kind: ConstraintPlane, Group: GroupRing, Axis: axisY, Color: colorGreen,
			Node: handleNode("rotate-y", ring, mgl32.Vec3{}, rot(-90, axisX))},
		{ID: HandleRotateZ, Kind: ConstraintPlane, Group: GroupRing, Axis: axisZ, Color: colorBlue,
			Node: handleNode("rotate-z", ring, mgl32.Vec3{}, mgl32.QuatIdent())},

		{ID: HandleCenter, Kind: ConstraintFree, Group: GroupCenter, Components: []int{0, 1, 2}, Color: colorCenter,
			Node: handleNode("sphere-center", scene.Sphere{Radius: hc.CenterRadius}, mgl32.Vec3{}, mgl32.QuatIdent())},
	}
	for _, h := range handles {
		h.Enabled = true
		root.Add(h.Node)
	}
	return handles
}

func handleNode(name string, shape scene.Shape, pos mgl32.Vec3, rot mgl32.Quat) *scene.Node {
	n := scene.NewNode(name)
	n.Shape = shape
	n.Local.Position = pos
	n.Local.Rotation = rot
	return n
}
