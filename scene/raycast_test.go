package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastScaling(t *testing.T) {
	obj := NewNode("obj")
	obj.Shape = Sphere{Radius: 1}

	// Control: unscaled, surface at world z = 9.
	obj.Local.Position = mgl32.Vec3{0, 0, 10}
	hit, ok := Nearest(NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}), []*Node{obj})
	require.True(t, ok, "control raycast missed")
	assert.InDelta(t, 9, hit.T, 1e-3)

	// Scale 0.1: one world unit is ten local units.
	obj.Local.Position = mgl32.Vec3{0, 0, 150}
	obj.Local.Scale = mgl32.Vec3{0.1, 0.1, 0.1}
	hit, ok = Nearest(NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}), []*Node{obj})
	require.True(t, ok, "raycast missed the scaled object")
	assert.InDelta(t, 149.9, hit.T, 1e-2)
	assert.True(t, NearlyEqual(hit.Point, mgl32.Vec3{0, 0, 149.9}, 1e-2))

	// Near-zero direction component must not blow up.
	Nearest(NewRay(mgl32.Vec3{}, mgl32.Vec3{-0.5e-8, 1, 0}), []*Node{obj})
}

func TestIntersectNodesOrderAndFilter(t *testing.T) {
	parent := NewNode("parent")
	near := NewNode("near")
	near.Shape = Sphere{Radius: 1}
	near.Local.Position = mgl32.Vec3{0, 0, -5}
	far := NewNode("far")
	far.Shape = Sphere{Radius: 1}
	far.Local.Position = mgl32.Vec3{0, 0, -20}
	hidden := NewNode("hidden")
	hidden.Shape = Sphere{Radius: 1}
	hidden.Local.Position = mgl32.Vec3{0, 0, -2}
	hidden.Visible = false
	bare := NewNode("bare")
	parent.Add(near, far, hidden, bare)

	hits := IntersectNodes(NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}), []*Node{far, hidden, bare, near, nil})
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Node)
	assert.Same(t, far, hits[1].Node)
	assert.InDelta(t, 4, hits[0].T, 1e-4)

	parent.Visible = false
	assert.Empty(t, IntersectNodes(NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}), []*Node{near, far}))
}

func TestIntersectRotatedParent(t *testing.T) {
	parent := NewNode("parent")
	parent.Local.Rotation = mgl32.QuatRotate(mgl32.DegToRad(-90), mgl32.Vec3{0, 0, 1})
	arrow := NewNode("arrow")
	arrow.Shape = Cylinder{Radius: 5, Height: 100}
	arrow.Local.Position = mgl32.Vec3{0, 70, 0}
	parent.Add(arrow)

	// Local +Y maps to world +X.
	hit, ok := Nearest(NewRay(mgl32.Vec3{70, 0, 100}, mgl32.Vec3{0, 0, -1}), []*Node{arrow})
	require.True(t, ok)
	assert.True(t, NearlyEqual(hit.Point, mgl32.Vec3{70, 0, 5}, 1e-3), "got %v", hit.Point)
}
