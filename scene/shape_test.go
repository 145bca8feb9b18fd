package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	down := mgl32.Vec3{0, 0, -1}

	tests := []struct {
		name  string
		shape Shape
		ray   Ray
		hit   bool
		t     float32
	}{
		{"cylinder side", Cylinder{Radius: 5, Height: 100}, NewRay(mgl32.Vec3{0, 30, 20}, down), true, 15},
		{"cylinder beyond cap", Cylinder{Radius: 5, Height: 100}, NewRay(mgl32.Vec3{0, 51, 20}, down), false, 0},
		{"cylinder cap", Cylinder{Radius: 5, Height: 100}, NewRay(mgl32.Vec3{1, 80, 0}, mgl32.Vec3{0, -1, 0}), true, 30},
		{"cylinder from inside", Cylinder{Radius: 5, Height: 100}, NewRay(mgl32.Vec3{}, down), true, 5},
		{"quad", Quad{Width: 50, Height: 50}, NewRay(mgl32.Vec3{10, -20, 8}, down), true, 8},
		{"quad back side", Quad{Width: 50, Height: 50}, NewRay(mgl32.Vec3{10, -20, -8}, mgl32.Vec3{0, 0, 1}), true, 8},
		{"quad outside", Quad{Width: 50, Height: 50}, NewRay(mgl32.Vec3{30, 0, 8}, down), false, 0},
		{"quad edge-on", Quad{Width: 50, Height: 50}, NewRay(mgl32.Vec3{-100, 0, 0}, mgl32.Vec3{1, 0, 0}), false, 0},
		{"quad behind", Quad{Width: 50, Height: 50}, NewRay(mgl32.Vec3{0, 0, -8}, down), false, 0},
		{"ring on circle", Ring{Radius: 200, Width: 6}, NewRay(mgl32.Vec3{0, 203, 4}, down), true, 4},
		{"ring inside", Ring{Radius: 200, Width: 6}, NewRay(mgl32.Vec3{0, 150, 4}, down), false, 0},
		{"sphere", Sphere{Radius: 5}, NewRay(mgl32.Vec3{0, 0, 20}, down), true, 15},
		{"sphere from inside", Sphere{Radius: 5}, NewRay(mgl32.Vec3{}, down), true, 5},
		{"sphere miss", Sphere{Radius: 5}, NewRay(mgl32.Vec3{6, 0, 20}, down), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.shape.Intersect(tt.ray)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.t, got, 1e-4)
			}
		})
	}
}
