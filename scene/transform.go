package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// scaleEpsilon keeps parent-space conversion finite when a parent is scaled to zero.
const scaleEpsilon = 1e-6

// Transform is a translation, rotation and per-axis scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func Identity() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

func (t Transform) WorldToObject() mgl32.Mat4 {
	// inv(M) = inv(S) * inv(R) * inv(T)
	invScale := mgl32.Scale3D(safeInv(t.Scale.X()), safeInv(t.Scale.Y()), safeInv(t.Scale.Z()))
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())

	return invScale.Mul4(invRotate).Mul4(invTranslate)
}

// Compose returns the world transform of a child with the given local
// transform under parent. Scale is propagated per component so that
// reflections survive.
func Compose(parent, local Transform) Transform {
	// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
	scaledLocalPos := mgl32.Vec3{
		local.Position.X() * parent.Scale.X(),
		local.Position.Y() * parent.Scale.Y(),
		local.Position.Z() * parent.Scale.Z(),
	}
	return Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(scaledLocalPos)),
		Rotation: parent.Rotation.Mul(local.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			parent.Scale.X() * local.Scale.X(),
			parent.Scale.Y() * local.Scale.Y(),
			parent.Scale.Z() * local.Scale.Z(),
		},
	}
}

// Relative is the inverse of Compose: it returns the local transform that
// places a child at world under parent.
func Relative(parent, world Transform) Transform {
	inv := parent.Rotation.Conjugate()
	localPos := inv.Rotate(world.Position.Sub(parent.Position))
	return Transform{
		Position: mgl32.Vec3{
			localPos.X() * safeInv(parent.Scale.X()),
			localPos.Y() * safeInv(parent.Scale.Y()),
			localPos.Z() * safeInv(parent.Scale.Z()),
		},
		Rotation: inv.Mul(world.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			world.Scale.X() * safeInv(parent.Scale.X()),
			world.Scale.Y() * safeInv(parent.Scale.Y()),
			world.Scale.Z() * safeInv(parent.Scale.Z()),
		},
	}
}

// ApproxEqual compares positions and scales per component within the
// absolute threshold. Rotations q and -q are treated as equal.
func (t Transform) ApproxEqual(o Transform, threshold float32) bool {
	if !NearlyEqual(t.Position, o.Position, threshold) {
		return false
	}
	if !NearlyEqual(t.Scale, o.Scale, threshold) {
		return false
	}
	return math32.Abs(t.Rotation.Dot(o.Rotation)) >= 1-threshold
}

// NearlyEqual reports whether every component of a and b differs by at most
// tol. Unlike mgl32's ApproxEqualThreshold the comparison is absolute, so
// values on either side of zero compare as expected.
func NearlyEqual(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func safeInv(v float32) float32 {
	if math32.Abs(v) < scaleEpsilon {
		if v < 0 {
			return -1 / scaleEpsilon
		}
		return 1 / scaleEpsilon
	}
	return 1 / v
}
