package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the smallest |cos| between a ray and a plane normal, or
// the smallest line-line determinant, considered non-degenerate.
const parallelEpsilon = 1e-6

// Ray is a half line. Dir is expected to be normalized.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectPlane returns the ray parameter where the ray crosses the plane
// through point with the given normal. ok is false when the ray is parallel
// to the plane.
func (r Ray) IntersectPlane(point, normal mgl32.Vec3) (t float32, ok bool) {
	denom := r.Dir.Dot(normal)
	if math32.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	return point.Sub(r.Origin).Dot(normal) / denom, true
}

// ClosestToLine finds the closest points between the ray's supporting line
// and the line origin + s*dir. t is the ray parameter, s the line parameter
// and dist the distance between the two points. ok is false when the lines
// are parallel.
func (r Ray) ClosestToLine(origin, dir mgl32.Vec3) (t, s, dist float32, ok bool) {
	w := r.Origin.Sub(origin)
	a := r.Dir.Dot(r.Dir)
	b := r.Dir.Dot(dir)
	e := dir.Dot(dir)
	f := dir.Dot(w)

	det := a*e - b*b
	if det < parallelEpsilon*a*e {
		return 0, 0, w.Len(), false
	}

	c := r.Dir.Dot(w)
	t = (b*f - c*e) / det
	s = (a*f - b*c) / det

	p1 := r.At(t)
	p2 := origin.Add(dir.Mul(s))
	return t, s, p1.Sub(p2).Len(), true
}

// Transformed maps the ray through m. The returned ray is normalized and
// scale is the length of the transformed direction, so that a parameter t'
// along the result corresponds to t'/scale along r.
func (r Ray) Transformed(m mgl32.Mat4) (out Ray, scale float32) {
	origin := m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	dir := m.Mul4x1(r.Dir.Vec4(0)).Vec3()
	scale = dir.Len()
	if scale < parallelEpsilon {
		return Ray{Origin: origin, Dir: dir}, 0
	}
	return Ray{Origin: origin, Dir: dir.Mul(1 / scale)}, scale
}
