package gizmo

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/scene"
)

// constraint is the world-space line or plane a drag is restricted to. It is
// fixed when the drag starts.
type constraint struct {
	kind   ConstraintKind
	origin mgl32.Vec3
	// dir is the unit line direction for axis constraints and the unit plane
	// normal otherwise.
	dir mgl32.Vec3
	// plane holds the unit vectors spanning a plane or free constraint;
	// zero for axis constraints.
	plane [2]mgl32.Vec3
}

// intersect projects ray onto the constraint. For a line this is the point
// of the line closest to the ray; for a plane, the crossing point in front of
// the ray origin.
func (c constraint) intersect(ray scene.Ray, parallelLimit float32) (mgl32.Vec3, error) {
	if c.kind == ConstraintAxis {
		cos := ray.Dir.Dot(c.dir)
		if 1-cos*cos < parallelLimit {
			return mgl32.Vec3{}, ErrDegenerateConstraint
		}
		_, s, _, ok := ray.ClosestToLine(c.origin, c.dir)
		if !ok {
			return mgl32.Vec3{}, ErrDegenerateConstraint
		}
		return c.origin.Add(c.dir.Mul(s)), nil
	}

	if math32.Abs(ray.Dir.Dot(c.dir)) < parallelLimit {
		return mgl32.Vec3{}, ErrDegenerateConstraint
	}
	t, ok := ray.IntersectPlane(c.origin, c.dir)
	if !ok || t < 0 {
		return mgl32.Vec3{}, ErrDegenerateConstraint
	}
	return ray.At(t), nil
}

// viewPlaneBasis returns right and up vectors spanning the plane with unit
// normal n. Up is world Y projected onto the plane, or world -Z when looking
// straight along Y.
func viewPlaneBasis(n mgl32.Vec3) [2]mgl32.Vec3 {
	up := rejectNormal(mgl32.Vec3{0, 1, 0}, n)
	if up.Len() < 1e-3 {
		up = rejectNormal(mgl32.Vec3{0, 0, -1}, n)
	}
	up = up.Normalize()
	return [2]mgl32.Vec3{up.Cross(n).Normalize(), up}
}

// rejectNormal removes the component of v along the unit vector n.
func rejectNormal(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

func snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return math32.Round(v/step) * step
}

// solve computes the target's world transform for the pointer ray. It
// returns ErrDegenerateConstraint when the frame must be skipped.
func (s *dragSession) solve(ray scene.Ray, cfg Config) (scene.Transform, error) {
	p1, err := s.constraint.intersect(ray, cfg.ParallelLimit)
	if err != nil {
		return scene.Transform{}, err
	}
	switch s.mode {
	case ModeRotate:
		return s.rotate(p1, cfg)
	case ModeScale:
		return s.scale(p1, cfg)
	default:
		return s.translate(p1, cfg), nil
	}
}

func (s *dragSession) translate(p1 mgl32.Vec3, cfg Config) scene.Transform {
	c := s.constraint
	delta := p1.Sub(s.startPoint)

	switch c.kind {
	case ConstraintAxis:
		d := snap(delta.Dot(c.dir), cfg.Snap.Translate)
		delta = c.dir.Mul(d)
	default:
		u := snap(delta.Dot(c.plane[0]), cfg.Snap.Translate)
		v := snap(delta.Dot(c.plane[1]), cfg.Snap.Translate)
		delta = c.plane[0].Mul(u).Add(c.plane[1].Mul(v))
	}

	out := s.start
	out.Position = s.start.Position.Add(delta)
	return out
}

func (s *dragSession) rotate(p1 mgl32.Vec3, cfg Config) (scene.Transform, error) {
	c := s.constraint
	v0 := rejectNormal(s.startPoint.Sub(c.origin), c.dir)
	v1 := rejectNormal(p1.Sub(c.origin), c.dir)
	if v0.Len() < cfg.Epsilon || v1.Len() < cfg.Epsilon {
		return scene.Transform{}, ErrDegenerateConstraint
	}

	// Signed angle from v0 to v1 around the normal (right-hand rule).
	angle := math32.Atan2(c.dir.Dot(v0.Cross(v1)), v0.Dot(v1))
	angle = snap(angle, mgl32.DegToRad(cfg.Snap.Rotate))

	out := s.start
	out.Rotation = mgl32.QuatRotate(angle, c.dir).Mul(s.start.Rotation).Normalize()
	return out, nil
}

func (s *dragSession) scale(p1 mgl32.Vec3, cfg Config) (scene.Transform, error) {
	c := s.constraint
	d0 := s.startPoint.Sub(c.origin)
	d1 := p1.Sub(c.origin)

	var from, to float32
	if c.kind == ConstraintAxis {
		from, to = d0.Dot(c.dir), d1.Dot(c.dir)
	} else {
		from, to = rejectNormal(d0, c.dir).Len(), rejectNormal(d1, c.dir).Len()
	}
	if math32.Abs(from) < cfg.Epsilon {
		return scene.Transform{}, ErrDegenerateConstraint
	}
	ratio := to / from

	out := s.start
	for _, i := range s.handle.Components {
		v := snap(s.start.Scale[i]*ratio, cfg.Snap.Scale)
		if math32.Abs(v) < cfg.Epsilon {
			return scene.Transform{}, ErrDegenerateConstraint
		}
		out.Scale[i] = v
	}
	return out, nil
}
