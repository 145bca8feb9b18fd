package scene

import (
	"github.com/chewxy/math32"
)

// Shape is analytic pick geometry expressed in a node's local space.
type Shape interface {
	// Intersect returns the smallest non-negative ray parameter at which the
	// local-space ray r hits the shape.
	Intersect(r Ray) (t float32, ok bool)
}

// Cylinder is a capped cylinder centered on the origin along the local Y axis.
type Cylinder struct {
	Radius float32
	Height float32
}

func (c Cylinder) Intersect(r Ray) (float32, bool) {
	half := c.Height * 0.5
	best := float32(math32.Inf(1))
	found := false
	consider := func(t float32) {
		if t >= 0 && t < best {
			best = t
			found = true
		}
	}

	// Side: (ox + t dx)^2 + (oz + t dz)^2 = R^2
	a := r.Dir.X()*r.Dir.X() + r.Dir.Z()*r.Dir.Z()
	if a > parallelEpsilon {
		b := 2 * (r.Origin.X()*r.Dir.X() + r.Origin.Z()*r.Dir.Z())
		cc := r.Origin.X()*r.Origin.X() + r.Origin.Z()*r.Origin.Z() - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math32.Sqrt(disc)
			for _, t := range [2]float32{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if y := r.Origin.Y() + t*r.Dir.Y(); y >= -half && y <= half {
					consider(t)
				}
			}
		}
	}

	// Caps
	if math32.Abs(r.Dir.Y()) > parallelEpsilon {
		for _, capY := range [2]float32{-half, half} {
			t := (capY - r.Origin.Y()) / r.Dir.Y()
			x := r.Origin.X() + t*r.Dir.X()
			z := r.Origin.Z() + t*r.Dir.Z()
			if x*x+z*z <= c.Radius*c.Radius {
				consider(t)
			}
		}
	}
	return best, found
}

// Quad is a double-sided rectangle in the local XY plane.
type Quad struct {
	Width  float32
	Height float32
}

func (q Quad) Intersect(r Ray) (float32, bool) {
	if math32.Abs(r.Dir.Z()) < parallelEpsilon {
		return 0, false
	}
	t := -r.Origin.Z() / r.Dir.Z()
	if t < 0 {
		return 0, false
	}
	p := r.At(t)
	if math32.Abs(p.X()) > q.Width*0.5 || math32.Abs(p.Y()) > q.Height*0.5 {
		return 0, false
	}
	return t, true
}

// Ring is a circle of Radius in the local XY plane. A ray hits it when it
// crosses the plane within Width of the circle.
type Ring struct {
	Radius float32
	Width  float32
}

func (g Ring) Intersect(r Ray) (float32, bool) {
	if math32.Abs(r.Dir.Z()) < parallelEpsilon {
		return 0, false
	}
	t := -r.Origin.Z() / r.Dir.Z()
	if t < 0 {
		return 0, false
	}
	p := r.At(t)
	if math32.Abs(math32.Hypot(p.X(), p.Y())-g.Radius) > g.Width {
		return 0, false
	}
	return t, true
}

// Sphere is centered on the local origin.
type Sphere struct {
	Radius float32
}

func (s Sphere) Intersect(r Ray) (float32, bool) {
	b := r.Origin.Dot(r.Dir)
	c := r.Origin.Dot(r.Origin) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}
