package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projector is implemented by cameras that can produce view and projection
// matrices for a given aspect ratio.
type Projector interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix(aspect float32) mgl32.Mat4
}

// LookAt positions a camera by eye, target and up vector.
type LookAt struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func (l LookAt) ViewMatrix() mgl32.Mat4 {
	up := l.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	return mgl32.LookAtV(l.Position, l.Target, up)
}

func (l LookAt) Forward() mgl32.Vec3 {
	return l.Target.Sub(l.Position).Normalize()
}

// PerspectiveCamera uses a vertical field of view in degrees.
type PerspectiveCamera struct {
	LookAt
	Fov  float32
	Near float32
	Far  float32
}

func NewPerspectiveCamera(fov, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		LookAt: LookAt{Position: mgl32.Vec3{0, 0, 10}, Up: mgl32.Vec3{0, 1, 0}},
		Fov:    fov,
		Near:   near,
		Far:    far,
	}
}

func (c *PerspectiveCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) Ray(ndc mgl32.Vec2, aspect float32) Ray {
	return Unproject(c, ndc, aspect)
}

// OrthographicCamera frames Height world units vertically; the width follows
// the aspect ratio.
type OrthographicCamera struct {
	LookAt
	Height float32
	Near   float32
	Far    float32
}

func NewOrthographicCamera(height, near, far float32) *OrthographicCamera {
	return &OrthographicCamera{
		LookAt: LookAt{Position: mgl32.Vec3{0, 0, 10}, Up: mgl32.Vec3{0, 1, 0}},
		Height: height,
		Near:   near,
		Far:    far,
	}
}

func (c *OrthographicCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	halfH := c.Height * 0.5
	halfW := halfH * aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
}

func (c *OrthographicCamera) Ray(ndc mgl32.Vec2, aspect float32) Ray {
	return Unproject(c, ndc, aspect)
}

// Unproject builds a world-space ray through the normalized device
// coordinate ndc, from the near plane towards the far plane.
func Unproject(p Projector, ndc mgl32.Vec2, aspect float32) Ray {
	vp := p.ProjectionMatrix(aspect).Mul4(p.ViewMatrix())
	inv := vp.Inv()

	near := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})
	nearW := near.Vec3().Mul(1 / near.W())
	farW := far.Vec3().Mul(1 / far.W())

	return NewRay(nearW, farW.Sub(nearW))
}

// Project maps a world position to viewport pixels (origin top-left). ok is
// false for points behind the camera or outside the viewport.
func Project(p Projector, pos mgl32.Vec3, width, height float32) (x, y float32, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	vp := p.ProjectionMatrix(width / height).Mul4(p.ViewMatrix())
	clip := vp.Mul4x1(pos.Vec4(1.0))
	if clip.W() <= 0 {
		return 0, 0, false
	}

	ndc := clip.Vec3().Mul(1.0 / clip.W())
	x = (ndc.X()*0.5 + 0.5) * width
	y = (1.0 - (ndc.Y()*0.5 + 0.5)) * height

	if x < 0 || x > width || y < 0 || y > height {
		return x, y, false
	}
	return x, y, true
}
