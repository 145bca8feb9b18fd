package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/glfwinput"
	"github.com/gekko3d/gizmo/scene"
)

// orbit turns a camera around a focus point with the right mouse button.
type orbit struct {
	cam         *scene.PerspectiveCamera
	Yaw, Pitch  float32 // degrees
	Distance    float32
	Sensitivity float32
}

func newOrbit(cam *scene.PerspectiveCamera, distance float32) *orbit {
	o := &orbit{cam: cam, Yaw: 35, Pitch: 30, Distance: distance, Sensitivity: 0.3}
	o.apply()
	return o
}

func (o *orbit) Navigate(s *glfwinput.State) {
	if !s.Pressed[glfwinput.MouseButtonRight] {
		return
	}
	o.Yaw += float32(s.MouseDeltaX) * o.Sensitivity
	o.Pitch += float32(s.MouseDeltaY) * o.Sensitivity

	if o.Pitch > 89.0 {
		o.Pitch = 89.0
	}
	if o.Pitch < -89.0 {
		o.Pitch = -89.0
	}
	o.apply()
}

func (o *orbit) apply() {
	yawRad := mgl32.DegToRad(o.Yaw)
	pitchRad := mgl32.DegToRad(o.Pitch)

	offset := mgl32.Vec3{
		math32.Sin(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Cos(yawRad) * math32.Cos(pitchRad),
	}.Mul(o.Distance)

	o.cam.Position = o.cam.Target.Add(offset)
	o.cam.Up = mgl32.Vec3{0, 1, 0}
}
