// Package replay runs scripted pointer sessions against a gizmo. Scripts are
// YAML documents describing a camera, a target node and a list of steps.
package replay

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/scene"
)

// Vec is a YAML sequence of three numbers.
type Vec []float32

func (v Vec) vec3() (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

type Script struct {
	Name     string         `yaml:"name"`
	Config   yaml.Node      `yaml:"config"`
	Viewport gizmo.Viewport `yaml:"viewport"`
	Camera   CameraSpec     `yaml:"camera"`
	Parent   *TransformSpec `yaml:"parent"`
	Target   TransformSpec  `yaml:"target"`
	Steps    []Step         `yaml:"steps"`
	Expect   *TransformSpec `yaml:"expect"`
	Events   []string       `yaml:"events"`
}

type CameraSpec struct {
	Type     string  `yaml:"type"` // perspective or orthographic
	Position Vec     `yaml:"position"`
	Target   Vec     `yaml:"target"`
	Up       Vec     `yaml:"up"`
	Fov      float32 `yaml:"fov"`
	Height   float32 `yaml:"height"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

type TransformSpec struct {
	Position Vec           `yaml:"position"`
	Rotation *RotationSpec `yaml:"rotation"`
	Scale    Vec           `yaml:"scale"`
}

// RotationSpec is an axis and an angle in degrees.
type RotationSpec struct {
	Axis  Vec     `yaml:"axis"`
	Angle float32 `yaml:"angle"`
}

func (r RotationSpec) quat() (mgl32.Quat, error) {
	axis, err := r.Axis.vec3()
	if err != nil {
		return mgl32.Quat{}, err
	}
	if axis.Len() == 0 {
		return mgl32.Quat{}, fmt.Errorf("axis must not be zero")
	}
	return mgl32.QuatRotate(mgl32.DegToRad(r.Angle), axis.Normalize()), nil
}

// Step is one scripted action. Pointer actions take either At (viewport
// pixels) or World (a world point projected through the camera).
type Step struct {
	Action string `yaml:"action"`
	At     Vec    `yaml:"at"`
	World  Vec    `yaml:"world"`
	Mode   string `yaml:"mode"`
	Space  string `yaml:"space"`
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

func (s *Script) Validate() error {
	if !s.Viewport.Valid() {
		return fmt.Errorf("viewport width and height must be positive")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step must be defined")
	}
	for i, st := range s.Steps {
		if _, ok := actions[st.Action]; !ok {
			return fmt.Errorf("step %d: unknown action %q", i+1, st.Action)
		}
		if pointerActions[st.Action] && st.At == nil && st.World == nil {
			return fmt.Errorf("step %d: %s needs either at or world", i+1, st.Action)
		}
	}
	for _, name := range s.Events {
		if _, err := parseEventType(name); err != nil {
			return err
		}
	}
	return nil
}

// GizmoConfig decodes the script's config section on top of the defaults.
func (s *Script) GizmoConfig() (gizmo.Config, error) {
	cfg := gizmo.DefaultConfig()
	if s.Config.Kind != 0 {
		if err := s.Config.Decode(&cfg); err != nil {
			return gizmo.Config{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return gizmo.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// testCamera is what a replay needs from a scene camera.
type testCamera interface {
	gizmo.Camera
	scene.Projector
}

func (c CameraSpec) build() (testCamera, error) {
	pos, err := c.Position.vec3()
	if err != nil {
		return nil, fmt.Errorf("camera position: %w", err)
	}
	target := mgl32.Vec3{}
	if c.Target != nil {
		if target, err = c.Target.vec3(); err != nil {
			return nil, fmt.Errorf("camera target: %w", err)
		}
	}
	up := mgl32.Vec3{0, 1, 0}
	if c.Up != nil {
		if up, err = c.Up.vec3(); err != nil {
			return nil, fmt.Errorf("camera up: %w", err)
		}
	}
	near, far := c.Near, c.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 10000
	}

	switch c.Type {
	case "", "perspective":
		fov := c.Fov
		if fov <= 0 {
			fov = 60
		}
		cam := scene.NewPerspectiveCamera(fov, near, far)
		cam.LookAt = scene.LookAt{Position: pos, Target: target, Up: up}
		return cam, nil
	case "orthographic":
		if c.Height <= 0 {
			return nil, fmt.Errorf("orthographic camera needs a positive height")
		}
		cam := scene.NewOrthographicCamera(c.Height, near, far)
		cam.LookAt = scene.LookAt{Position: pos, Target: target, Up: up}
		return cam, nil
	}
	return nil, fmt.Errorf("unknown camera type %q", c.Type)
}

func (t *TransformSpec) build() (scene.Transform, error) {
	out := scene.Identity()
	if t == nil {
		return out, nil
	}
	var err error
	if t.Position != nil {
		if out.Position, err = t.Position.vec3(); err != nil {
			return out, fmt.Errorf("position: %w", err)
		}
	}
	if t.Rotation != nil {
		if out.Rotation, err = t.Rotation.quat(); err != nil {
			return out, fmt.Errorf("rotation: %w", err)
		}
	}
	if t.Scale != nil {
		if out.Scale, err = t.Scale.vec3(); err != nil {
			return out, fmt.Errorf("scale: %w", err)
		}
	}
	return out, nil
}
