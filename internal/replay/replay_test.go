package replay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
)

func TestRunTestdata(t *testing.T) {
	for _, name := range []string{"translate_x.yaml", "rotate_y.yaml"} {
		t.Run(name, func(t *testing.T) {
			s, err := Load("testdata/" + name)
			require.NoError(t, err)

			r, err := Run(s, nil)
			require.NoError(t, err)
			assert.True(t, r.Passed(), "failures: %v", r.Failures)
			for _, st := range r.Steps {
				assert.NoError(t, st.Err, "step %d", st.Index)
			}
		})
	}
}

func TestRunReportsMismatch(t *testing.T) {
	s, err := Parse([]byte(`
viewport: {width: 800, height: 600}
camera: {type: orthographic, position: [0, 0, 1000], height: 600, near: 1, far: 5000}
steps:
  - {action: down, at: [470, 300]}
  - {action: up}
expect:
  position: [1, 0, 0]
events: [dragging-started, changed, dragging-stopped]
`))
	require.NoError(t, err)

	r, err := Run(s, nil)
	require.NoError(t, err)
	assert.False(t, r.Passed())
	assert.Len(t, r.Failures, 2)
	assert.True(t, r.Steps[0].Consumed)
	assert.Equal(t, gizmo.HandleX, r.Steps[0].Handle)
	assert.Equal(t, gizmo.HandleNone, r.Steps[1].Handle)
}

func TestRunParentedTarget(t *testing.T) {
	s, err := Parse([]byte(`
viewport: {width: 800, height: 600}
camera: {type: orthographic, position: [0, 0, 1000], height: 600, near: 1, far: 5000}
parent: {position: [100, 0, 0], rotation: {axis: [0, 1, 0], angle: 90}, scale: [2, 2, 2]}
steps:
  - {action: down, world: [170, 0, 0]}
  - {action: move, world: [220, 0, 0]}
  - {action: up}
expect:
  position: [150, 0, 0]
`))
	require.NoError(t, err)

	r, err := Run(s, nil)
	require.NoError(t, err)
	assert.True(t, r.Passed(), "failures: %v", r.Failures)
}

func TestRunStepErrors(t *testing.T) {
	s, err := Parse([]byte(`
viewport: {width: 800, height: 600}
camera: {type: orthographic, position: [0, 0, 1000], height: 600}
steps:
  - {action: mode, mode: shear}
  - {action: down, world: [5000, 0, 0]}
`))
	require.NoError(t, err)

	r, err := Run(s, nil)
	require.NoError(t, err)
	assert.Error(t, r.Steps[0].Err)
	assert.ErrorContains(t, r.Steps[1].Err, "not on screen")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"no viewport", "steps: [{action: up}]", "viewport width and height must be positive"},
		{"no steps", "viewport: {width: 1, height: 1}", "at least one step"},
		{"unknown action", "viewport: {width: 1, height: 1}\nsteps: [{action: jump}]", `unknown action "jump"`},
		{"pointer without position", "viewport: {width: 1, height: 1}\nsteps: [{action: down}]", "needs either at or world"},
		{"unknown event", "viewport: {width: 1, height: 1}\nsteps: [{action: up}]\nevents: [clicked]", `unknown event "clicked"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunBadCamera(t *testing.T) {
	s, err := Parse([]byte(`
viewport: {width: 800, height: 600}
camera: {type: fisheye, position: [0, 0, 10]}
steps: [{action: up}]
`))
	require.NoError(t, err)
	_, err = Run(s, nil)
	assert.ErrorContains(t, err, `unknown camera type "fisheye"`)
}

func TestSameRotationToleratesNearZeroComponents(t *testing.T) {
	want := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	got := mgl32.Quat{W: 0.7071068, V: mgl32.Vec3{1e-7, 0.7071068, -1e-7}}
	assert.True(t, sameRotation(got, want))
	assert.True(t, sameRotation(want, mgl32.Quat{W: -want.W, V: want.V.Mul(-1)}))
	assert.False(t, sameRotation(want, mgl32.QuatIdent()))
}
