package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeTranslate, ModeRotate, ModeScale} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	m, err := ParseMode("ROTATE")
	require.NoError(t, err)
	assert.Equal(t, ModeRotate, m)

	_, err = ParseMode("")
	assert.Error(t, err)

	assert.False(t, Mode(7).Valid())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestParseSpace(t *testing.T) {
	s, err := ParseSpace("Local")
	require.NoError(t, err)
	assert.Equal(t, SpaceLocal, s)

	_, err = ParseSpace("view")
	assert.Error(t, err)
	assert.False(t, Space(-1).Valid())
}

func TestModeYAML(t *testing.T) {
	type doc struct {
		Mode  Mode  `yaml:"mode"`
		Space Space `yaml:"space"`
	}
	out, err := yaml.Marshal(doc{Mode: ModeScale, Space: SpaceLocal})
	require.NoError(t, err)
	assert.Equal(t, "mode: scale\nspace: local\n", string(out))

	var in doc
	require.NoError(t, yaml.Unmarshal(out, &in))
	assert.Equal(t, ModeScale, in.Mode)
	assert.Equal(t, SpaceLocal, in.Space)
}

func TestGroupActiveIn(t *testing.T) {
	assert.True(t, GroupAxis.activeIn(ModeScale))
	assert.True(t, GroupPlane.activeIn(ModeTranslate))
	assert.False(t, GroupPlane.activeIn(ModeRotate))
	assert.True(t, GroupRing.activeIn(ModeRotate))
	assert.False(t, GroupRing.activeIn(ModeScale))
	for _, m := range []Mode{ModeTranslate, ModeRotate, ModeScale} {
		assert.True(t, GroupCenter.activeIn(m))
	}
}

func TestHandleIDString(t *testing.T) {
	assert.Equal(t, "ZX", HandleZX.String())
	assert.Equal(t, "RY", HandleRotateY.String())
	assert.Equal(t, "HandleID(42)", HandleID(42).String())
}
