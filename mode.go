package gizmo

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects which transform component a drag edits.
type Mode int

const (
	ModeTranslate Mode = iota
	ModeRotate
	ModeScale
)

var modeNames = map[Mode]string{
	ModeTranslate: "translate",
	ModeRotate:    "rotate",
	ModeScale:     "scale",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseMode(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Space is the frame the handles are aligned to.
type Space int

const (
	SpaceWorld Space = iota
	SpaceLocal
)

func (s Space) String() string {
	switch s {
	case SpaceWorld:
		return "world"
	case SpaceLocal:
		return "local"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

func (s Space) Valid() bool {
	return s == SpaceWorld || s == SpaceLocal
}

func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(s) {
	case "world":
		return SpaceWorld, nil
	case "local":
		return SpaceLocal, nil
	}
	return 0, fmt.Errorf("unknown space %q", s)
}

func (s Space) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Space) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSpace(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
