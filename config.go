package gizmo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls handle geometry, picking tolerances and snapping.
// Lengths are in gizmo units, multiplied by Size in world space.
type Config struct {
	Mode  Mode    `yaml:"mode"`
	Space Space   `yaml:"space"`
	Size  float32 `yaml:"size"`

	Handles HandleConfig `yaml:"handles"`
	Snap    SnapConfig   `yaml:"snap"`

	// Epsilon guards near-zero denominators (scale ratios, rotation radii).
	Epsilon float32 `yaml:"epsilon"`
	// ParallelLimit is the smallest sin^2 between a ray and a drag axis, and
	// the smallest |cos| between a ray and a drag plane normal, that still
	// produces an intersection.
	ParallelLimit float32 `yaml:"parallel_limit"`
	// TieTolerance is the distance under which two pick hits are considered
	// equally near and ordered by handle priority.
	TieTolerance float32 `yaml:"tie_tolerance"`

	// Debug raises the logger to debug level. Without WithLogger it
	// installs a stdout DefaultLogger.
	Debug bool `yaml:"debug"`
}

type HandleConfig struct {
	ArrowLength  float32 `yaml:"arrow_length"`
	ArrowRadius  float32 `yaml:"arrow_radius"`
	ArrowOffset  float32 `yaml:"arrow_offset"`
	PlaneSize    float32 `yaml:"plane_size"`
	PlaneOffset  float32 `yaml:"plane_offset"`
	RingRadius   float32 `yaml:"ring_radius"`
	RingWidth    float32 `yaml:"ring_width"`
	CenterRadius float32 `yaml:"center_radius"`
}

// SnapConfig holds snapping increments. Zero disables snapping.
type SnapConfig struct {
	Translate float32 `yaml:"translate"`
	Rotate    float32 `yaml:"rotate"` // degrees
	Scale     float32 `yaml:"scale"`
}

func DefaultConfig() Config {
	return Config{
		Mode:  ModeTranslate,
		Space: SpaceWorld,
		Size:  1,
		Handles: HandleConfig{
			ArrowLength:  100,
			ArrowRadius:  5,
			ArrowOffset:  70,
			PlaneSize:    50,
			PlaneOffset:  40,
			RingRadius:   200,
			RingWidth:    6,
			CenterRadius: 5,
		},
		Epsilon:       1e-4,
		ParallelLimit: 1e-2,
		TieTolerance:  1e-3,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("unknown mode %d", int(c.Mode))
	}
	if !c.Space.Valid() {
		return fmt.Errorf("unknown space %d", int(c.Space))
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %g", c.Size)
	}
	h := c.Handles
	for name, v := range map[string]float32{
		"arrow_length":  h.ArrowLength,
		"arrow_radius":  h.ArrowRadius,
		"plane_size":    h.PlaneSize,
		"ring_radius":   h.RingRadius,
		"ring_width":    h.RingWidth,
		"center_radius": h.CenterRadius,
	} {
		if v <= 0 {
			return fmt.Errorf("handles.%s must be positive, got %g", name, v)
		}
	}
	if c.Snap.Translate < 0 || c.Snap.Rotate < 0 || c.Snap.Scale < 0 {
		return fmt.Errorf("snap increments must not be negative")
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.ParallelLimit < 0 || c.ParallelLimit >= 1 {
		return fmt.Errorf("parallel_limit must be in [0, 1), got %g", c.ParallelLimit)
	}
	if c.TieTolerance < 0 {
		return fmt.Errorf("tie_tolerance must not be negative, got %g", c.TieTolerance)
	}
	return nil
}
