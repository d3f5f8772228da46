// Package profiles loads motion-profile tuning from YAML: the two
// built-in profiles are embedded, and arbitrary files can be loaded
// from disk and watched for live tuning.
package profiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/dashkid/character"
)

// ProfileSpec is the YAML shape of a motion profile.
type ProfileSpec struct {
	Mode  string `yaml:"mode"`
	Spawn struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"spawn"`
	Bounds struct {
		MinX int `yaml:"min_x"`
		MinY int `yaml:"min_y"`
		MaxX int `yaml:"max_x"`
		MaxY int `yaml:"max_y"`
	} `yaml:"bounds"`

	Speed        int `yaml:"speed"`
	DashSpeed    int `yaml:"dash_speed"`
	DashDuration int `yaml:"dash_duration"`

	RunSpeed        int     `yaml:"run_speed"`
	Gravity         float64 `yaml:"gravity"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	MaxFallVelocity float64 `yaml:"max_fall_velocity"`
	GroundY         int     `yaml:"ground_y"`

	AnimInterval int `yaml:"anim_interval"`
}

// ToProfile converts the spec into a validated character.Profile.
func (s ProfileSpec) ToProfile() (character.Profile, error) {
	var mode character.Mode
	switch s.Mode {
	case "dash":
		mode = character.ModeDash
	case "platform":
		mode = character.ModePlatform
	default:
		return character.Profile{}, fmt.Errorf("profiles: unknown mode %q", s.Mode)
	}

	p := character.Profile{
		Mode:   mode,
		SpawnX: s.Spawn.X,
		SpawnY: s.Spawn.Y,
		Bounds: character.Bounds{
			MinX: s.Bounds.MinX,
			MinY: s.Bounds.MinY,
			MaxX: s.Bounds.MaxX,
			MaxY: s.Bounds.MaxY,
		},
		Speed:           s.Speed,
		DashSpeed:       s.DashSpeed,
		DashDuration:    s.DashDuration,
		RunSpeed:        s.RunSpeed,
		Gravity:         s.Gravity,
		JumpVelocity:    s.JumpVelocity,
		MaxFallVelocity: s.MaxFallVelocity,
		GroundY:         s.GroundY,
		AnimInterval:    s.AnimInterval,
	}
	if err := p.Validate(); err != nil {
		return character.Profile{}, err
	}
	return p, nil
}

// Load returns a built-in profile by name ("dash" or "platform").
func Load(name string) (character.Profile, error) {
	data, err := read(name)
	if err != nil {
		return character.Profile{}, fmt.Errorf("profiles: load %s: %w", name, err)
	}
	return parse(name, data)
}

// LoadFile reads and validates a profile from an arbitrary path.
func LoadFile(path string) (character.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return character.Profile{}, fmt.Errorf("profiles: load %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) (character.Profile, error) {
	var spec ProfileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return character.Profile{}, fmt.Errorf("profiles: unmarshal %s: %w", name, err)
	}
	p, err := spec.ToProfile()
	if err != nil {
		return character.Profile{}, fmt.Errorf("profiles: %s: %w", name, err)
	}
	return p, nil
}
