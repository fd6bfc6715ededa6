package config

import (
	"fmt"

	"github.com/muurk/predator-rgb/internal/keyboard"
	"github.com/muurk/predator-rgb/internal/lighting"
)

// Settings is the complete argument model: lighting values plus the
// operation flags that drive a single run.
//
// Only the lighting values and dry_run are persisted in profiles.
type Settings struct {
	Mode       lighting.Mode      `yaml:"mode" json:"mode" toml:"mode"`
	Zones      []int              `yaml:"zones" json:"zones" toml:"zones"`
	Speed      int                `yaml:"speed" json:"speed" toml:"speed"`
	Brightness int                `yaml:"brightness" json:"brightness" toml:"brightness"`
	Direction  lighting.Direction `yaml:"direction" json:"direction" toml:"direction"`
	Color      string             `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"` // Overrides Red/Green/Blue when set
	Red        uint8              `yaml:"red" json:"red" toml:"red"`
	Green      uint8              `yaml:"green" json:"green" toml:"green"`
	Blue       uint8              `yaml:"blue" json:"blue" toml:"blue"`
	DryRun     bool               `yaml:"dry_run" json:"dry_run" toml:"dry_run"`

	// Operation flags always come from the command line
	Save        string `yaml:"-" json:"-" toml:"-"`
	Load        string `yaml:"-" json:"-" toml:"-"`
	List        bool   `yaml:"-" json:"-" toml:"-"`
	Interactive bool   `yaml:"-" json:"-" toml:"-"`
}

// Defaults used when no flag, profile or prompt supplies a value
const (
	DefaultSpeed      = 4
	DefaultBrightness = 100
	DefaultRed        = 240
	DefaultGreen      = 48
	DefaultBlue       = 32
)

// DefaultSettings returns the settings a bare invocation uses.
func DefaultSettings() *Settings {
	return &Settings{
		Mode:       lighting.ModeStatic,
		Zones:      []int{0},
		Speed:      DefaultSpeed,
		Brightness: DefaultBrightness,
		Direction:  lighting.DirectionLeftToRight,
		Red:        DefaultRed,
		Green:      DefaultGreen,
		Blue:       DefaultBlue,
	}
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Zones = append([]int(nil), s.Zones...)
	return &c
}

// RGB returns the color components as a color.
func (s *Settings) RGB() lighting.RGB {
	return lighting.NewRGB(s.Red, s.Green, s.Blue)
}

// ResolveColor applies the color override string, if any, to Red/Green/Blue.
func (s *Settings) ResolveColor() error {
	if s.Color == "" {
		return nil
	}
	color, err := lighting.ParseColor(s.Color)
	if err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}
	s.Red, s.Green, s.Blue = color.Red, color.Green, color.Blue
	return nil
}

// Request validates the lighting values into a controller request.
// Call ResolveColor first so the override is honored.
func (s *Settings) Request() (keyboard.Request, error) {
	zones, err := lighting.ExpandZones(s.Zones)
	if err != nil {
		return keyboard.Request{}, err
	}
	speed, err := lighting.NewSpeed(s.Speed)
	if err != nil {
		return keyboard.Request{}, err
	}
	brightness, err := lighting.NewBrightness(s.Brightness)
	if err != nil {
		return keyboard.Request{}, err
	}
	if _, err := s.Mode.MarshalText(); err != nil {
		return keyboard.Request{}, err
	}
	if _, err := s.Direction.MarshalText(); err != nil {
		return keyboard.Request{}, err
	}

	return keyboard.Request{
		Mode:       s.Mode,
		Zones:      zones,
		Speed:      speed,
		Brightness: brightness,
		Direction:  s.Direction,
		Color:      s.RGB(),
	}, nil
}
