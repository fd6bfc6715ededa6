package lighting

import (
	"fmt"
	"strings"
)

// Mode is a keyboard lighting effect. The numeric value is the mode code
// written at offset 0 of a dynamic payload.
type Mode uint8

const (
	ModeStatic Mode = iota
	ModeBreath
	ModeNeon
	ModeWave
	ModeShifting
	ModeZoom
)

var modeNames = []string{"static", "breath", "neon", "wave", "shifting", "zoom"}

// Modes lists every lighting mode in wire-code order.
func Modes() []Mode {
	return []Mode{ModeStatic, ModeBreath, ModeNeon, ModeWave, ModeShifting, ModeZoom}
}

// ModeNames returns the canonical names of all modes.
func ModeNames() []string {
	names := make([]string, len(modeNames))
	copy(names, modeNames)
	return names
}

// String returns the canonical lowercase name of the mode
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// IsStatic reports whether the mode uses the per-zone static payload layout.
func (m Mode) IsStatic() bool {
	return m == ModeStatic
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, NewValidationError("mode", fmt.Sprintf("invalid lighting mode %d", uint8(m)))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Set implements pflag.Value
func (m *Mode) Set(value string) error {
	return m.UnmarshalText([]byte(value))
}

// Type implements pflag.Value
func (m *Mode) Type() string {
	return "mode"
}

// Direction is the travel direction of animated modes.
type Direction uint8

const (
	DirectionRightToLeft Direction = 1
	DirectionLeftToRight Direction = 2
)

// DirectionNames returns the canonical names of all directions.
func DirectionNames() []string {
	return []string{"right-to-left", "left-to-right"}
}

// String returns the canonical kebab-case name of the direction
func (d Direction) String() string {
	switch d {
	case DirectionRightToLeft:
		return "right-to-left"
	case DirectionLeftToRight:
		return "left-to-right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if d != DirectionRightToLeft && d != DirectionLeftToRight {
		return nil, NewValidationError("direction", fmt.Sprintf("invalid direction %d", uint8(d)))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Set implements pflag.Value
func (d *Direction) Set(value string) error {
	return d.UnmarshalText([]byte(value))
}

// Type implements pflag.Value
func (d *Direction) Type() string {
	return "direction"
}

// Zone identifies one of the four keyboard backlight regions (1-4).
type Zone uint8

// AllZones is what zone 0 expands to.
var AllZones = []Zone{1, 2, 3, 4}

// NewZone validates a single zone number. Zone 0 is rejected here; use
// ExpandZones to handle the "all zones" shorthand.
func NewZone(zone int) (Zone, error) {
	if zone < 1 || zone > 4 {
		return 0, NewValidationError("zone", fmt.Sprintf("Zone must be 0 (all zones) or between 1 and 4, got %d", zone))
	}
	return Zone(zone), nil
}

// Mask returns the static payload bitmask for the zone (bit zone-1 set).
func (z Zone) Mask() byte {
	return 1 << (z - 1)
}

// String returns "Zone N"
func (z Zone) String() string {
	return fmt.Sprintf("Zone %d", uint8(z))
}

// ExpandZones converts raw zone numbers into validated zones. Every entry is
// validated first; 0 is accepted and selects all four zones. Otherwise
// duplicates are dropped, keeping the first occurrence order.
func ExpandZones(raw []int) ([]Zone, error) {
	if len(raw) == 0 {
		return nil, NewValidationError("zones", "at least one zone is required")
	}

	zones := make([]Zone, 0, len(raw))
	seen := make(map[Zone]bool, len(raw))
	all := false
	for _, z := range raw {
		if z == 0 {
			all = true
			continue
		}
		zone, err := NewZone(z)
		if err != nil {
			return nil, err
		}
		if seen[zone] {
			continue
		}
		seen[zone] = true
		zones = append(zones, zone)
	}

	if all {
		zones = make([]Zone, len(AllZones))
		copy(zones, AllZones)
	}
	return zones, nil
}

// FormatZones renders zones as "1,2,3" (the form ParseZones accepts).
func FormatZones(zones []int) string {
	parts := make([]string, len(zones))
	for i, z := range zones {
		parts[i] = fmt.Sprintf("%d", z)
	}
	return strings.Join(parts, ",")
}

// Speed is the animation speed of dynamic modes (0-9).
type Speed uint8

// MaxSpeed is the highest accepted speed.
const MaxSpeed = 9

// NewSpeed validates a speed value.
func NewSpeed(speed int) (Speed, error) {
	if speed < 0 || speed > MaxSpeed {
		return 0, NewValidationError("speed", fmt.Sprintf("Speed should be between 0 and %d, got %d", MaxSpeed, speed))
	}
	return Speed(speed), nil
}

// String returns "Speed N"
func (s Speed) String() string {
	return fmt.Sprintf("Speed %d", uint8(s))
}

// Brightness is the backlight brightness in percent (0-100).
type Brightness uint8

// MaxBrightness is the highest accepted brightness.
const MaxBrightness = 100

// NewBrightness validates a brightness value.
func NewBrightness(brightness int) (Brightness, error) {
	if brightness < 0 || brightness > MaxBrightness {
		return 0, NewValidationError("brightness", fmt.Sprintf("Brightness must be between 0 and %d, got %d", MaxBrightness, brightness))
	}
	return Brightness(brightness), nil
}

// String returns "Brightness N%"
func (b Brightness) String() string {
	return fmt.Sprintf("Brightness %d%%", uint8(b))
}

// RGB is a 24-bit color.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// NewRGB creates a color from its channels.
func NewRGB(red, green, blue uint8) RGB {
	return RGB{Red: red, Green: green, Blue: blue}
}

// Bytes returns the channels in wire order.
func (c RGB) Bytes() [3]byte {
	return [3]byte{c.Red, c.Green, c.Blue}
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// String returns "RGB(r, g, b)"
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.Red, c.Green, c.Blue)
}
