package lighting

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMode parses a lighting mode name (case-insensitive).
func ParseMode(input string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	for i, candidate := range modeNames {
		if name == candidate {
			return Mode(i), nil
		}
	}
	return 0, NewFormatError("mode", fmt.Sprintf("%q is not a valid lighting mode (%s)", input, strings.Join(modeNames, ", ")))
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(input string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "right-to-left":
		return DirectionRightToLeft, nil
	case "left-to-right":
		return DirectionLeftToRight, nil
	default:
		return 0, NewFormatError("direction", fmt.Sprintf("%q is not a valid direction (left-to-right, right-to-left)", input))
	}
}

// ParseZones parses a comma-separated list of zone numbers. Range checking is
// left to ExpandZones; this only rejects tokens that are not unsigned bytes.
func ParseZones(input string) ([]uint8, error) {
	parts := strings.Split(input, ",")
	zones := make([]uint8, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, NewFormatError("zones", "Zones must be numbers separated by commas")
		}
		zones = append(zones, uint8(value))
	}
	return zones, nil
}

// ParseRangedUint8 parses a decimal byte and checks it against the inclusive
// range [min, max]. Errors name the field and the bounds.
func ParseRangedUint8(input, field string, min, max uint8) (uint8, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(input), 10, 8)
	if err != nil {
		return 0, NewFormatError(field, fmt.Sprintf("%s must be a number between %d and %d", field, min, max))
	}
	v := uint8(value)
	if v < min || v > max {
		return 0, NewValidationError(field, fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
	return v, nil
}

// ParseConfirmation parses a yes/no answer (y, yes, n, no; case-insensitive).
func ParseConfirmation(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, NewFormatError("confirmation", "Invalid input, please enter 'Y' or 'N'")
	}
}

// ParseColor parses a color in #rrggbb, #rgb, rrggbb or r,g,b form.
func ParseColor(input string) (RGB, error) {
	switch {
	case strings.HasPrefix(input, "#"):
		return parseHexColor(input[1:])
	case strings.Contains(input, ","):
		return parseRGBTuple(input)
	case len(input) == 6:
		return parseHexColor(input)
	default:
		return RGB{}, NewFormatError("color", "Invalid color format. Use #rrggbb, #rgb, rrggbb, or r,g,b")
	}
}

var channelNames = [3]string{"red", "green", "blue"}

// parseHexColor parses rrggbb or rgb (without the leading '#').
func parseHexColor(hex string) (RGB, error) {
	var channels [3]uint8

	switch len(hex) {
	case 6:
		for i := range channels {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return RGB{}, NewFormatError("color", fmt.Sprintf("Invalid %s component in hex", channelNames[i]))
			}
			channels[i] = uint8(v)
		}
	case 3:
		for i := range channels {
			nibble := hex[i : i+1]
			v, err := strconv.ParseUint(nibble+nibble, 16, 8)
			if err != nil {
				return RGB{}, NewFormatError("color", fmt.Sprintf("Invalid %s component in shorthand hex", channelNames[i]))
			}
			channels[i] = uint8(v)
		}
	default:
		return RGB{}, NewFormatError("color", "Hex color must be either 3 or 6 characters long")
	}

	return NewRGB(channels[0], channels[1], channels[2]), nil
}

// parseRGBTuple parses "r,g,b" with decimal components.
func parseRGBTuple(input string) (RGB, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return RGB{}, NewFormatError("color", "RGB tuple must have exactly 3 components")
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return RGB{}, NewFormatError("color", fmt.Sprintf("Invalid %s component in RGB", channelNames[i]))
		}
		channels[i] = uint8(v)
	}

	return NewRGB(channels[0], channels[1], channels[2]), nil
}
