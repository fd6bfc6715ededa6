package ui

import (
	"fmt"
	"strings"

	"github.com/muurk/predator-rgb/internal/lighting"
)

// Field is one "Key: Value" line of a summary.
type Field struct {
	Key   string
	Value string
}

func renderField(f Field) string {
	return FieldKeyStyle.Render(f.Key+":") + " " + FieldValueStyle.Render(f.Value)
}

// RenderFields renders a title line followed by one line per field.
func RenderFields(title string, fields []Field) string {
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, SectionTitleStyle.Render(title))
	for _, f := range fields {
		lines = append(lines, renderField(f))
	}
	return strings.Join(lines, "\n")
}

// ConfigurationFields describes validated settings as summary lines.
func ConfigurationFields(
	mode lighting.Mode,
	zones []lighting.Zone,
	color lighting.RGB,
	speed lighting.Speed,
	brightness lighting.Brightness,
	direction lighting.Direction,
) []Field {
	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = z.String()
	}

	return []Field{
		{Key: "Mode", Value: mode.String()},
		{Key: "Zones", Value: "[" + strings.Join(names, ", ") + "]"},
		{Key: "Color", Value: color.String()},
		{Key: "Speed", Value: fmt.Sprintf("%d", uint8(speed))},
		{Key: "Brightness", Value: fmt.Sprintf("%d%%", uint8(brightness))},
		{Key: "Direction", Value: direction.String()},
	}
}

// RenderConfiguration renders the "Configuration:" block printed before the
// payloads are applied.
func RenderConfiguration(
	mode lighting.Mode,
	zones []lighting.Zone,
	color lighting.RGB,
	speed lighting.Speed,
	brightness lighting.Brightness,
	direction lighting.Direction,
) string {
	return RenderFields("Configuration:", ConfigurationFields(mode, zones, color, speed, brightness, direction))
}
