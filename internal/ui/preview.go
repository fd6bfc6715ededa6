package ui

import (
	"fmt"
	"strings"

	"github.com/muurk/predator-rgb/internal/lighting"
)

// ansiBlock returns a single space with a 24-bit background color.
func ansiBlock(color lighting.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm \x1b[0m", color.Red, color.Green, color.Blue)
}

// RenderZonePreview draws the four zones as colored blocks. Zones not in
// zones are shown as "[-]" on the legend line and blank on the bar.
func RenderZonePreview(zones []lighting.Zone, color lighting.RGB) string {
	selected := make(map[lighting.Zone]bool, len(zones))
	for _, z := range zones {
		selected[z] = true
	}
	block := ansiBlock(color)

	var b strings.Builder
	b.WriteString("Preview of static mode (colored blocks):\n")
	for _, z := range lighting.AllZones {
		if selected[z] {
			fmt.Fprintf(&b, "Zone %d: %s\t", uint8(z), block)
		} else {
			fmt.Fprintf(&b, "Zone %d: [-]\t", uint8(z))
		}
	}
	b.WriteString("\n\n")
	for _, z := range lighting.AllZones {
		if selected[z] {
			b.WriteString(block + block + " ")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	return b.String()
}
