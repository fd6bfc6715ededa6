// Package ui renders predator-rgb's console output.
//
// Everything is built from lipgloss styles sharing one palette: section
// titles in purple, keys muted, values white, errors red inside a double
// border. The zone preview is the exception; it writes raw 24-bit ANSI
// background sequences so that the blocks show the exact requested color.
//
// # Usage
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintFields("Configuration:", ui.ConfigurationFields(mode, zones, color, speed, brightness, direction))
//	p.PrintPreview(zones, color)
//	if dryRun {
//	    p.PrintPayloads(payloads)
//	}
//
// Errors are shown with PrintError, which appends lighting.Hint advice:
//
//	p.PrintError("Could not apply lighting", err)
package ui
