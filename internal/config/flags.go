package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/muurk/predator-rgb/internal/lighting"
)

// Flag names shared by BindFlags and OverlayChanged
const (
	FlagMode        = "mode"
	FlagZones       = "zones"
	FlagSpeed       = "speed"
	FlagBrightness  = "brightness"
	FlagDirection   = "direction"
	FlagColor       = "color"
	FlagRed         = "red"
	FlagGreen       = "green"
	FlagBlue        = "blue"
	FlagSave        = "save"
	FlagLoad        = "load"
	FlagList        = "list"
	FlagDryRun      = "dry-run"
	FlagInteractive = "interactive"
)

// BindFlags registers every settings flag on fs, writing into s.
// The current values of s become the flag defaults.
func BindFlags(fs *pflag.FlagSet, s *Settings) {
	fs.VarP(&s.Mode, FlagMode, "m", "Lighting mode ("+strings.Join(lighting.ModeNames(), ", ")+")")
	fs.IntSliceVarP(&s.Zones, FlagZones, "z", s.Zones, "Zones (0 for all, 1-4 for specific zones)")
	fs.IntVarP(&s.Speed, FlagSpeed, "s", s.Speed, "Lighting speed (0-9)")
	fs.IntVarP(&s.Brightness, FlagBrightness, "y", s.Brightness, "Brightness percentage (0-100)")
	fs.VarP(&s.Direction, FlagDirection, "d", "Lighting direction ("+strings.Join(lighting.DirectionNames(), " or ")+")")
	fs.StringVar(&s.Color, FlagColor, s.Color, "Color in #rrggbb, #rgb, rrggbb, or r,g,b format; overrides -r, -g, -b")
	fs.Uint8VarP(&s.Red, FlagRed, "r", s.Red, "Red component of the color (0-255)")
	fs.Uint8VarP(&s.Green, FlagGreen, "g", s.Green, "Green component of the color (0-255)")
	fs.Uint8VarP(&s.Blue, FlagBlue, "b", s.Blue, "Blue component of the color (0-255)")
	fs.StringVar(&s.Save, FlagSave, "", "Save the current settings as a named profile")
	fs.StringVar(&s.Load, FlagLoad, "", "Load a named profile")
	fs.BoolVar(&s.List, FlagList, false, "List saved profiles")
	fs.BoolVar(&s.DryRun, FlagDryRun, s.DryRun, "Show the payloads without writing to the devices")
	fs.BoolVarP(&s.Interactive, FlagInteractive, "i", false, "Prompt for each setting")
}

// OverlayChanged copies every value the user explicitly set in fs from cli
// onto base. Flags left at their defaults do not override base.
// Explicit -r/-g/-b without --color drop a color override carried by base.
func OverlayChanged(base, cli *Settings, fs *pflag.FlagSet) {
	componentSet, colorSet := false, false
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case FlagMode:
			base.Mode = cli.Mode
		case FlagZones:
			base.Zones = append([]int(nil), cli.Zones...)
		case FlagSpeed:
			base.Speed = cli.Speed
		case FlagBrightness:
			base.Brightness = cli.Brightness
		case FlagDirection:
			base.Direction = cli.Direction
		case FlagColor:
			base.Color = cli.Color
			colorSet = true
		case FlagRed:
			base.Red = cli.Red
			componentSet = true
		case FlagGreen:
			base.Green = cli.Green
			componentSet = true
		case FlagBlue:
			base.Blue = cli.Blue
			componentSet = true
		case FlagDryRun:
			base.DryRun = cli.DryRun
		}
	})
	if componentSet && !colorSet {
		base.Color = ""
	}
	base.Save = cli.Save
	base.Load = cli.Load
	base.List = cli.List
	base.Interactive = cli.Interactive
}
