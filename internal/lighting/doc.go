// Package lighting defines the typed lighting parameters understood by the
// Predator keyboard backlight driver and the parsers that produce them.
//
// Every parser is a pure function over its input string: it either returns a
// validated value or an *Error describing what was wrong. Interactive callers
// re-prompt on a format error; one-shot callers abort.
//
// # Values
//
//   - Mode: static, breath, neon, wave, shifting, zoom (wire code = ordinal)
//   - Direction: right-to-left (1) or left-to-right (2)
//   - Zone: 1-4, with 0 meaning "all zones" before expansion
//   - Speed: 0-9
//   - Brightness: 0-100
//   - RGB: three independent byte channels
//
// # Color Formats
//
// ParseColor accepts any of:
//
//	#rrggbb   #f03020
//	#rgb      #f32      (each nibble duplicated: #ff3322)
//	rrggbb    f03020
//	r,g,b     240,48,32
//
// # Error Kinds
//
// Errors carry a Kind so the CLI can decide how to report them:
//
//	KindFormat      malformed text (bad hex digit, unknown mode name)
//	KindValidation  well-formed but out of range (zone 7, speed 12)
//	KindIO          device or profile file could not be opened/written
//	KindDecode      a saved profile could not be parsed
package lighting
