// Package keyboard writes encoded payloads to the acer-gkbbl character devices.
//
// NewWriter returns either a device writer, which opens each device path
// lazily and at most once per run, or a dry-run writer that only logs. The
// Controller encodes a Request with the protocol package and hands every
// payload to the writer in order, returning the payloads so callers can show
// them regardless of mode.
package keyboard
