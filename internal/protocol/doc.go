// Package protocol builds the binary payloads understood by the acer-gkbbl
// keyboard backlight driver.
//
// The driver exposes two character devices. Static (fixed color per zone)
// settings go to the static device as 4-byte records; every other mode is a
// single 16-byte record on the dynamic device. Static mode additionally needs
// one 16-byte "enable" record on the dynamic device after the zone records.
//
// # Static Record (4 bytes, static device)
//
//	[0]     zone mask      1 << (zone-1)
//	[1]     red
//	[2]     green
//	[3]     blue
//
// # Dynamic Record (16 bytes, dynamic device)
//
//	[0]     mode           Mode code (static=0, breath=1, ... zoom=5)
//	[1]     speed          0-9
//	[2]     brightness     0-100
//	[3]     wave flag      8 for wave, 0 otherwise
//	[4]     direction      1 = right-to-left, 2 = left-to-right
//	[5-7]   red/green/blue
//	[8]     0x00
//	[9]     0x01           Apply flag
//	[10-15] 0x00
//
// The static-mode enable record is a dynamic record with only the brightness
// and apply flag set.
//
// # Usage Example
//
//	payloads := protocol.EncodeStatic(protocol.DefaultDevices(),
//	    []lighting.Zone{1, 3}, lighting.NewRGB(240, 48, 32), 100)
//	for _, p := range payloads {
//	    fmt.Println(p)
//	}
//
// Every function in this package is pure: identical input produces identical
// bytes and nothing is written anywhere.
package protocol
