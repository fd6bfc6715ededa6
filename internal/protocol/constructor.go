package protocol

import (
	"github.com/muurk/predator-rgb/internal/lighting"
)

const (
	// PayloadSize is the size of a dynamic (and enable) record
	PayloadSize = 16

	// StaticPayloadSize is the size of a per-zone static record
	StaticPayloadSize = 4

	// WaveFlag is written at offset 3 of a dynamic record in wave mode
	WaveFlag = 8

	// ApplyFlag is written at offset 9 of every 16-byte record
	ApplyFlag = 1
)

// Dynamic record offsets
const (
	offsetMode       = 0
	offsetSpeed      = 1
	offsetBrightness = 2
	offsetWave       = 3
	offsetDirection  = 4
	offsetColor      = 5
	offsetApply      = 9
)

// BuildStaticPayload constructs the 4-byte record selecting one zone's color.
//
//	[0]   zone mask (bit zone-1)
//	[1-3] red, green, blue
func BuildStaticPayload(zone lighting.Zone, color lighting.RGB) [StaticPayloadSize]byte {
	var payload [StaticPayloadSize]byte
	payload[0] = zone.Mask()
	rgb := color.Bytes()
	copy(payload[1:4], rgb[:])
	return payload
}

// BuildEnablePayload constructs the 16-byte record sent after the static zone
// records. Only brightness (offset 2) and the apply flag (offset 9) are set.
func BuildEnablePayload(brightness lighting.Brightness) [PayloadSize]byte {
	var payload [PayloadSize]byte
	payload[offsetBrightness] = byte(brightness)
	payload[offsetApply] = ApplyFlag
	return payload
}

// BuildDynamicPayload constructs the 16-byte record for an animated mode.
func BuildDynamicPayload(
	mode lighting.Mode,
	speed lighting.Speed,
	brightness lighting.Brightness,
	direction lighting.Direction,
	color lighting.RGB,
) [PayloadSize]byte {
	var payload [PayloadSize]byte
	payload[offsetMode] = byte(mode)
	payload[offsetSpeed] = byte(speed)
	payload[offsetBrightness] = byte(brightness)
	if mode == lighting.ModeWave {
		payload[offsetWave] = WaveFlag
	}
	payload[offsetDirection] = byte(direction)
	rgb := color.Bytes()
	copy(payload[offsetColor:offsetColor+3], rgb[:])
	payload[offsetApply] = ApplyFlag
	return payload
}

// EncodeStatic returns the payload sequence for static mode: one static
// record per zone (in the given order) followed by a single enable record.
func EncodeStatic(devices Devices, zones []lighting.Zone, color lighting.RGB, brightness lighting.Brightness) []Payload {
	payloads := make([]Payload, 0, len(zones)+1)
	for _, zone := range zones {
		record := BuildStaticPayload(zone, color)
		payloads = append(payloads, NewPayload(devices.Static, record[:]))
	}

	enable := BuildEnablePayload(brightness)
	payloads = append(payloads, NewPayload(devices.Dynamic, enable[:]))
	return payloads
}

// EncodeDynamic returns the single payload for an animated mode.
func EncodeDynamic(
	devices Devices,
	mode lighting.Mode,
	speed lighting.Speed,
	brightness lighting.Brightness,
	direction lighting.Direction,
	color lighting.RGB,
) []Payload {
	record := BuildDynamicPayload(mode, speed, brightness, direction, color)
	return []Payload{NewPayload(devices.Dynamic, record[:])}
}
