package protocol

import (
	"fmt"
	"strings"
)

// Device paths created by the acer-gkbbl driver
const (
	DefaultDevice       = "/dev/acer-gkbbl-0"
	DefaultStaticDevice = "/dev/acer-gkbbl-static-0"
)

// Devices holds the two character device paths payloads are addressed to.
type Devices struct {
	Dynamic string // 16-byte records
	Static  string // 4-byte per-zone records
}

// DefaultDevices returns the driver's standard device paths.
func DefaultDevices() Devices {
	return Devices{
		Dynamic: DefaultDevice,
		Static:  DefaultStaticDevice,
	}
}

// Payload is one record addressed to one device.
type Payload struct {
	Device string
	Data   []byte
}

// NewPayload creates a payload, copying data so callers may reuse their buffer.
func NewPayload(device string, data []byte) Payload {
	buf := make([]byte, len(data))
	copy(buf, data)
	return Payload{Device: device, Data: buf}
}

// Hex returns the bytes as comma-separated uppercase hex pairs.
func (p Payload) Hex() string {
	parts := make([]string, len(p.Data))
	for i, b := range p.Data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ", ")
}

// String returns the two-line dump used in dry-run output
func (p Payload) String() string {
	return fmt.Sprintf("Device: %s\nPayload: [%s]", p.Device, p.Hex())
}

// HexDump formats every payload, separated by blank lines.
func HexDump(payloads []Payload) string {
	var b strings.Builder
	for i, p := range payloads {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
