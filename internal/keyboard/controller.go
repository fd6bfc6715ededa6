package keyboard

import (
	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/protocol"
)

// Controller encodes lighting requests and writes them in order.
type Controller struct {
	writer  Writer
	devices protocol.Devices
}

// NewController creates a controller writing to the given devices.
func NewController(writer Writer, devices protocol.Devices) *Controller {
	return &Controller{writer: writer, devices: devices}
}

// DryRun reports whether the underlying writer withholds payloads.
func (c *Controller) DryRun() bool {
	return c.writer.DryRun()
}

// ApplyStatic sets each zone to color, then sends the enable record.
// The returned payloads are identical in dry-run and real mode.
func (c *Controller) ApplyStatic(zones []lighting.Zone, color lighting.RGB, brightness lighting.Brightness) ([]protocol.Payload, error) {
	if len(zones) == 0 {
		return nil, lighting.NewValidationError("zones", "at least one zone is required")
	}
	payloads := protocol.EncodeStatic(c.devices, zones, color, brightness)
	return payloads, c.send(payloads)
}

// ApplyDynamic starts an animated mode.
func (c *Controller) ApplyDynamic(
	mode lighting.Mode,
	speed lighting.Speed,
	brightness lighting.Brightness,
	direction lighting.Direction,
	color lighting.RGB,
) ([]protocol.Payload, error) {
	if mode.IsStatic() {
		return nil, lighting.NewValidationError("mode", "static mode is applied per zone")
	}
	payloads := protocol.EncodeDynamic(c.devices, mode, speed, brightness, direction, color)
	return payloads, c.send(payloads)
}

// Apply dispatches on mode.
func (c *Controller) Apply(req Request) ([]protocol.Payload, error) {
	if req.Mode.IsStatic() {
		return c.ApplyStatic(req.Zones, req.Color, req.Brightness)
	}
	return c.ApplyDynamic(req.Mode, req.Speed, req.Brightness, req.Direction, req.Color)
}

// send stops at the first failure; earlier payloads stay applied.
func (c *Controller) send(payloads []protocol.Payload) error {
	for _, p := range payloads {
		if err := c.writer.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the writer.
func (c *Controller) Close() error {
	return c.writer.Close()
}

// Request is a fully validated lighting configuration.
type Request struct {
	Mode       lighting.Mode
	Zones      []lighting.Zone
	Speed      lighting.Speed
	Brightness lighting.Brightness
	Direction  lighting.Direction
	Color      lighting.RGB
}
