package ui

import (
	"github.com/muurk/predator-rgb/internal/protocol"
)

// RenderPayloads renders the dry-run "Device Payloads:" section.
// The dump itself stays unstyled so it can be copied verbatim.
func RenderPayloads(payloads []protocol.Payload) string {
	return SectionTitleStyle.Render("Device Payloads:") + "\n" + protocol.HexDump(payloads)
}
