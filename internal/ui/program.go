package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/protocol"
)

// Printer provides methods for printing UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a header box
func (p *Printer) PrintHeader(title, command string, params ...Field) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintFields prints a titled list of fields
func (p *Printer) PrintFields(title string, fields []Field) {
	p.Println(RenderFields(title, fields))
}

// PrintPreview prints the colored zone preview
func (p *Printer) PrintPreview(zones []lighting.Zone, color lighting.RGB) {
	p.Newline()
	p.Println(RenderZonePreview(zones, color))
}

// PrintPayloads prints the dry-run payload dump
func (p *Printer) PrintPayloads(payloads []protocol.Payload) {
	p.Newline()
	p.Print(RenderPayloads(payloads))
}

// PrintProfiles prints the saved profile list
func (p *Printer) PrintProfiles(names []string) {
	p.Println("Saved profiles:")
	for _, name := range names {
		p.Println("\t" + name)
	}
}

// PrintNotice prints a muted one-line notice
func (p *Printer) PrintNotice(msg string) {
	p.Println(NoticeStyle.Render(msg))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Field) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting advice
func (p *Printer) PrintError(title string, err error) {
	p.Println(NewFailureResult(title, err, lighting.Hint(err)).SetWidth(p.width).Render())
}
