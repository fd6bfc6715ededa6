package keyboard

import (
	"io"
	"os"
	"sync"

	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/logging"
	"github.com/muurk/predator-rgb/internal/protocol"
)

// Writer delivers payloads to their devices.
type Writer interface {
	// Write sends one payload to its device
	Write(p protocol.Payload) error

	// Close releases any open device handles
	Close() error

	// DryRun reports whether payloads are withheld from the hardware
	DryRun() bool
}

// Opener opens a device path for writing.
type Opener func(path string) (io.WriteCloser, error)

// openDevice opens an existing character device write-only. Missing nodes are
// reported, never created.
func openDevice(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}

// NewWriter creates a writer for the keyboard devices.
// In dry-run mode no device is ever opened.
func NewWriter(dryRun bool) Writer {
	if dryRun {
		logging.Debug("Dry run: payloads will not be written")
		return newDryRun()
	}
	return newDevice(openDevice)
}

// deviceWriter opens each device lazily, at most once, and keeps it open
// until Close.
type deviceWriter struct {
	open  Opener
	mu    sync.Mutex
	files map[string]io.WriteCloser
}

func newDevice(open Opener) *deviceWriter {
	return &deviceWriter{
		open:  open,
		files: make(map[string]io.WriteCloser),
	}
}

func (w *deviceWriter) handle(path string) (io.WriteCloser, error) {
	if f, ok := w.files[path]; ok {
		return f, nil
	}

	f, err := w.open(path)
	if err != nil {
		return nil, lighting.NewDeviceError(path, "failed to open device "+path, err)
	}
	logging.LogDeviceOpen(path)
	w.files[path] = f
	return f, nil
}

// Write writes the full payload to its device.
func (w *deviceWriter) Write(p protocol.Payload) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.handle(p.Device)
	if err != nil {
		return err
	}

	logging.LogPayload(p.Device, p.Data, false)

	n, err := f.Write(p.Data)
	if err != nil {
		return lighting.NewDeviceError(p.Device, "failed to write payload to "+p.Device, err)
	}
	if n != len(p.Data) {
		return lighting.NewDeviceError(p.Device, "failed to write payload to "+p.Device, io.ErrShortWrite)
	}
	return nil
}

// Close closes every opened device and returns the first error.
func (w *deviceWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var first error
	for path, f := range w.files {
		if err := f.Close(); err != nil && first == nil {
			first = lighting.NewDeviceError(path, "failed to close device "+path, err)
		}
		delete(w.files, path)
	}
	return first
}

func (w *deviceWriter) DryRun() bool { return false }

// dryRunWriter records payloads without touching any device.
type dryRunWriter struct{}

func newDryRun() *dryRunWriter {
	return &dryRunWriter{}
}

func (dryRunWriter) Write(p protocol.Payload) error {
	logging.LogPayload(p.Device, p.Data, true)
	return nil
}

func (dryRunWriter) Close() error { return nil }

func (dryRunWriter) DryRun() bool { return true }
