package keyboard

import (
	"errors"
	"testing"

	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/protocol"
)

type captureWriter struct {
	written []protocol.Payload
	failAt  int
}

func (w *captureWriter) Write(p protocol.Payload) error {
	if w.failAt > 0 && len(w.written)+1 == w.failAt {
		return errors.New("device gone")
	}
	w.written = append(w.written, p)
	return nil
}

func (w *captureWriter) Close() error { return nil }
func (w *captureWriter) DryRun() bool { return false }

func TestController_Apply(t *testing.T) {
	color := lighting.NewRGB(240, 48, 32)

	tests := []struct {
		name        string
		req         Request
		wantCount   int
		wantDevices []string
	}{
		{
			name:        "static all zones",
			req:         Request{Mode: lighting.ModeStatic, Zones: lighting.AllZones, Brightness: 100, Color: color},
			wantCount:   5,
			wantDevices: []string{protocol.DefaultStaticDevice, protocol.DefaultStaticDevice, protocol.DefaultStaticDevice, protocol.DefaultStaticDevice, protocol.DefaultDevice},
		},
		{
			name:        "static single zone",
			req:         Request{Mode: lighting.ModeStatic, Zones: []lighting.Zone{3}, Brightness: 100, Color: color},
			wantCount:   2,
			wantDevices: []string{protocol.DefaultStaticDevice, protocol.DefaultDevice},
		},
		{
			name:        "wave",
			req:         Request{Mode: lighting.ModeWave, Speed: 4, Brightness: 100, Direction: lighting.DirectionLeftToRight, Color: color},
			wantCount:   1,
			wantDevices: []string{protocol.DefaultDevice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &captureWriter{}
			ctrl := NewController(w, protocol.DefaultDevices())

			payloads, err := ctrl.Apply(tt.req)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if len(payloads) != tt.wantCount || len(w.written) != tt.wantCount {
				t.Fatalf("got %d payloads, %d written; want %d", len(payloads), len(w.written), tt.wantCount)
			}
			for i, dev := range tt.wantDevices {
				if w.written[i].Device != dev {
					t.Errorf("payload %d device = %s, want %s", i, w.written[i].Device, dev)
				}
			}
		})
	}
}

func TestController_StopsAtFirstFailure(t *testing.T) {
	w := &captureWriter{failAt: 2}
	ctrl := NewController(w, protocol.DefaultDevices())

	_, err := ctrl.ApplyStatic(lighting.AllZones, lighting.NewRGB(1, 1, 1), 100)
	if err == nil {
		t.Fatal("ApplyStatic() should return the write error")
	}
	if len(w.written) != 1 {
		t.Errorf("written %d payloads before failure, want 1", len(w.written))
	}
}

func TestController_RejectsMismatchedMode(t *testing.T) {
	ctrl := NewController(&captureWriter{}, protocol.DefaultDevices())

	if _, err := ctrl.ApplyDynamic(lighting.ModeStatic, 4, 100, lighting.DirectionLeftToRight, lighting.RGB{}); !lighting.IsValidationError(err) {
		t.Errorf("ApplyDynamic(static) error = %v, want validation error", err)
	}
	if _, err := ctrl.ApplyStatic(nil, lighting.RGB{}, 100); !lighting.IsValidationError(err) {
		t.Errorf("ApplyStatic(no zones) error = %v, want validation error", err)
	}
}
