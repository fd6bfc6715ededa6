package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestInitialize_UnknownLevel(t *testing.T) {
	if err := Initialize("verbose"); err == nil {
		t.Error("Initialize(verbose) should fail")
	}
}

func TestLogPayload(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogPayload("/dev/acer-gkbbl-0", []byte{0x01, 0xAB}, true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["device"] != "/dev/acer-gkbbl-0" {
		t.Errorf("device field = %v", fields["device"])
	}
	if fields["hex"] != "01ab" {
		t.Errorf("hex field = %v, want 01ab", fields["hex"])
	}
	if fields["dry_run"] != true {
		t.Errorf("dry_run field = %v, want true", fields["dry_run"])
	}
}

func TestHexDumpTruncates(t *testing.T) {
	data := make([]byte, 300)
	got := hexDump(data)
	if !strings.HasSuffix(got, "...") {
		t.Error("long dumps should be truncated")
	}
	if len(got) != 256*2+3 {
		t.Errorf("dump length = %d, want %d", len(got), 256*2+3)
	}
	if hexDump(nil) != "" {
		t.Error("empty input should produce empty dump")
	}
}
