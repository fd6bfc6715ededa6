package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/muurk/predator-rgb/internal/config"
	"github.com/muurk/predator-rgb/internal/keyboard"
	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/protocol"
	"github.com/muurk/predator-rgb/internal/ui"
	"github.com/muurk/predator-rgb/internal/wizard"
)

type testEnv struct {
	runner *runner
	out    *bytes.Buffer
	store  *config.ProfileStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	var out bytes.Buffer
	store := config.NewProfileStore(filepath.Join(t.TempDir(), "profiles"))
	return &testEnv{
		out:   &out,
		store: store,
		runner: &runner{
			store:   store,
			printer: ui.NewPrinter(&out),
			format:  config.FormatYAML,
			devices: protocol.Devices{
				Dynamic: "/nonexistent/acer-gkbbl-0",
				Static:  "/nonexistent/acer-gkbbl-static-0",
			},
			newWriter: func(bool) keyboard.Writer { return keyboard.NewWriter(true) },
			prompt: func() (*config.Settings, error) {
				return nil, errors.New("unexpected prompt")
			},
		},
	}
}

func parseArgs(t *testing.T, args ...string) (*config.Settings, *pflag.FlagSet) {
	t.Helper()
	cli := config.DefaultSettings()
	fs := pflag.NewFlagSet("predator-rgb", pflag.ContinueOnError)
	config.BindFlags(fs, cli)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return cli, fs
}

func TestRun_DryRunDefaults(t *testing.T) {
	env := newTestEnv(t)
	cli, fs := parseArgs(t, "--dry-run")

	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := env.out.String()
	for _, want := range []string{
		"Configuration:",
		"RGB(240, 48, 32)",
		"Preview of static mode",
		"Device Payloads:",
		"Device: /nonexistent/acer-gkbbl-static-0\nPayload: [01, F0, 30, 20]",
		"Payload: [08, F0, 30, 20]",
		"Device: /nonexistent/acer-gkbbl-0\nPayload: [00, 00, 64, 00, 00, 00, 00, 00, 00, 01, 00, 00, 00, 00, 00, 00]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_NoPayloadDumpWithoutDryRun(t *testing.T) {
	env := newTestEnv(t)
	var captured []protocol.Payload
	env.runner.newWriter = func(dryRun bool) keyboard.Writer {
		if dryRun {
			t.Error("writer requested in dry-run mode")
		}
		return &recordingWriter{payloads: &captured}
	}
	cli, fs := parseArgs(t, "-m", "breath", "-s", "5")

	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := env.out.String()
	if strings.Contains(out, "Device Payloads:") {
		t.Error("payload dump should only appear in dry-run mode")
	}
	for _, want := range []string{"Lighting applied", "breath", "1 written"} {
		if !strings.Contains(out, want) {
			t.Errorf("success box missing %q:\n%s", want, out)
		}
	}
	if len(captured) != 1 {
		t.Fatalf("wrote %d payloads, want 1", len(captured))
	}
	want := []byte{1, 5, 100, 0, 2, 240, 48, 32, 0, 1, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(captured[0].Data, want) {
		t.Errorf("payload = %v, want %v", captured[0].Data, want)
	}
}

func TestRun_ColorOverride(t *testing.T) {
	env := newTestEnv(t)
	cli, fs := parseArgs(t, "--dry-run", "-r", "1", "--color", "#0f0")

	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(env.out.String(), "RGB(0, 255, 0)") {
		t.Errorf("--color should override -r:\n%s", env.out.String())
	}
}

func TestRun_SaveThenLoadWithOverride(t *testing.T) {
	env := newTestEnv(t)

	cli, fs := parseArgs(t, "--dry-run", "-m", "wave", "-s", "6", "-y", "80", "--save", "work")
	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("save run error = %v", err)
	}
	if !strings.Contains(env.out.String(), "Saved profile 'work'") {
		t.Errorf("save notice missing:\n%s", env.out.String())
	}

	env.out.Reset()
	cli, fs = parseArgs(t, "--load", "work", "-y", "40")
	settings, err := env.runner.resolve(cli, fs)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if settings.Mode != lighting.ModeWave || settings.Speed != 6 {
		t.Errorf("profile values lost: %+v", settings)
	}
	if settings.Brightness != 40 {
		t.Errorf("Brightness = %d, want explicit 40", settings.Brightness)
	}
	if !settings.DryRun {
		t.Error("dry_run should come from the profile")
	}
}

func TestRun_LoadMissingProfile(t *testing.T) {
	env := newTestEnv(t)
	cli, fs := parseArgs(t, "--load", "ghost")

	err := env.runner.run(cli, fs)
	if !lighting.IsIOError(err) {
		t.Fatalf("run() error = %v, want IO error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("missing profile should wrap os.ErrNotExist")
	}
}

func TestRun_List(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"b", "a"} {
		if _, err := env.store.Save(name, config.DefaultSettings(), config.FormatJSON); err != nil {
			t.Fatal(err)
		}
	}

	cli, fs := parseArgs(t, "--list", "-m", "wave")
	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if env.out.String() != "Saved profiles:\n\ta\n\tb\n" {
		t.Errorf("output = %q", env.out.String())
	}
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zone out of range", []string{"-z", "5"}},
		{"all zones with zone out of range", []string{"-z", "0,5", "--dry-run"}},
		{"all zones with negative zone", []string{"-z", "0,-1", "--dry-run"}},
		{"speed out of range", []string{"-s", "10"}},
		{"brightness out of range", []string{"-y", "101"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			cli, fs := parseArgs(t, tt.args...)
			err := env.runner.run(cli, fs)
			if !lighting.IsValidationError(err) {
				t.Errorf("run() error = %v, want validation error", err)
			}
			if strings.Contains(env.out.String(), "Configuration:") {
				t.Error("nothing should be printed before validation succeeds")
			}
		})
	}
}

func TestRun_DryRunPrintsNoSuccessBox(t *testing.T) {
	env := newTestEnv(t)
	cli, fs := parseArgs(t, "--dry-run")

	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(env.out.String(), "Lighting applied") {
		t.Errorf("dry run should not report lighting as applied:\n%s", env.out.String())
	}
}

func TestRun_CloseErrorIsReturned(t *testing.T) {
	env := newTestEnv(t)
	var captured []protocol.Payload
	closeErr := errors.New("close failed")
	env.runner.newWriter = func(bool) keyboard.Writer {
		return &recordingWriter{payloads: &captured, closeErr: closeErr}
	}
	cli, fs := parseArgs(t, "-m", "neon")

	if err := env.runner.run(cli, fs); !errors.Is(err, closeErr) {
		t.Errorf("run() error = %v, want close error", err)
	}
}

func TestRun_DeviceFlagsWriteDryRunBytes(t *testing.T) {
	dir := t.TempDir()
	devices := protocol.Devices{
		Dynamic: filepath.Join(dir, "acer-gkbbl-0"),
		Static:  filepath.Join(dir, "acer-gkbbl-static-0"),
	}
	for _, path := range []string{devices.Dynamic, devices.Static} {
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() {
		*cliSettings = *config.DefaultSettings()
		devicePaths = protocol.DefaultDevices()
		profileDir = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--device", devices.Dynamic,
		"--static-device", devices.Static,
		"--profile-dir", filepath.Join(dir, "profiles"),
		"-z", "2", "--color", "aabbcc", "-y", "60",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := protocol.EncodeStatic(devices, []lighting.Zone{2}, lighting.NewRGB(0xAA, 0xBB, 0xCC), 60)
	static, err := os.ReadFile(devices.Static)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(static, want[0].Data) {
		t.Errorf("static device = % X, want % X", static, want[0].Data)
	}
	dynamic, err := os.ReadFile(devices.Dynamic)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dynamic, want[1].Data) {
		t.Errorf("dynamic device = % X, want % X", dynamic, want[1].Data)
	}
	if !strings.Contains(out.String(), "Lighting applied") {
		t.Errorf("output missing success box:\n%s", out.String())
	}
}

func TestRun_Interactive(t *testing.T) {
	env := newTestEnv(t)
	env.runner.prompt = func() (*config.Settings, error) {
		s := wizard.InitialSettings()
		s.Mode = lighting.ModeZoom
		s.DryRun = true
		return s, nil
	}
	cli, fs := parseArgs(t, "-i", "--save", "fromwizard", "-m", "wave")

	if err := env.runner.run(cli, fs); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(env.out.String(), "zoom") {
		t.Errorf("wizard answers should replace flags:\n%s", env.out.String())
	}

	saved, err := env.store.Load("fromwizard")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved.Mode != lighting.ModeZoom {
		t.Errorf("saved mode = %v, want zoom", saved.Mode)
	}
}

func TestRun_InteractiveAborted(t *testing.T) {
	env := newTestEnv(t)
	env.runner.prompt = func() (*config.Settings, error) { return nil, wizard.ErrAborted }
	cli, fs := parseArgs(t, "-i")

	if err := env.runner.run(cli, fs); !errors.Is(err, wizard.ErrAborted) {
		t.Errorf("run() error = %v, want ErrAborted", err)
	}
}

type recordingWriter struct {
	payloads *[]protocol.Payload
	closeErr error
}

func (w *recordingWriter) Write(p protocol.Payload) error {
	*w.payloads = append(*w.payloads, p)
	return nil
}

func (w *recordingWriter) Close() error { return w.closeErr }
func (w *recordingWriter) DryRun() bool { return false }
