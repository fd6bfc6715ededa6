package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/predator-rgb/internal/config"
	"github.com/muurk/predator-rgb/internal/keyboard"
	"github.com/muurk/predator-rgb/internal/logging"
	"github.com/muurk/predator-rgb/internal/protocol"
	"github.com/muurk/predator-rgb/internal/ui"
	"github.com/muurk/predator-rgb/internal/wizard"
)

// Command flags
var (
	cliSettings   = config.DefaultSettings()
	profileFormat string
	profileDir    string
	logLevel      string
	devicePaths   = protocol.DefaultDevices()
)

func init() {
	config.BindFlags(rootCmd.Flags(), cliSettings)
	rootCmd.Flags().StringVar(&profileFormat, "profile-format", string(config.DefaultFormat), "Format for --save (yaml, json, toml)")
	rootCmd.Flags().StringVar(&devicePaths.Dynamic, "device", devicePaths.Dynamic, "Dynamic lighting device")
	rootCmd.Flags().StringVar(&devicePaths.Static, "static-device", devicePaths.Static, "Static per-zone lighting device")
	rootCmd.MarkFlagsMutuallyExclusive(config.FlagInteractive, config.FlagLoad)

	rootCmd.PersistentFlags().StringVar(&profileDir, "profile-dir", "", "Profile directory (default: <config dir>/predator/profiles)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(profilesCmd)
}

// profilesCmd lists saved profiles
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved profiles",
	Long:  `List the profiles saved with --save. Same output as --list.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listProfiles(config.NewProfileStore(profileDir), ui.NewPrinter(cmd.OutOrStdout()))
	},
}

// setup initializes logging and resolves the profile directory once.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}

	if profileDir == "" {
		dir, err := config.DefaultProfileDir()
		if err != nil {
			return fmt.Errorf("failed to determine profile directory: %w", err)
		}
		profileDir = dir
	}
	logging.Debug("Profile directory", zap.String("path", profileDir))
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(profileFormat)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	r := &runner{
		store:     config.NewProfileStore(profileDir),
		printer:   printer,
		format:    format,
		devices:   devicePaths,
		newWriter: keyboard.NewWriter,
		prompt: func() (*config.Settings, error) {
			printer.PrintHeader("Keyboard lighting setup", "predator-rgb --interactive",
				ui.Field{Key: "Esc", Value: "cancel"})
			return wizard.New(wizard.NewLineReader(os.Stdin, cmd.OutOrStdout()), printer).Run()
		},
	}
	return r.run(cliSettings, cmd.Flags())
}

func listProfiles(store *config.ProfileStore, printer *ui.Printer) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	printer.PrintProfiles(names)
	return nil
}

// runner resolves settings and applies them. Dependencies are fields so the
// whole flow can run against temp directories and a dry-run writer.
type runner struct {
	store     *config.ProfileStore
	printer   *ui.Printer
	format    config.Format
	devices   protocol.Devices
	newWriter func(dryRun bool) keyboard.Writer
	prompt    func() (*config.Settings, error)
}

// resolve produces the final settings from the command line, the wizard or
// a profile, then applies the color override and saves if asked.
func (r *runner) resolve(cli *config.Settings, flags *pflag.FlagSet) (*config.Settings, error) {
	settings := cli.Clone()

	switch {
	case cli.Interactive:
		answers, err := r.prompt()
		if err != nil {
			return nil, err
		}
		answers.Save = cli.Save
		answers.Interactive = true
		settings = answers

	case cli.Load != "":
		loaded, err := r.store.Load(cli.Load)
		if err != nil {
			return nil, err
		}
		config.OverlayChanged(loaded, cli, flags)
		settings = loaded
	}

	if err := settings.ResolveColor(); err != nil {
		return nil, err
	}

	if settings.Save != "" {
		path, err := r.store.Save(settings.Save, settings, r.format)
		if err != nil {
			return nil, err
		}
		r.printer.PrintNotice(fmt.Sprintf("Saved profile '%s' to %s", settings.Save, path))
	}

	return settings, nil
}

func (r *runner) run(cli *config.Settings, flags *pflag.FlagSet) (err error) {
	if cli.List {
		return listProfiles(r.store, r.printer)
	}

	settings, err := r.resolve(cli, flags)
	if err != nil {
		return err
	}

	req, err := settings.Request()
	if err != nil {
		return err
	}

	r.printer.PrintFields("Configuration:", ui.ConfigurationFields(
		req.Mode, req.Zones, req.Color, req.Speed, req.Brightness, req.Direction,
	))

	ctrl := keyboard.NewController(r.newWriter(settings.DryRun), r.devices)
	defer func() {
		if closeErr := ctrl.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	payloads, err := ctrl.Apply(req)
	if err != nil {
		return err
	}
	logging.Info("Lighting applied",
		zap.String("mode", req.Mode.String()),
		zap.Int("payloads", len(payloads)),
		zap.Bool("dry_run", ctrl.DryRun()),
	)

	r.printer.PrintPreview(req.Zones, req.Color)
	if ctrl.DryRun() {
		r.printer.PrintPayloads(payloads)
		return nil
	}
	r.printer.PrintSuccess("Lighting applied",
		ui.Field{Key: "Mode", Value: req.Mode.String()},
		ui.Field{Key: "Payloads", Value: fmt.Sprintf("%d written", len(payloads))},
	)
	return nil
}
