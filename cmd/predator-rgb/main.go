// Predator-rgb configures the RGB keyboard backlight of Acer Predator laptops.
//
// It writes lighting payloads to the character devices created by the
// acer-gkbbl kernel driver (/dev/acer-gkbbl-0 and /dev/acer-gkbbl-static-0).
// Settings come from flags, a saved profile, or an interactive wizard.
//
// Usage:
//
//	predator-rgb [flags]
//	predator-rgb -m wave -s 6 -y 80 -d right-to-left
//	predator-rgb --color '#ff8800' -z 1,2 --save warm
//	predator-rgb --load warm -y 40 --dry-run
//
// See 'predator-rgb --help' for all flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/logging"
	"github.com/muurk/predator-rgb/internal/ui"
	"github.com/muurk/predator-rgb/internal/version"
	"github.com/muurk/predator-rgb/internal/wizard"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, wizard.ErrAborted):
		fmt.Fprintln(os.Stderr, "Aborted.")
	case lighting.Hint(err) != "":
		ui.NewPrinter(os.Stderr).PrintError("Could not apply lighting", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "predator-rgb",
	Short: "Control Predator keyboard RGB lighting",
	Long: `Configure the four-zone RGB keyboard backlight of Acer Predator laptops.

Requires the acer-gkbbl kernel module, which exposes /dev/acer-gkbbl-0 and
/dev/acer-gkbbl-static-0. Use --dry-run to preview payloads without hardware.

Settings can be saved as named profiles and loaded later. Flags given
together with --load override the matching profile values.`,
	Example: `  # Static red on all zones
  predator-rgb --color '#ff0000'

  # Wave across the keyboard, right to left
  predator-rgb -m wave -s 6 -d right-to-left

  # Only zones 1 and 2, saved as "warm"
  predator-rgb -z 1,2 --color ff8800 --save warm

  # Reuse "warm" at 40% brightness without touching the hardware
  predator-rgb --load warm -y 40 --dry-run

  # Answer questions instead of passing flags
  predator-rgb -i`,
	Version:           version.Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runApply,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("predator-rgb %s\n", version.Full())
	},
}
