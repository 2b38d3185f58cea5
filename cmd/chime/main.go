// chime plays sound alerts and raises desktop notifications for coding
// assistant hook events. Run with no arguments it acts as the hook
// handler: one JSON event on stdin, side effects out, exit 0. Subcommands
// control pausing and sound pack selection.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"chime/internal/config"
	"chime/internal/hook"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "chime",
	Short: "Sound alerts for coding assistant hooks",
	Long: `chime turns coding assistant lifecycle events into sound alerts,
terminal title updates, and desktop notifications. It is CESP-compatible:
sound packs are directories with an openpeon.json manifest.

Without a subcommand, chime reads one hook event as JSON from stdin and
handles it. This is the mode the assistant's hook configuration invokes.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runHook,
}

// runHook is hook mode: always succeeds, whatever happens inside.
func runHook(cmd *cobra.Command, args []string) error {
	dir := config.BaseDir()
	_ = config.Seed(dir)

	raw, err := io.ReadAll(os.Stdin)
	if err != nil || len(raw) == 0 {
		return nil
	}

	hook.New(dir).Handle(raw)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
