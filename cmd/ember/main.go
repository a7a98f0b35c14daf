package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember runtime heap tooling",
	Long:  `Ember heap tooling: walk demo heaps and inspect checkpoint streams`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkpointCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("trace-level", "off", "traversal tracing (off|pass|region|debug)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
