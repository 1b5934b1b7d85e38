package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ae *errors.AnimateError
		if errors.As(err, &ae) {
			errors.PrintError(ae)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// globalFlags are shared by every command.
type globalFlags struct {
	config   string
	settings string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "animate",
		Short: "Scroll animation attributes for server-rendered pages",
		Long: `animate computes AOS scroll animation attributes against global
settings, serves a demo and JSON API, and rewrites existing HTML
documents by CSS selector.

Global settings are read from animate.json ("settings" section), a
settings file given with --settings, or the library defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to animate.json or its directory (default: search upwards)")
	rootCmd.PersistentFlags().StringVar(&flags.settings, "settings", "", "Settings JSON file, overrides animate.json")

	rootCmd.AddCommand(
		initCmd(),
		serveCmd(&flags),
		attrsCmd(&flags),
		payloadCmd(&flags),
		vocabCmd(),
		applyCmd(&flags),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
