// Package cmd provides Cobra CLI commands for pagehost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/cli"
	"github.com/bnema/pagehost/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "pagehost",
		Short: "Host a web page in your terminal",
		Long: `pagehost drives a Chromium page over the DevTools protocol and hosts it
from a terminal UI.

Navigation stays on the home site: links to other hosts are cancelled and
handed to your system browser. Alerts raised by the page show up as a
modal in the terminal.

Use 'pagehost browse' to start the interactive host, or explore the
subcommands for one-shot operations like exporting a page or inspecting
the navigation log.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command. The app is closed even when the command
// fails so queued navigation records are flushed.
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		_ = app.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
