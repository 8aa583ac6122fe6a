// Command pagehost hosts a web page from the terminal.
package main

import (
	"context"
	"runtime"

	"github.com/bnema/pagehost/internal/cli/cmd"
	"github.com/bnema/pagehost/internal/domain/build"
	"github.com/bnema/pagehost/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	prepareCrashDumps(logging.WithContext(context.Background(), logging.NewFromEnv()))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Shows help if no subcommand
	cmd.Execute()
}
