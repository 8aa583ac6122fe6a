// Package desktop hands URLs to the desktop environment.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// ErrNoOpener is returned when no URL handler is installed.
var ErrNoOpener = errors.New("no url opener available")

// Opener implements port.ExternalOpener with xdg-open (or open on darwin).
type Opener struct {
	path string
	// start is swapped in tests.
	start func(cmd *exec.Cmd) error
}

// NewOpener detects the platform URL handler. A missing handler is reported
// by Open, not here, so the host can still start.
func NewOpener() *Opener {
	o := &Opener{start: startDetached}
	if path, err := exec.LookPath(handlerName(runtime.GOOS)); err == nil {
		o.path = path
	}
	return o
}

func handlerName(goos string) string {
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// Open launches the handler for url without waiting for it to exit.
func (o *Opener) Open(ctx context.Context, url string) error {
	if o.path == "" {
		return ErrNoOpener
	}
	// The handler outlives ctx, so the command is not bound to it.
	cmd := exec.Command(o.path, url)
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("open %s: %w", logging.TruncateURL(url, 60), err)
	}

	pid := 0
	if cmd.Process != nil {
		pid = cmd.Process.Pid
	}
	logging.FromContext(ctx).Info().
		Str("url", logging.TruncateURL(url, 60)).
		Int("pid", pid).
		Msg("opened url externally")
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Release so the handler keeps running after we exit.
	return cmd.Process.Release()
}

var _ port.ExternalOpener = (*Opener)(nil)
