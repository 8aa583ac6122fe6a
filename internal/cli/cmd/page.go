package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/policy"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
	"github.com/bnema/pagehost/internal/infrastructure/engine"
	"github.com/bnema/pagehost/internal/logging"
)

const defaultLoadTimeout = 30 * time.Second

// signalContext is the app context cancelled on SIGINT/SIGTERM.
func signalContext(a *cli.App) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
}

// loadedPage is a page opened for one non-interactive command.
type loadedPage struct {
	engine *engine.Engine
	page   port.WebPage
	url    string
}

// openLoadedPage launches the engine, loads rawURL scoped to its own host
// and waits until the main frame finished loading.
func openLoadedPage(ctx context.Context, a *cli.App, rawURL string, timeout time.Duration) (*loadedPage, error) {
	target := urlutil.Normalize(rawURL)
	decider, err := policy.NewNavigationDecider(target, nil)
	if err != nil {
		return nil, err
	}

	eng, err := engine.Launch(ctx, a.EngineConfig())
	if err != nil {
		return nil, err
	}

	opts := a.EngineOptions()
	opts.Policy = decider
	out, err := usecase.NewOpenPageUseCase(eng).Execute(ctx, usecase.OpenPageInput{URL: target, Options: opts})
	if err != nil {
		_ = eng.Close()
		return nil, err
	}

	lp := &loadedPage{engine: eng, page: out.Page, url: out.URL}
	if err := waitForLoad(ctx, out.Page, timeout); err != nil {
		lp.Close(ctx)
		return nil, err
	}
	return lp, nil
}

// Close closes the page and the engine.
func (p *loadedPage) Close(ctx context.Context) {
	if err := p.page.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("page close failed")
	}
	if err := p.engine.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("engine close failed")
	}
}

// waitForLoad blocks until page reports a finished or failed main-frame load.
func waitForLoad(ctx context.Context, page port.WebPage, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	events := page.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return fmt.Errorf("page did not finish loading within %s", timeout)
		case ev, ok := <-events:
			if !ok {
				return port.ErrPageClosed
			}
			switch ev.Kind {
			case entity.PageLoadFinished:
				return nil
			case entity.PageLoadFailed:
				return fmt.Errorf("load %s: %s", ev.URL, ev.Err)
			}
		}
	}
}
