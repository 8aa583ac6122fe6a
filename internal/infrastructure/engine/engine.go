// Package engine drives Chromium over the DevTools protocol with go-rod and
// exposes it as port.WebEngine.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// Config controls how the browser process is obtained.
type Config struct {
	// ControlURL connects to an already running browser when set.
	ControlURL string
	// Bin is the browser executable; empty lets the launcher find or
	// download one.
	Bin      string
	Headless bool
	// UserDataDir backs the persistent data store.
	UserDataDir string
}

// Engine implements port.WebEngine.
type Engine struct {
	browser *rod.Browser
	ctx     context.Context

	launcher      *launcher.Launcher
	// removeProfile is set when the launcher owns a temporary profile.
	removeProfile bool

	mu    sync.Mutex
	pages map[*Page]struct{}
}

// Launch starts (or connects to) a browser.
func Launch(ctx context.Context, cfg Config) (*Engine, error) {
	log := logging.FromContext(ctx)

	e := &Engine{ctx: ctx, pages: make(map[*Page]struct{})}

	controlURL := cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Context(ctx).Headless(cfg.Headless)
		if cfg.Bin != "" {
			l = l.Bin(cfg.Bin)
		}
		if cfg.UserDataDir != "" {
			l = l.UserDataDir(cfg.UserDataDir)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
		e.launcher = l
		e.removeProfile = cfg.UserDataDir == ""
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		e.killLauncher()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	e.browser = browser

	log.Debug().Bool("launched", e.launcher != nil).Bool("headless", cfg.Headless).Msg("browser connected")
	return e, nil
}

// BaseUserAgent returns the browser's own user agent.
func (e *Engine) BaseUserAgent() (string, error) {
	v, err := proto.BrowserGetVersion{}.Call(e.browser)
	if err != nil {
		return "", err
	}
	return v.UserAgent, nil
}

// NewPage opens a page configured with opts.
func (e *Engine) NewPage(ctx context.Context, opts port.EngineOptions) (port.WebPage, error) {
	owner := e.browser
	var incognito *rod.Browser
	if !opts.PersistentDataStore {
		b, err := e.browser.Incognito()
		if err != nil {
			return nil, fmt.Errorf("create non-persistent data store: %w", err)
		}
		owner, incognito = b, b
	}

	rp, err := owner.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		if incognito != nil {
			_ = incognito.Close()
		}
		return nil, fmt.Errorf("create page: %w", err)
	}

	base, err := e.BaseUserAgent()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read browser user agent")
	}

	p := newPage(e.ctx, rp, owner, incognito, opts)
	if err := p.configure(ctx, userAgent(opts.UserAgent, base, opts.ApplicationName)); err != nil {
		_ = p.Close()
		return nil, err
	}
	p.start()

	e.mu.Lock()
	e.pages[p] = struct{}{}
	e.mu.Unlock()
	p.onClose = func() {
		e.mu.Lock()
		delete(e.pages, p)
		e.mu.Unlock()
	}
	return p, nil
}

// Close closes every page, then the browser.
func (e *Engine) Close() error {
	e.mu.Lock()
	pages := make([]*Page, 0, len(e.pages))
	for p := range e.pages {
		pages = append(pages, p)
	}
	e.mu.Unlock()

	for _, p := range pages {
		_ = p.Close()
	}

	var err error
	if e.browser != nil {
		if e.launcher != nil {
			err = e.browser.Close()
		}
	}
	e.killLauncher()
	return err
}

func (e *Engine) killLauncher() {
	if e.launcher != nil {
		e.launcher.Kill()
		if e.removeProfile {
			e.launcher.Cleanup()
		}
	}
}

var _ port.WebEngine = (*Engine)(nil)
