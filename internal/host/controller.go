// Package host drives one engine page on behalf of the terminal UI: it owns
// the navigation decider and dialog presenter, reacts to page changes and
// exposes a snapshot of everything the view renders.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/policy"
	"github.com/bnema/pagehost/internal/logging"
)

const defaultScrollPollInterval = 250 * time.Millisecond

// Deps are the collaborators of a Controller.
type Deps struct {
	Engine     port.WebEngine
	Opener     port.ExternalOpener
	Validator  port.ScriptValidator
	FileSystem port.FileSystem
	// DescriptionCache may be nil.
	DescriptionCache port.Cache[string, string]
	// NavigationLog may be nil, which disables the audit trail.
	NavigationLog *usecase.NavigationLogUseCase
}

// Config carries the host settings.
type Config struct {
	HomeURL   string
	SessionID string
	// Engine options; Policy and Dialog are filled in by the controller.
	Engine          port.EngineOptions
	Injection       usecase.InjectStyleConfig
	ExportDir       string
	PrintBackground bool
	// ScrollPollInterval defaults to 250ms.
	ScrollPollInterval time.Duration
}

// Snapshot is the state the view renders.
type Snapshot struct {
	State          entity.PageState
	Description    string
	HasDescription bool
	Scroll         usecase.ScrollState
	// Background reports whether the injected content background is shown.
	Background bool
	// Alert is pending until DismissAlert is called.
	Alert    string
	HasAlert bool
	// Err is the last action error, cleared by the next successful action.
	Err error
}

// Controller owns the page and everything that reacts to it.
type Controller struct {
	cfg Config

	decider   *policy.NavigationDecider
	presenter *policy.DialogPresenter
	urlSlot   policy.URLSlot
	alertSlot policy.AlertSlot
	navLog    *usecase.NavigationLogUseCase

	openUC     *usecase.OpenPageUseCase
	historyUC  *usecase.HistoryNavigationUseCase
	injectUC   *usecase.InjectStyleUseCase
	describeUC *usecase.GetPageDescriptionUseCase
	exportUC   *usecase.ExportPageUseCase
	cookiesUC  *usecase.ManageCookiesUseCase
	scrollUC   *usecase.ScrollTrackerUseCase
	externalUC *usecase.OpenExternalURLUseCase

	mu             sync.RWMutex
	page           port.WebPage
	state          entity.PageState
	lastChange     entity.PageChange
	description    string
	hasDescription bool
	lastErr        error

	changed chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	closed  sync.Once
}

// New validates the home URL and builds the controller. No page exists
// until Start.
func New(ctx context.Context, deps Deps, cfg Config) (*Controller, error) {
	if deps.Engine == nil {
		return nil, errors.New("host: engine is required")
	}
	if cfg.ScrollPollInterval <= 0 {
		cfg.ScrollPollInterval = defaultScrollPollInterval
	}

	urlSlot := policy.NewURLSlot()
	alertSlot := policy.NewAlertSlot()

	decider, err := policy.NewNavigationDecider(cfg.HomeURL, urlSlot)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("home_host", decider.HomeHost()).
		Msg("creating host controller")

	return &Controller{
		cfg:        cfg,
		decider:    decider,
		presenter:  policy.NewDialogPresenter(alertSlot),
		urlSlot:    urlSlot,
		alertSlot:  alertSlot,
		navLog:     deps.NavigationLog,
		openUC:     usecase.NewOpenPageUseCase(deps.Engine),
		historyUC:  usecase.NewHistoryNavigationUseCase(),
		injectUC:   usecase.NewInjectStyleUseCase(deps.Validator, cfg.Injection),
		describeUC: usecase.NewGetPageDescriptionUseCase(deps.Validator, deps.DescriptionCache),
		exportUC:   usecase.NewExportPageUseCase(deps.FileSystem, cfg.ExportDir, cfg.PrintBackground),
		cookiesUC:  usecase.NewManageCookiesUseCase(),
		scrollUC:   usecase.NewScrollTrackerUseCase(),
		externalUC: usecase.NewOpenExternalURLUseCase(deps.Opener),
		changed:    make(chan struct{}, 1),
	}, nil
}

// Options returns the engine options the page is created with.
func (c *Controller) Options() port.EngineOptions {
	opts := c.cfg.Engine
	opts.Policy = c.decider
	if c.navLog != nil {
		opts.Policy = c.navLog.Wrap(c.decider, c.cfg.SessionID)
	}
	opts.Dialog = c.presenter
	return opts
}

// Start creates the page, loads the home URL and starts the background
// loops. They stop when ctx is cancelled or Close is called.
func (c *Controller) Start(ctx context.Context) error {
	out, err := c.openUC.Execute(ctx, usecase.OpenPageInput{
		URL:     c.decider.HomeURL(),
		Options: c.Options(),
	})
	if err != nil {
		return fmt.Errorf("open home page: %w", err)
	}

	c.mu.Lock()
	c.page = out.Page
	c.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(3)
	go c.eventLoop(loopCtx, out.Page)
	go c.slotLoop(loopCtx)
	go c.scrollLoop(loopCtx)
	return nil
}

// Close stops the loops and closes the page.
func (c *Controller) Close() error {
	var err error
	c.closed.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.mu.RLock()
		page := c.page
		c.mu.RUnlock()
		if page != nil {
			err = page.Close()
		}
		c.wg.Wait()
	})
	return err
}

// Changed is signalled whenever the snapshot may have changed.
func (c *Controller) Changed() <-chan struct{} {
	return c.changed
}

func (c *Controller) notify() {
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// Snapshot returns the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	snap := Snapshot{
		State:          c.state,
		Description:    c.description,
		HasDescription: c.hasDescription,
		Err:            c.lastErr,
	}
	c.mu.RUnlock()

	snap.Scroll = c.scrollUC.State()
	snap.Background = c.injectUC.Enabled()
	snap.Alert, snap.HasAlert = c.alertSlot.Peek()
	return snap
}

// HomeHost is the host navigation is scoped to.
func (c *Controller) HomeHost() string {
	return c.decider.HomeHost()
}

func (c *Controller) currentPage() port.WebPage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) eventLoop(ctx context.Context, page port.WebPage) {
	defer c.wg.Done()
	defer logging.Recover(ctx, "host event loop")

	events := page.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handleEvent(ctx, page, ev)
		}
	}
}

func (c *Controller) handleEvent(ctx context.Context, page port.WebPage, ev entity.PageEvent) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("kind", ev.Kind.String()).
		Str("navigation_id", string(ev.NavigationID)).
		Str("url", logging.TruncateURL(ev.URL, 60)).
		Msg("page event")

	if ev.Kind == entity.PageLoadFailed {
		c.setErr(fmt.Errorf("load %s: %s", ev.URL, ev.Err))
	}

	state, err := page.State(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read page state")
		return
	}

	c.mu.Lock()
	prevNav := c.state.NavigationID
	c.state = state
	c.mu.Unlock()

	if state.NavigationID != prevNav {
		c.scrollUC.Reset()
	}
	c.notify()

	// Same-document navigations commit without a load.
	settled := ev.Kind == entity.PageLoadFinished ||
		(ev.Kind == entity.PageLoadCommitted && !state.IsLoading)
	if settled {
		c.onPageChange(ctx, page, state.Change())
	}
}

// onPageChange injects the stylesheet and reads the description once per
// distinct (navigation id, url). Nothing happens before the first
// navigation id exists.
func (c *Controller) onPageChange(ctx context.Context, page port.WebPage, change entity.PageChange) {
	if change.NavigationID == "" {
		return
	}

	c.mu.Lock()
	if change == c.lastChange {
		c.mu.Unlock()
		return
	}
	c.lastChange = change
	c.description, c.hasDescription = "", false
	c.mu.Unlock()

	var (
		desc  string
		found bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.injectUC.Execute(gctx, page)
	})
	g.Go(func() error {
		desc, found = c.describeUC.Execute(gctx, page, change.URL)
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to inject stylesheet")
	}

	c.mu.Lock()
	if c.lastChange == change {
		c.description, c.hasDescription = desc, found
	}
	c.mu.Unlock()
	c.notify()
}

// slotLoop consumes the decider and presenter slots.
func (c *Controller) slotLoop(ctx context.Context) {
	defer c.wg.Done()
	defer logging.Recover(ctx, "host slot loop")

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.urlSlot.Ready():
			target, ok := c.urlSlot.Take()
			if !ok {
				continue
			}
			if err := c.externalUC.Execute(ctx, target); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("url", target).Msg("failed to open external url")
				c.setErr(err)
			}
		case <-c.alertSlot.Ready():
			// The alert stays in the slot until DismissAlert.
			c.notify()
		}
	}
}

func (c *Controller) scrollLoop(ctx context.Context) {
	defer c.wg.Done()
	defer logging.Recover(ctx, "host scroll loop")

	ticker := time.NewTicker(c.cfg.ScrollPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			page := c.currentPage()
			if page == nil {
				continue
			}
			if _, changed, err := c.scrollUC.Poll(ctx, page); err != nil {
				if errors.Is(err, port.ErrPageClosed) {
					return
				}
				logging.FromContext(ctx).Trace().Err(err).Msg("scroll poll failed")
			} else if changed {
				c.notify()
			}
		}
	}
}

// DismissAlert clears the pending alert.
func (c *Controller) DismissAlert() {
	c.alertSlot.Clear()
	c.notify()
}

// Back loads the last item of the back list.
func (c *Controller) Back(ctx context.Context) error {
	return c.navigateHistory(ctx, usecase.HistoryBack)
}

// Forward loads the first item of the forward list.
func (c *Controller) Forward(ctx context.Context) error {
	return c.navigateHistory(ctx, usecase.HistoryForward)
}

func (c *Controller) navigateHistory(ctx context.Context, dir usecase.HistoryDirection) error {
	page := c.currentPage()
	if page == nil {
		return usecase.ErrNoPage
	}
	_, err := c.historyUC.Execute(ctx, page, dir)
	c.setErr(err)
	return err
}

// ScrollToTop scrolls the page back to the top.
func (c *Controller) ScrollToTop(ctx context.Context) error {
	err := c.scrollUC.ScrollToTop(ctx, c.currentPage())
	c.setErr(err)
	return err
}

// ToggleBackground shows or hides the injected content background on the
// current page and for later page changes. It returns the new state.
func (c *Controller) ToggleBackground(ctx context.Context) (bool, error) {
	shown, err := c.injectUC.Toggle(ctx, c.currentPage())
	logging.FromContext(ctx).Debug().Bool("shown", shown).Msg("content background toggled")
	c.setErr(err)
	return shown, err
}

// Export renders the current page in formats.
func (c *Controller) Export(ctx context.Context, formats []entity.ExportFormat) (*usecase.ExportPageOutput, error) {
	snap := c.Snapshot()
	out, err := c.exportUC.Execute(ctx, usecase.ExportPageInput{
		Page:    c.currentPage(),
		Formats: formats,
		Title:   snap.State.Title,
		URL:     snap.State.URL,
	})
	c.setErr(err)
	return out, err
}

// Cookies lists cookies of the page's data store, filtered by domain when
// domain is not empty.
func (c *Controller) Cookies(ctx context.Context, domain string) ([]entity.Cookie, error) {
	return c.cookiesUC.List(ctx, c.currentPage(), domain)
}

// SetCookie stores cookie in the page's data store.
func (c *Controller) SetCookie(ctx context.Context, cookie entity.Cookie) error {
	err := c.cookiesUC.Set(ctx, c.currentPage(), cookie)
	c.setErr(err)
	return err
}
