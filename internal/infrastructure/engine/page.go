package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

const (
	eventBufferSize = 64

	// errAborted is reported by Page.navigate when the policy cancelled the
	// main-frame request. Aborted requests leave the current document in
	// place instead of committing an error page.
	errAborted = "net::ERR_ABORTED"
)

var (
	desktopViewport = port.Viewport{Width: 1280, Height: 800}
	mobileViewport  = port.Viewport{Width: 412, Height: 915}
)

// Page implements port.WebPage on a Chromium target.
type Page struct {
	ctx    context.Context
	cancel context.CancelFunc

	page      *rod.Page
	owner     *rod.Browser
	incognito *rod.Browser
	opts      port.EngineOptions

	mu     sync.Mutex
	state  entity.PageState
	closed bool

	events    chan entity.PageEvent
	wg        sync.WaitGroup
	closeOnce sync.Once
	onClose   func()
}

func newPage(parent context.Context, rp *rod.Page, owner, incognito *rod.Browser, opts port.EngineOptions) *Page {
	ctx, cancel := context.WithCancel(logging.WithComponent(parent, "engine-page"))
	return &Page{
		ctx:       ctx,
		cancel:    cancel,
		page:      rp.Context(ctx),
		owner:     owner,
		incognito: incognito,
		opts:      opts,
		events:    make(chan entity.PageEvent, eventBufferSize),
	}
}

// configure applies the engine options before anything is loaded.
func (p *Page) configure(ctx context.Context, ua string) error {
	rp := p.page.Context(ctx)

	if ua != "" {
		if err := (proto.NetworkSetUserAgentOverride{UserAgent: ua}).Call(rp); err != nil {
			return fmt.Errorf("set user agent: %w", err)
		}
	}

	mobile := p.opts.ContentMode == port.ContentModeMobile
	vp := p.opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = desktopViewport
		if mobile {
			vp = mobileViewport
		}
	}
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            mobile,
	}).Call(rp); err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}
	if mobile {
		if err := (proto.EmulationSetTouchEmulationEnabled{Enabled: true}).Call(rp); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to enable touch emulation")
		}
	}

	if !p.opts.JavaScriptEnabled {
		if err := (proto.EmulationSetScriptExecutionDisabled{Value: true}).Call(rp); err != nil {
			return fmt.Errorf("disable javascript: %w", err)
		}
	}

	// Only documents are paused; subresources never reach the policy.
	if err := (proto.FetchEnable{
		Patterns: []*proto.FetchRequestPattern{{
			URLPattern:   "*",
			ResourceType: proto.NetworkResourceTypeDocument,
			RequestStage: proto.FetchRequestStageRequest,
		}},
	}).Call(rp); err != nil {
		return fmt.Errorf("enable request interception: %w", err)
	}
	return nil
}

// start subscribes to engine events. Interception and dialogs run on their
// own goroutine so a slow events consumer never stalls a navigation.
func (p *Page) start() {
	intercept := p.page.EachEvent(
		func(e *proto.FetchRequestPaused) { p.handlePaused(e) },
		func(e *proto.PageJavascriptDialogOpening) { p.handleDialog(e) },
	)
	lifecycle := p.page.EachEvent(
		func(e *proto.PageFrameStartedLoading) { p.handleStarted(e) },
		func(e *proto.PageFrameNavigated) { p.handleNavigated(e) },
		func(e *proto.PageNavigatedWithinDocument) { p.handleSameDocument(e) },
		func(e *proto.PageFrameStoppedLoading) { p.handleStopped(e) },
	)

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		defer logging.Recover(p.ctx, "engine interception")
		intercept()
	}()
	go func() {
		defer p.wg.Done()
		defer logging.Recover(p.ctx, "engine lifecycle")
		lifecycle()
	}()
}

// pausedResolver releases a request paused by the Fetch domain.
type pausedResolver interface {
	Fail(id proto.FetchRequestID, reason proto.NetworkErrorReason) error
	Continue(id proto.FetchRequestID, url string) error
}

type rodResolver struct {
	page *rod.Page
}

func (r rodResolver) Fail(id proto.FetchRequestID, reason proto.NetworkErrorReason) error {
	return proto.FetchFailRequest{RequestID: id, ErrorReason: reason}.Call(r.page)
}

func (r rodResolver) Continue(id proto.FetchRequestID, url string) error {
	return proto.FetchContinueRequest{RequestID: id, URL: url}.Call(r.page)
}

func (p *Page) handlePaused(e *proto.FetchRequestPaused) {
	resolvePaused(p.ctx, e, p.page.FrameID, p.opts, rodResolver{page: p.page})
}

// resolvePaused runs the policy on a paused document request. A cancelled
// request is aborted so the engine keeps the current page.
func resolvePaused(ctx context.Context, e *proto.FetchRequestPaused, mainFrame proto.PageFrameID, opts port.EngineOptions, r pausedResolver) {
	log := logging.FromContext(ctx)
	req := navigationRequest(e, mainFrame)

	decision := entity.NavigationAllow
	if opts.Policy != nil {
		decision = opts.Policy.DecidePolicy(ctx, req)
	}

	if decision == entity.NavigationCancel {
		if err := r.Fail(e.RequestID, proto.NetworkErrorReasonAborted); err != nil {
			log.Warn().Err(err).Msg("failed to cancel navigation")
		}
		return
	}

	// The fragment never reaches the network, so the rewrite uses the bare URL.
	target := ""
	if opts.HTTPSPolicy == port.HTTPSUpgrade && !req.IsSubframe() && e.Request != nil {
		target = upgradeToHTTPS(e.Request.URL)
	}
	if err := r.Continue(e.RequestID, target); err != nil {
		log.Warn().Err(err).Msg("failed to continue navigation")
	}
}

// handleDialog forwards alerts and acknowledges them at once. Confirm and
// prompt dialogs are dismissed; beforeunload is accepted so navigation
// proceeds.
func (p *Page) handleDialog(e *proto.PageJavascriptDialogOpening) {
	req := dialogRequest(e)

	accept := false
	switch req.Kind {
	case entity.DialogAlert:
		if p.opts.Dialog != nil {
			p.opts.Dialog.HandleJavaScriptAlert(p.ctx, req)
		}
		accept = true
	case entity.DialogBeforeUnload:
		accept = true
	default:
		logging.FromContext(p.ctx).Debug().Str("kind", string(req.Kind)).Msg("dismissing dialog")
	}

	if err := (proto.PageHandleJavaScriptDialog{Accept: accept}).Call(p.page); err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("failed to close dialog")
	}
}

func (p *Page) isMainFrame(id proto.PageFrameID) bool {
	return id == p.page.FrameID
}

func (p *Page) handleStarted(e *proto.PageFrameStartedLoading) {
	if !p.isMainFrame(e.FrameID) {
		return
	}
	p.mu.Lock()
	p.state.IsLoading = true
	ev := entity.PageEvent{Kind: entity.PageLoadStarted, NavigationID: p.state.NavigationID, URL: p.state.URL}
	p.mu.Unlock()
	p.emit(ev)
}

func (p *Page) handleNavigated(e *proto.PageFrameNavigated) {
	if e.Frame == nil || e.Frame.ParentID != "" {
		return
	}
	p.mu.Lock()
	p.state.URL = e.Frame.URL
	p.state.NavigationID = entity.NavigationID(e.Frame.LoaderID)
	ev := entity.PageEvent{Kind: entity.PageLoadCommitted, NavigationID: p.state.NavigationID, URL: p.state.URL}
	p.mu.Unlock()
	p.emit(ev)
}

func (p *Page) handleSameDocument(e *proto.PageNavigatedWithinDocument) {
	if !p.isMainFrame(e.FrameID) {
		return
	}
	p.mu.Lock()
	p.state.URL = e.URL
	ev := entity.PageEvent{Kind: entity.PageLoadCommitted, NavigationID: p.state.NavigationID, URL: e.URL}
	p.mu.Unlock()
	p.emit(ev)
}

func (p *Page) handleStopped(e *proto.PageFrameStoppedLoading) {
	if !p.isMainFrame(e.FrameID) {
		return
	}
	title := ""
	if info, err := p.page.Info(); err == nil {
		title = info.Title
	}

	p.mu.Lock()
	p.state.IsLoading = false
	if title != "" {
		p.state.Title = title
	}
	ev := entity.PageEvent{Kind: entity.PageLoadFinished, NavigationID: p.state.NavigationID, URL: p.state.URL, Title: p.state.Title}
	p.mu.Unlock()
	p.emit(ev)
}

func (p *Page) emit(ev entity.PageEvent) {
	select {
	case p.events <- ev:
	case <-p.ctx.Done():
	}
}

func (p *Page) checkOpen() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return port.ErrPageClosed
	}
	return nil
}

// Load navigates the main frame. A navigation cancelled by the policy is
// not an error.
func (p *Page) Load(ctx context.Context, url string) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	res, err := proto.PageNavigate{URL: url}.Call(p.page.Context(ctx))
	if err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	switch res.ErrorText {
	case "":
		return nil
	case errAborted:
		logging.FromContext(ctx).Debug().Str("url", url).Msg("initial navigation cancelled by policy")
		return nil
	default:
		p.emit(entity.PageEvent{Kind: entity.PageLoadFailed, URL: url, Err: res.ErrorText})
		return fmt.Errorf("navigate: %s", res.ErrorText)
	}
}

func (p *Page) State(ctx context.Context) (entity.PageState, error) {
	if err := p.checkOpen(); err != nil {
		return entity.PageState{}, err
	}
	p.mu.Lock()
	st := p.state
	p.mu.Unlock()

	if st.Title == "" {
		if info, err := p.page.Context(ctx).Info(); err == nil {
			st.Title = info.Title
		}
	}
	if list, err := p.BackForwardList(ctx); err == nil {
		st.CanGoBack = len(list.BackList) > 0
		st.CanGoForward = len(list.ForwardList) > 0
	}
	return st, nil
}

func (p *Page) BackForwardList(ctx context.Context) (entity.BackForwardList, error) {
	if err := p.checkOpen(); err != nil {
		return entity.BackForwardList{}, err
	}
	res, err := proto.PageGetNavigationHistory{}.Call(p.page.Context(ctx))
	if err != nil {
		return entity.BackForwardList{}, fmt.Errorf("navigation history: %w", err)
	}
	return backForwardList(res), nil
}

func (p *Page) GoTo(ctx context.Context, item entity.HistoryItem) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	return proto.PageNavigateToHistoryEntry{EntryID: item.ID}.Call(p.page.Context(ctx))
}

func (p *Page) CallJavaScript(ctx context.Context, body string, args map[string]any) (any, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	js, _, values := callFunction(body, args)
	obj, err := p.page.Context(ctx).Evaluate(rod.Eval(js, values...).ByPromise())
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	if obj == nil || obj.Value.Nil() {
		return nil, nil
	}
	return obj.Value.Val(), nil
}

func (p *Page) PDF(ctx context.Context, printBackground bool) ([]byte, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	r, err := p.page.Context(ctx).PDF(&proto.PagePrintToPDF{PrintBackground: printBackground})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}

func (p *Page) Snapshot(ctx context.Context) ([]byte, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	data, err := p.page.Context(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return data, nil
}

func (p *Page) Cookies(ctx context.Context) ([]entity.Cookie, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	raw, err := p.owner.Context(ctx).GetCookies()
	if err != nil {
		return nil, fmt.Errorf("get cookies: %w", err)
	}
	out := make([]entity.Cookie, 0, len(raw))
	for _, c := range raw {
		out = append(out, cookieFromProto(c))
	}
	return out, nil
}

func (p *Page) SetCookie(ctx context.Context, cookie entity.Cookie) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	// SetCookies with an empty slice clears the store.
	if err := p.owner.Context(ctx).SetCookies([]*proto.NetworkCookieParam{cookieToProto(cookie)}); err != nil {
		return fmt.Errorf("set cookie: %w", err)
	}
	return nil
}

func (p *Page) ScrollOffset(ctx context.Context) (float64, error) {
	if err := p.checkOpen(); err != nil {
		return 0, err
	}
	obj, err := p.page.Context(ctx).Evaluate(rod.Eval(`() => window.scrollY`))
	if err != nil {
		return 0, fmt.Errorf("read scroll offset: %w", err)
	}
	return obj.Value.Num(), nil
}

func (p *Page) ScrollToTop(ctx context.Context) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	_, err := p.page.Context(ctx).Evaluate(rod.Eval(`() => window.scrollTo({top: 0, left: 0, behavior: 'instant'})`))
	return err
}

func (p *Page) Events() <-chan entity.PageEvent {
	return p.events
}

// Close closes the target and, for a non-persistent store, its browser
// context. The events channel is closed once the subscriptions stop.
func (p *Page) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		err = p.page.Close()
		p.cancel()
		p.wg.Wait()
		close(p.events)

		if p.incognito != nil {
			if cerr := p.incognito.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if p.onClose != nil {
			p.onClose()
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var _ port.WebPage = (*Page)(nil)
