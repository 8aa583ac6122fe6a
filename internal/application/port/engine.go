// Package port defines the interfaces use cases need from infrastructure adapters.
package port

import (
	"context"
	"errors"

	"github.com/bnema/pagehost/internal/domain/entity"
)

// ErrPageClosed is returned by WebPage methods once the page is closed.
var ErrPageClosed = errors.New("page closed")

// ContentMode selects the content the engine requests from sites.
type ContentMode string

const (
	ContentModeDesktop ContentMode = "desktop"
	ContentModeMobile  ContentMode = "mobile"
)

// HTTPSPolicy controls how the engine treats plain-http navigations.
type HTTPSPolicy string

const (
	// HTTPSKeepAsRequested loads URLs with the scheme they were given.
	HTTPSKeepAsRequested HTTPSPolicy = "keep"
	// HTTPSUpgrade rewrites http navigations to https.
	HTTPSUpgrade HTTPSPolicy = "upgrade"
)

// Viewport is the page size in CSS pixels.
type Viewport struct {
	Width  int
	Height int
}

// NavigationPolicy decides every navigation attempt the engine reports.
// Implementations must be safe for concurrent use.
type NavigationPolicy interface {
	DecidePolicy(ctx context.Context, req entity.NavigationRequest) entity.NavigationDecision
}

// DialogHandler receives in-page alert dialogs. It must not block.
type DialogHandler interface {
	HandleJavaScriptAlert(ctx context.Context, req entity.DialogRequest)
}

// EngineOptions configures a page at creation time.
type EngineOptions struct {
	Policy NavigationPolicy
	Dialog DialogHandler

	// UserAgent replaces the engine user agent entirely when set.
	UserAgent string
	// ApplicationName is appended to the engine user agent when UserAgent is empty.
	ApplicationName string

	ContentMode         ContentMode
	JavaScriptEnabled   bool
	HTTPSPolicy         HTTPSPolicy
	PersistentDataStore bool
	Viewport            Viewport
}

// WebEngine is the external rendering engine.
type WebEngine interface {
	// NewPage creates a page configured with opts. Policy and Dialog are
	// consulted for the lifetime of the page.
	NewPage(ctx context.Context, opts EngineOptions) (WebPage, error)

	// Close shuts the engine down, closing every page.
	Close() error
}

// WebPage is one rendering surface of the engine.
type WebPage interface {
	// Load starts a main-frame navigation to url. It returns once the
	// request is issued; progress is reported through Events.
	Load(ctx context.Context, url string) error

	// State returns the current observable page state.
	State(ctx context.Context) (entity.PageState, error)

	// BackForwardList returns session history around the current item.
	BackForwardList(ctx context.Context) (entity.BackForwardList, error)

	// GoTo loads a history item.
	GoTo(ctx context.Context, item entity.HistoryItem) error

	// CallJavaScript runs body as an async function with args bound to
	// named parameters and returns the decoded result (nil for null).
	CallJavaScript(ctx context.Context, body string, args map[string]any) (any, error)

	// PDF renders the page to a PDF document.
	PDF(ctx context.Context, printBackground bool) ([]byte, error)

	// Snapshot renders the visible page to a PNG image.
	Snapshot(ctx context.Context) ([]byte, error)

	// Cookies lists the cookies of the page's data store.
	Cookies(ctx context.Context) ([]entity.Cookie, error)

	// SetCookie stores a cookie in the page's data store.
	SetCookie(ctx context.Context, cookie entity.Cookie) error

	// ScrollOffset returns the vertical scroll offset in CSS pixels.
	ScrollOffset(ctx context.Context) (float64, error)

	// ScrollToTop scrolls the main frame to the top.
	ScrollToTop(ctx context.Context) error

	// Events delivers main-frame load transitions. The channel is closed
	// when the page is closed.
	Events() <-chan entity.PageEvent

	Close() error
}
