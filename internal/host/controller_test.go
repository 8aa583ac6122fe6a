package host_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/application/port"
	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/policy"
	"github.com/bnema/pagehost/internal/host"
	"github.com/bnema/pagehost/internal/logging"
)

const homeURL = "https://home.example/start"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// pageState is a mutable PageState the page mock reports.
type pageState struct {
	mu sync.Mutex
	st entity.PageState
}

func (s *pageState) set(st entity.PageState) {
	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
}

func (s *pageState) get(context.Context) (entity.PageState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st, nil
}

type fixture struct {
	ctrl   *host.Controller
	page   *portmocks.MockWebPage
	opener *portmocks.MockExternalOpener
	events chan entity.PageEvent
	state  *pageState
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := testContext()

	engine := portmocks.NewMockWebEngine(t)
	page := portmocks.NewMockWebPage(t)
	opener := portmocks.NewMockExternalOpener(t)
	events := make(chan entity.PageEvent, 8)
	state := &pageState{}

	engine.EXPECT().NewPage(mock.Anything, mock.Anything).Return(page, nil)
	page.EXPECT().Load(mock.Anything, homeURL).Return(nil)
	page.EXPECT().Events().Return((<-chan entity.PageEvent)(events))
	page.EXPECT().State(mock.Anything).RunAndReturn(state.get).Maybe()
	page.EXPECT().ScrollOffset(mock.Anything).Return(0, nil).Maybe()
	page.EXPECT().Close().Return(nil)

	ctrl, err := host.New(ctx, host.Deps{Engine: engine, Opener: opener}, host.Config{
		HomeURL:            homeURL,
		SessionID:          "test",
		Engine:             port.EngineOptions{ContentMode: port.ContentModeMobile, JavaScriptEnabled: true},
		Injection:          usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "rgba(255, 255, 191)"},
		ScrollPollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start(ctx))
	t.Cleanup(func() { _ = ctrl.Close() })

	return &fixture{ctrl: ctrl, page: page, opener: opener, events: events, state: state}
}

func isInjection(args map[string]any) bool {
	_, ok := args["css"]
	return ok
}

func TestNew_RejectsHomeURLWithoutHost(t *testing.T) {
	engine := portmocks.NewMockWebEngine(t)
	_, err := host.New(testContext(), host.Deps{Engine: engine}, host.Config{HomeURL: "/relative"})
	assert.ErrorIs(t, err, policy.ErrInvalidHomeURL)
}

func TestController_OptionsCarryPolicyAndDialog(t *testing.T) {
	engine := portmocks.NewMockWebEngine(t)
	ctrl, err := host.New(testContext(), host.Deps{Engine: engine}, host.Config{
		HomeURL: homeURL,
		Engine:  port.EngineOptions{UserAgent: "ua", JavaScriptEnabled: true},
	})
	require.NoError(t, err)

	opts := ctrl.Options()
	assert.NotNil(t, opts.Policy)
	assert.NotNil(t, opts.Dialog)
	assert.Equal(t, "ua", opts.UserAgent)
	assert.Equal(t, "home.example", ctrl.HomeHost())

	ctx := testContext()
	assert.Equal(t, entity.NavigationAllow, opts.Policy.DecidePolicy(ctx, entity.NavigationRequest{URL: "https://HOME.example/other"}))
}

func TestController_PageChangeInjectsAndDescribes(t *testing.T) {
	f := newFixture(t)

	var mu sync.Mutex
	injected := 0
	f.page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, args map[string]any) (any, error) {
			if isInjection(args) {
				mu.Lock()
				injected++
				mu.Unlock()
				return nil, nil
			}
			return "A page about things", nil
		}).Times(2)

	f.state.set(entity.PageState{URL: homeURL, NavigationID: "n1", Title: "Home"})
	f.events <- entity.PageEvent{Kind: entity.PageLoadFinished, NavigationID: "n1", URL: homeURL}

	require.Eventually(t, func() bool {
		return f.ctrl.Snapshot().HasDescription
	}, time.Second, 5*time.Millisecond)

	snap := f.ctrl.Snapshot()
	assert.Equal(t, "A page about things", snap.Description)
	assert.Equal(t, "Home", snap.State.Title)

	// The same (navigation id, url) does not trigger again.
	f.events <- entity.PageEvent{Kind: entity.PageLoadFinished, NavigationID: "n1", URL: homeURL}
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, injected)
	mu.Unlock()
}

func TestController_SameDocumentChangeTriggers(t *testing.T) {
	f := newFixture(t)

	var calls atomic.Int32
	f.page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, map[string]any) (any, error) {
			calls.Add(1)
			return nil, nil
		}).Times(4)

	f.state.set(entity.PageState{URL: homeURL, NavigationID: "n1"})
	f.events <- entity.PageEvent{Kind: entity.PageLoadFinished, NavigationID: "n1", URL: homeURL}
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	// A fragment change keeps the navigation id but changes the url.
	f.state.set(entity.PageState{URL: homeURL + "#section", NavigationID: "n1"})
	f.events <- entity.PageEvent{Kind: entity.PageLoadCommitted, NavigationID: "n1", URL: homeURL + "#section"}
	assert.Eventually(t, func() bool { return calls.Load() == 4 }, time.Second, 5*time.Millisecond)
}

func TestController_NoNavigationIDNoInjection(t *testing.T) {
	f := newFixture(t)

	f.state.set(entity.PageState{URL: homeURL})
	f.events <- entity.PageEvent{Kind: entity.PageLoadFinished, URL: homeURL}

	assert.Eventually(t, func() bool {
		return f.ctrl.Snapshot().State.URL == homeURL
	}, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.False(t, f.ctrl.Snapshot().HasDescription)
}

func TestController_LoadFailureSurfacesError(t *testing.T) {
	f := newFixture(t)

	f.state.set(entity.PageState{URL: homeURL})
	f.events <- entity.PageEvent{Kind: entity.PageLoadFailed, URL: "https://home.example/x", Err: "net::ERR_CONNECTION_REFUSED"}

	require.Eventually(t, func() bool {
		return f.ctrl.Snapshot().Err != nil
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, f.ctrl.Snapshot().Err.Error(), "ERR_CONNECTION_REFUSED")
}

func TestController_ExternalURLOpenedAndSlotRearmed(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	opened := make(chan string, 2)
	f.opener.EXPECT().Open(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, u string) error {
			opened <- u
			return nil
		}).Times(2)

	decide := f.ctrl.Options().Policy.DecidePolicy
	assert.Equal(t, entity.NavigationCancel, decide(ctx, entity.NavigationRequest{URL: "https://elsewhere.example/a"}))

	select {
	case u := <-opened:
		assert.Equal(t, "https://elsewhere.example/a", u)
	case <-time.After(time.Second):
		t.Fatal("external url not opened")
	}

	// Take ran before Open, so the slot is armed again.
	assert.Equal(t, entity.NavigationCancel, decide(ctx, entity.NavigationRequest{URL: "https://elsewhere.example/b"}))
	select {
	case u := <-opened:
		assert.Equal(t, "https://elsewhere.example/b", u)
	case <-time.After(time.Second):
		t.Fatal("second external url not opened")
	}
}

func TestController_AlertPendingUntilDismissed(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	f.ctrl.Options().Dialog.HandleJavaScriptAlert(ctx, entity.DialogRequest{Kind: entity.DialogAlert, Message: "Hello"})

	require.Eventually(t, func() bool {
		return f.ctrl.Snapshot().HasAlert
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Hello", f.ctrl.Snapshot().Alert)

	f.ctrl.DismissAlert()
	assert.False(t, f.ctrl.Snapshot().HasAlert)
}

func TestController_BackLoadsPreviousItem(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	prev := entity.HistoryItem{ID: 1, URL: "https://home.example/a"}
	f.page.EXPECT().BackForwardList(mock.Anything).Return(entity.BackForwardList{
		BackList: []entity.HistoryItem{{ID: 0, URL: homeURL}, prev},
		Current:  &entity.HistoryItem{ID: 2, URL: "https://home.example/b"},
	}, nil).Twice()
	f.page.EXPECT().GoTo(mock.Anything, prev).Return(nil)

	require.NoError(t, f.ctrl.Back(ctx))

	err := f.ctrl.Forward(ctx)
	assert.ErrorIs(t, err, usecase.ErrNoHistoryItem)
	assert.ErrorIs(t, f.ctrl.Snapshot().Err, usecase.ErrNoHistoryItem)
}

func TestController_ScrollToTop(t *testing.T) {
	f := newFixture(t)
	f.page.EXPECT().ScrollToTop(mock.Anything).Return(nil)

	require.NoError(t, f.ctrl.ScrollToTop(testContext()))
	assert.False(t, f.ctrl.Snapshot().Scroll.ShowScrollToTop)
}

func TestController_ToggleBackground(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	var (
		mu      sync.Mutex
		scripts []map[string]any
	)
	f.page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, args map[string]any) (any, error) {
			mu.Lock()
			scripts = append(scripts, args)
			mu.Unlock()
			return nil, nil
		})

	require.True(t, f.ctrl.Snapshot().Background)

	shown, err := f.ctrl.ToggleBackground(ctx)
	require.NoError(t, err)
	assert.False(t, shown)
	assert.False(t, f.ctrl.Snapshot().Background)

	// A page change while hidden reads the description only.
	f.state.set(entity.PageState{URL: homeURL, NavigationID: "n1"})
	f.events <- entity.PageEvent{Kind: entity.PageLoadFinished, NavigationID: "n1", URL: homeURL}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(scripts) == 2
	}, time.Second, 5*time.Millisecond)

	shown, err = f.ctrl.ToggleBackground(ctx)
	require.NoError(t, err)
	assert.True(t, shown)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, scripts, 3)
	assert.Equal(t, map[string]any{"id": usecase.InjectedStyleElementID}, scripts[0], "hide removes the element")
	assert.False(t, isInjection(scripts[1]))
	assert.True(t, isInjection(scripts[2]), "show injects again")
}
