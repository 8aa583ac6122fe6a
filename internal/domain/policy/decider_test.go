package policy

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

const homeURL = "https://medium.com/@itsuki.enjoy"

type recordingObserver struct {
	mu   sync.Mutex
	urls []string
}

func (o *recordingObserver) ExternalURLRequested(_ context.Context, rawURL string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, rawURL)
	return true
}

func mainFrame(raw string) entity.NavigationRequest {
	return entity.NavigationRequest{
		URL:    raw,
		Target: &entity.FrameInfo{ID: "main", IsMainFrame: true},
		Type:   entity.NavigationTypeLinkActivated,
	}
}

func subFrame(raw string) entity.NavigationRequest {
	return entity.NavigationRequest{
		URL:    raw,
		Target: &entity.FrameInfo{ID: "frame-2", IsMainFrame: false},
		Type:   entity.NavigationTypeOther,
	}
}

func TestNewNavigationDecider_RejectsHostlessHome(t *testing.T) {
	for _, home := range []string{"", "/relative", "not a url", "about:blank"} {
		_, err := NewNavigationDecider(home, nil)
		require.Error(t, err, home)
		assert.True(t, errors.Is(err, ErrInvalidHomeURL), home)
	}
}

func TestNavigationDecider_HomeHostIsNormalized(t *testing.T) {
	d, err := NewNavigationDecider("https://Medium.COM:443/@x", nil)
	require.NoError(t, err)
	assert.Equal(t, "medium.com", d.HomeHost())
}

func TestDecidePolicy_SameHostAllowed(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	got := d.DecidePolicy(context.Background(), mainFrame("https://medium.com/@x"))

	assert.Equal(t, entity.NavigationAllow, got)
	assert.Empty(t, obs.urls)
}

func TestDecidePolicy_HostComparisonIgnoresCaseAndPort(t *testing.T) {
	d, err := NewNavigationDecider(homeURL, &recordingObserver{})
	require.NoError(t, err)

	assert.Equal(t, entity.NavigationAllow, d.DecidePolicy(context.Background(), mainFrame("https://MEDIUM.com/tag/go")))
	assert.Equal(t, entity.NavigationAllow, d.DecidePolicy(context.Background(), mainFrame("http://medium.com:8080/")))
}

func TestDecidePolicy_ForeignHostCancelledAndEmitted(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	got := d.DecidePolicy(context.Background(), mainFrame("https://example.com/path"))

	assert.Equal(t, entity.NavigationCancel, got)
	assert.Equal(t, []string{"https://example.com/path"}, obs.urls)
}

func TestDecidePolicy_EmitsRequestURLVerbatim(t *testing.T) {
	for _, raw := range []string{
		"HTTPS://example.com/path",
		" https://example.com/path",
		"https://example.com/a b",
		"https://example.com/path#section-2",
	} {
		t.Run(raw, func(t *testing.T) {
			obs := &recordingObserver{}
			d, err := NewNavigationDecider(homeURL, obs)
			require.NoError(t, err)

			require.Equal(t, entity.NavigationCancel, d.DecidePolicy(context.Background(), mainFrame(raw)))
			require.Len(t, obs.urls, 1)
			assert.Equal(t, raw, obs.urls[0])
		})
	}
}

func TestDecidePolicy_LogsDroppedURL(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	slot := NewURLSlot()
	d, err := NewNavigationDecider(homeURL, slot)
	require.NoError(t, err)

	d.DecidePolicy(ctx, mainFrame("https://example.com/first"))
	assert.Empty(t, buf.String())

	d.DecidePolicy(ctx, mainFrame("https://example.com/second"))
	assert.Contains(t, buf.String(), "external url dropped")
	assert.Contains(t, buf.String(), "https://example.com/second")

	got, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/first", got)
}

func TestDecidePolicy_SubdomainIsForeign(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	got := d.DecidePolicy(context.Background(), mainFrame("https://policy.medium.com/terms"))

	assert.Equal(t, entity.NavigationCancel, got)
	assert.Len(t, obs.urls, 1)
}

func TestDecidePolicy_SubframeAlwaysAllowed(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	for _, raw := range []string{
		"https://captcha.example.com",
		"https://www.google.com/recaptcha/api2/anchor",
		"",
		"::not-a-url::",
	} {
		assert.Equal(t, entity.NavigationAllow, d.DecidePolicy(context.Background(), subFrame(raw)), raw)
	}
	assert.Empty(t, obs.urls)
}

func TestDecidePolicy_MissingTargetTreatedAsMainFrame(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	got := d.DecidePolicy(context.Background(), entity.NavigationRequest{URL: "https://example.com/"})

	assert.Equal(t, entity.NavigationCancel, got)
	assert.Equal(t, []string{"https://example.com/"}, obs.urls)
}

func TestDecidePolicy_MalformedURLCancelledWithoutEmission(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	for _, raw := range []string{"", "   ", "%zz", "/relative/only", "mailto:someone"} {
		assert.Equal(t, entity.NavigationCancel, d.DecidePolicy(context.Background(), mainFrame(raw)), raw)
	}
	assert.Empty(t, obs.urls)
}

func TestDecidePolicy_NilObserver(t *testing.T) {
	d, err := NewNavigationDecider(homeURL, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.NavigationCancel, d.DecidePolicy(context.Background(), mainFrame("https://example.com")))
}

func TestDecidePolicy_Idempotent(t *testing.T) {
	d, err := NewNavigationDecider(homeURL, &recordingObserver{})
	require.NoError(t, err)

	requests := []entity.NavigationRequest{
		mainFrame("https://medium.com/@x"),
		mainFrame("https://example.com/path"),
		subFrame("https://captcha.example.com"),
		mainFrame(""),
	}
	for _, req := range requests {
		first := d.DecidePolicy(context.Background(), req)
		second := d.DecidePolicy(context.Background(), req)
		assert.Equal(t, first, second, req.URL)
	}
}

func TestEvaluate_Reasons(t *testing.T) {
	d, err := NewNavigationDecider(homeURL, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		req      entity.NavigationRequest
		decision entity.NavigationDecision
		reason   entity.DecisionReason
	}{
		{"subframe", subFrame("https://captcha.example.com"), entity.NavigationAllow, entity.ReasonSubframe},
		{"home", mainFrame("https://medium.com/@x"), entity.NavigationAllow, entity.ReasonHomeHost},
		{"external", mainFrame("https://example.com/path"), entity.NavigationCancel, entity.ReasonExternalHost},
		{"invalid", mainFrame(""), entity.NavigationCancel, entity.ReasonInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, reason := d.Evaluate(tt.req)
			assert.Equal(t, tt.decision, decision)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestDecidePolicy_WithURLSlotEmitsOnceAndRearms(t *testing.T) {
	slot := NewURLSlot()
	d, err := NewNavigationDecider(homeURL, slot)
	require.NoError(t, err)
	ctx := context.Background()

	require.Equal(t, entity.NavigationCancel, d.DecidePolicy(ctx, mainFrame("https://example.com/path")))
	// Second foreign request while the host has not consumed the first.
	require.Equal(t, entity.NavigationCancel, d.DecidePolicy(ctx, mainFrame("https://other.org/")))

	got, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/path", got)

	_, ok = slot.Take()
	assert.False(t, ok, "slot must deliver exactly once")

	// Host cleared the slot: a later differing-host request emits again.
	require.Equal(t, entity.NavigationCancel, d.DecidePolicy(ctx, mainFrame("https://other.org/")))
	got, ok = slot.Take()
	require.True(t, ok)
	assert.Equal(t, "https://other.org/", got)
}

func TestDecidePolicy_ConcurrentRequestsAreIndependent(t *testing.T) {
	obs := &recordingObserver{}
	d, err := NewNavigationDecider(homeURL, obs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.Equal(t, entity.NavigationAllow, d.DecidePolicy(context.Background(), mainFrame("https://medium.com/")))
				return
			}
			assert.Equal(t, entity.NavigationCancel, d.DecidePolicy(context.Background(), mainFrame("https://example.com/")))
		}(i)
	}
	wg.Wait()

	assert.Len(t, obs.urls, 25)
}
