package engine

import (
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/domain/entity"
)

func TestNavigationRequest_MainAndSubframe(t *testing.T) {
	main := proto.PageFrameID("MAIN")

	req := navigationRequest(&proto.FetchRequestPaused{
		FrameID: "MAIN",
		Request: &proto.NetworkRequest{URL: "https://example.com/", Method: "GET"},
	}, main)
	require.NotNil(t, req.Target)
	assert.True(t, req.Target.IsMainFrame)
	assert.False(t, req.IsSubframe())
	assert.Equal(t, "https://example.com/", req.URL)
	assert.Equal(t, entity.NavigationTypeOther, req.Type)

	req = navigationRequest(&proto.FetchRequestPaused{
		FrameID: "IFRAME-1",
		Request: &proto.NetworkRequest{URL: "https://captcha.example.com", Method: "GET"},
	}, main)
	assert.True(t, req.IsSubframe())

	req = navigationRequest(&proto.FetchRequestPaused{
		Request: &proto.NetworkRequest{URL: "https://medium.com/login", Method: "post"},
	}, main)
	assert.Nil(t, req.Target, "no frame reported")
	assert.Equal(t, entity.NavigationTypeFormSubmitted, req.Type)
}

func TestNavigationRequest_KeepsFragment(t *testing.T) {
	req := navigationRequest(&proto.FetchRequestPaused{
		FrameID: "MAIN",
		Request: &proto.NetworkRequest{
			URL:         "https://example.com/docs",
			URLFragment: "#section-2",
			Method:      "GET",
		},
	}, "MAIN")
	assert.Equal(t, "https://example.com/docs#section-2", req.URL)
	assert.Equal(t, "https://example.com/docs#section-2", req.Target.URL)
}

func TestNavigationRequest_NilRequest(t *testing.T) {
	req := navigationRequest(&proto.FetchRequestPaused{FrameID: "MAIN"}, "MAIN")
	assert.Empty(t, req.URL)
}

func TestDialogRequest(t *testing.T) {
	d := dialogRequest(&proto.PageJavascriptDialogOpening{
		URL:     "https://medium.com/",
		Message: "Please sign in",
		Type:    proto.PageDialogTypeAlert,
	})
	assert.Equal(t, entity.DialogAlert, d.Kind)
	assert.Equal(t, "Please sign in", d.Message)
	assert.Equal(t, "https://medium.com/", d.URL)
	assert.Nil(t, d.Frame, "engine does not report the frame")

	d = dialogRequest(&proto.PageJavascriptDialogOpening{Type: proto.PageDialogTypePrompt, DefaultPrompt: "x"})
	assert.Equal(t, entity.DialogPrompt, d.Kind)
	assert.Equal(t, "x", d.DefaultPrompt)
}

func TestUpgradeToHTTPS(t *testing.T) {
	assert.Equal(t, "https://example.com/a?b=1", upgradeToHTTPS("http://example.com/a?b=1"))
	assert.Equal(t, "https://example.com/", upgradeToHTTPS("http://example.com:80/"))
	assert.Equal(t, "https://example.com:8080/", upgradeToHTTPS("http://example.com:8080/"))
	assert.Empty(t, upgradeToHTTPS("https://example.com/"))
	assert.Empty(t, upgradeToHTTPS("about:blank"))
}

func TestCookieRoundTrip(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	in := entity.Cookie{
		Name: "sid", Value: "v", Domain: ".medium.com", Path: "/",
		Expires: exp, Secure: true, HTTPOnly: true, SameSite: entity.SameSiteLax,
	}

	p := cookieToProto(in)
	assert.Equal(t, proto.NetworkCookieSameSiteLax, p.SameSite)
	assert.InDelta(t, float64(exp.Unix()), float64(p.Expires), 0.001)

	out := cookieFromProto(&proto.NetworkCookie{
		Name: p.Name, Value: p.Value, Domain: p.Domain, Path: p.Path,
		Expires: p.Expires, Secure: p.Secure, HTTPOnly: p.HTTPOnly, SameSite: p.SameSite,
	})
	assert.True(t, exp.Equal(out.Expires))
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.SameSite, out.SameSite)
}

func TestCookieFromProto_Session(t *testing.T) {
	out := cookieFromProto(&proto.NetworkCookie{Name: "s", Session: true, Expires: -1})
	assert.True(t, out.Session)
	assert.True(t, out.Expires.IsZero())

	p := cookieToProto(entity.Cookie{Name: "s", Domain: "x", Session: true, Expires: time.Now()})
	assert.Zero(t, p.Expires)
}

func TestBackForwardList(t *testing.T) {
	l := backForwardList(&proto.PageGetNavigationHistoryResult{
		CurrentIndex: 1,
		Entries: []*proto.PageNavigationEntry{
			{ID: 1, URL: "https://medium.com/", Title: "Medium"},
			{ID: 2, URL: "https://medium.com/@a", Title: "A"},
		},
	})
	require.NotNil(t, l.Current)
	assert.Equal(t, 2, l.Current.ID)
	prev, ok := l.Previous()
	require.True(t, ok)
	assert.Equal(t, "Medium", prev.Title)

	assert.Nil(t, backForwardList(nil).Current)
}

func TestCallFunction(t *testing.T) {
	js, names, values := callFunction("return name;", map[string]any{"name": "description", "css": "x"})
	assert.Equal(t, "async function(css, name) {\nreturn name;\n}", js)
	assert.Equal(t, []string{"css", "name"}, names)
	assert.Equal(t, []interface{}{"x", "description"}, values)

	js, names, values = callFunction("return 1;", nil)
	assert.Equal(t, "async function() {\nreturn 1;\n}", js)
	assert.Empty(t, names)
	assert.Empty(t, values)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "Custom/1.0", userAgent(" Custom/1.0 ", "Base", "pagehost"))
	assert.Equal(t, "Mozilla/5.0 Chrome pagehost/1.0", userAgent("", "Mozilla/5.0 Chrome", "pagehost/1.0"))
	assert.Equal(t, "Mozilla/5.0", userAgent("", "Mozilla/5.0", ""))
	assert.Equal(t, "pagehost", userAgent("", "", "pagehost"))
}
