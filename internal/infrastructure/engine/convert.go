package engine

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/pagehost/internal/domain/entity"
)

// navigationRequest converts a paused Document request into the policy's
// input. mainFrame is the page's top-level frame id.
func navigationRequest(e *proto.FetchRequestPaused, mainFrame proto.PageFrameID) entity.NavigationRequest {
	req := entity.NavigationRequest{Type: entity.NavigationTypeOther}
	if e.Request != nil {
		req.URL = e.Request.URL + e.Request.URLFragment
		if strings.EqualFold(e.Request.Method, "POST") {
			req.Type = entity.NavigationTypeFormSubmitted
		}
	}
	if e.FrameID != "" {
		req.Target = &entity.FrameInfo{
			ID:          string(e.FrameID),
			URL:         req.URL,
			IsMainFrame: mainFrame == "" || e.FrameID == mainFrame,
		}
	}
	return req
}

// dialogRequest converts a dialog event. The event only carries the frame
// URL, so Frame stays nil.
func dialogRequest(e *proto.PageJavascriptDialogOpening) entity.DialogRequest {
	kind := entity.DialogAlert
	switch e.Type {
	case proto.PageDialogTypeConfirm:
		kind = entity.DialogConfirm
	case proto.PageDialogTypePrompt:
		kind = entity.DialogPrompt
	case proto.PageDialogTypeBeforeunload:
		kind = entity.DialogBeforeUnload
	}
	return entity.DialogRequest{
		Kind:          kind,
		Message:       e.Message,
		URL:           e.URL,
		DefaultPrompt: e.DefaultPrompt,
	}
}

// upgradeToHTTPS returns the https form of an http URL, or "" when raw is
// not plain http.
func upgradeToHTTPS(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "http") {
		return ""
	}
	u.Scheme = "https"
	if u.Port() == "80" {
		u.Host = u.Hostname()
	}
	return u.String()
}

func cookieFromProto(c *proto.NetworkCookie) entity.Cookie {
	out := entity.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: entity.SameSite(c.SameSite),
		Session:  c.Session,
	}
	if !c.Session && c.Expires > 0 {
		out.Expires = epochToTime(float64(c.Expires))
	}
	return out
}

func cookieToProto(c entity.Cookie) *proto.NetworkCookieParam {
	p := &proto.NetworkCookieParam{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: proto.NetworkCookieSameSite(c.SameSite),
	}
	if !c.Session && !c.Expires.IsZero() {
		p.Expires = proto.TimeSinceEpoch(float64(c.Expires.UnixMilli()) / 1000)
	}
	return p
}

func epochToTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9))
}

// backForwardList converts the engine's navigation history.
func backForwardList(res *proto.PageGetNavigationHistoryResult) entity.BackForwardList {
	if res == nil {
		return entity.BackForwardList{}
	}
	items := make([]entity.HistoryItem, 0, len(res.Entries))
	for _, e := range res.Entries {
		items = append(items, entity.HistoryItem{ID: e.ID, URL: e.URL, Title: e.Title})
	}
	return entity.NewBackForwardList(items, res.CurrentIndex)
}

// callFunction renders body as an async function taking args as named
// parameters in sorted order, and returns the positional arguments.
func callFunction(body string, args map[string]any) (string, []string, []interface{}) {
	names := make([]string, 0, len(args))
	for k := range args {
		names = append(names, k)
	}
	sort.Strings(names)

	values := make([]interface{}, len(names))
	for i, n := range names {
		values[i] = args[n]
	}

	js := "async function(" + strings.Join(names, ", ") + ") {\n" + body + "\n}"
	return js, names, values
}

// userAgent resolves the effective user agent.
func userAgent(custom, base, appName string) string {
	if custom = strings.TrimSpace(custom); custom != "" {
		return custom
	}
	base = strings.TrimSpace(base)
	appName = strings.TrimSpace(appName)
	switch {
	case appName == "":
		return base
	case base == "":
		return appName
	default:
		return base + " " + appName
	}
}
