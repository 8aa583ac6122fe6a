// Package policy holds the navigation policy decider and the dialog
// presenter that sit between the web engine and the host.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/pagehost/internal/domain/entity"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
	"github.com/bnema/pagehost/internal/logging"
)

// ErrInvalidHomeURL is returned when the configured home URL has no host.
var ErrInvalidHomeURL = errors.New("home url must be absolute with a host")

const logURLMaxLen = 60

// NavigationDecider decides, for every navigation attempt, whether the
// engine loads it in place or hands it to the host.
type NavigationDecider struct {
	homeURL  string
	homeHost string
	observer NavigationObserver
}

// NewNavigationDecider validates homeURL and binds the observer that receives
// cancelled URLs. The home URL is read-only afterwards.
func NewNavigationDecider(homeURL string, observer NavigationObserver) (*NavigationDecider, error) {
	homeURL = strings.TrimSpace(homeURL)
	host := urlutil.Host(homeURL)
	if host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHomeURL, homeURL)
	}
	return &NavigationDecider{
		homeURL:  homeURL,
		homeHost: host,
		observer: observer,
	}, nil
}

// HomeURL returns the configured home URL.
func (d *NavigationDecider) HomeURL() string {
	return d.homeURL
}

// HomeHost returns the lowercased home host used for comparison.
func (d *NavigationDecider) HomeHost() string {
	return d.homeHost
}

// Evaluate returns the decision for req without notifying anyone, together
// with the rule that produced it.
func (d *NavigationDecider) Evaluate(req entity.NavigationRequest) (entity.NavigationDecision, entity.DecisionReason) {
	// Auxiliary frames (captcha and verification widgets) must load freely.
	if req.IsSubframe() {
		return entity.NavigationAllow, entity.ReasonSubframe
	}

	if urlutil.Host(req.URL) == "" {
		return entity.NavigationCancel, entity.ReasonInvalidURL
	}
	if urlutil.SameHost(req.URL, d.homeURL) {
		return entity.NavigationAllow, entity.ReasonHomeHost
	}
	return entity.NavigationCancel, entity.ReasonExternalHost
}

// DecidePolicy decides req. A main-frame request to a foreign host is
// cancelled and its URL emitted once through the observer, exactly as the
// engine reported it.
func (d *NavigationDecider) DecidePolicy(ctx context.Context, req entity.NavigationRequest) entity.NavigationDecision {
	decision, _ := d.Decide(ctx, req)
	return decision
}

// Decide is DecidePolicy that also reports the rule that fired.
func (d *NavigationDecider) Decide(ctx context.Context, req entity.NavigationRequest) (entity.NavigationDecision, entity.DecisionReason) {
	decision, reason := d.Evaluate(req)
	if reason == entity.ReasonExternalHost && d.observer != nil {
		if !d.observer.ExternalURLRequested(ctx, req.URL) {
			logging.FromContext(ctx).Debug().
				Str("url", logging.TruncateURL(req.URL, logURLMaxLen)).
				Msg("external url dropped, previous one not consumed")
		}
	}
	return decision, reason
}
