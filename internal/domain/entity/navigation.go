package entity

import (
	"fmt"
	"strings"
	"time"

	urlutil "github.com/bnema/pagehost/internal/domain/url"
)

// FrameInfo describes the frame a navigation or dialog originates from.
type FrameInfo struct {
	ID          string
	URL         string
	IsMainFrame bool
}

// NavigationType mirrors the engine's classification of a navigation attempt.
type NavigationType string

const (
	NavigationTypeLinkActivated NavigationType = "link_activated"
	NavigationTypeFormSubmitted NavigationType = "form_submitted"
	NavigationTypeOther         NavigationType = "other"
)

// NavigationRequest is a single navigation attempt reported by the web engine.
// It is created per attempt and consumed immediately by the policy decider.
type NavigationRequest struct {
	// URL is the raw target URL as reported by the engine. May be empty.
	URL string
	// Target is the frame being navigated. Nil means the engine did not report
	// one, which is treated as a main-frame navigation.
	Target *FrameInfo
	Type   NavigationType
}

// IsSubframe reports whether the request targets a frame other than the main one.
func (r NavigationRequest) IsSubframe() bool {
	return r.Target != nil && !r.Target.IsMainFrame
}

// NavigationDecision is the outcome of a navigation policy decision.
type NavigationDecision int

const (
	// NavigationAllow lets the engine proceed in place.
	NavigationAllow NavigationDecision = iota
	// NavigationCancel stops the navigation. The URL may have been handed to
	// the host for external handling.
	NavigationCancel
)

// String returns a human-readable representation of the decision.
func (d NavigationDecision) String() string {
	switch d {
	case NavigationAllow:
		return "allow"
	case NavigationCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// MarshalText encodes the decision by name.
func (d NavigationDecision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a decision name.
func (d *NavigationDecision) UnmarshalText(b []byte) error {
	v, ok := ParseNavigationDecision(string(b))
	if !ok {
		return fmt.Errorf("unknown navigation decision %q", b)
	}
	*d = v
	return nil
}

// ParseNavigationDecision converts a stored decision string back to its value.
func ParseNavigationDecision(s string) (NavigationDecision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow":
		return NavigationAllow, true
	case "cancel":
		return NavigationCancel, true
	default:
		return NavigationCancel, false
	}
}

// DecisionReason explains which rule produced a decision.
type DecisionReason string

const (
	ReasonSubframe     DecisionReason = "subframe"
	ReasonHomeHost     DecisionReason = "home_host"
	ReasonExternalHost DecisionReason = "external_host"
	ReasonInvalidURL   DecisionReason = "invalid_url"
)

// NavigationRecord is a persisted audit entry for one policy decision.
type NavigationRecord struct {
	ID        int64              `json:"id"`
	SessionID string             `json:"session_id"`
	URL       string             `json:"url"`
	Host      string             `json:"host"`
	Decision  NavigationDecision `json:"decision"`
	Reason    DecisionReason     `json:"reason"`
	Subframe  bool               `json:"subframe"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewNavigationRecord builds a record for a decided request.
func NewNavigationRecord(sessionID string, req NavigationRequest, decision NavigationDecision, reason DecisionReason) *NavigationRecord {
	return &NavigationRecord{
		SessionID: sessionID,
		URL:       req.URL,
		Host:      urlutil.Host(req.URL),
		Decision:  decision,
		Reason:    reason,
		Subframe:  req.IsSubframe(),
		CreatedAt: time.Now(),
	}
}

// NavigationStats summarises the navigation log.
type NavigationStats struct {
	Total     int64 `json:"total"`
	Allowed   int64 `json:"allowed"`
	Cancelled int64 `json:"cancelled"`
}
