package styles

import (
	"fmt"
	"time"

	"github.com/bnema/pagehost/internal/domain/entity"
)

// DecisionBadge renders a navigation decision: allow in accent colors,
// cancel muted.
func (t *Theme) DecisionBadge(d entity.NavigationDecision) string {
	if d == entity.NavigationAllow {
		return t.Badge.Render(d.String())
	}
	return t.BadgeMuted.Render(d.String())
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// RelativeTime formats a time relative to now.
func RelativeTime(tm time.Time) string {
	return relativeTime(tm, time.Now())
}

func relativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Format("Jan 2")
	}
}

// Truncate shortens s to maxLen runes, ending with an ellipsis.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(r[:maxLen-1]) + "…"
}
