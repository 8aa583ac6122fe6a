package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/domain/build"
	"github.com/bnema/pagehost/internal/domain/entity"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-10 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"older", now.Add(-40 * 24 * time.Hour), "May 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeTime(tt.at, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abcdefgh", 1))
	assert.Equal(t, "héll…", Truncate("héllo world", 5))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
}

func TestNavigationRow(t *testing.T) {
	rec := &entity.NavigationRecord{
		URL:       "https://other.example/path",
		Host:      "other.example",
		Decision:  entity.NavigationCancel,
		Reason:    entity.ReasonExternalHost,
		CreatedAt: time.Now(),
	}
	row := NavigationRow(rec)
	require.Len(t, row, len(NavigationTableColumns()))
	assert.Equal(t, "cancel", row[1])
	assert.Equal(t, "external_host", row[2])

	rec.Subframe = true
	rec.Reason = entity.ReasonSubframe
	assert.Equal(t, "subframe*", NavigationRow(rec)[2])
}

func TestButtonStyle(t *testing.T) {
	theme := NewTheme()
	assert.Equal(t, theme.Button.Render("x"), theme.ButtonStyle(true).Render("x"))
	assert.Equal(t, theme.ButtonDisabled.Render("x"), theme.ButtonStyle(false).Render("x"))
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "1.2.3", Commit: "abc123"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "pagehost/1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
