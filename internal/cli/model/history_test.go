package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/entity"
)

type listerFunc func(ctx context.Context, input usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error)

func (f listerFunc) List(ctx context.Context, input usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error) {
	return f(ctx, input)
}

func loadHistory(t *testing.T, lister NavigationLister, input usecase.NavigationLogInput) HistoryModel {
	t.Helper()
	m := NewHistoryModel(context.Background(), styles.NewTheme(), lister, input)
	assert.Contains(t, m.View(), "Loading")

	next, _ := m.Update(m.load()())
	hm, ok := next.(HistoryModel)
	require.True(t, ok)
	return hm
}

func TestHistory_RendersRecordsAndStats(t *testing.T) {
	var got usecase.NavigationLogInput
	lister := listerFunc(func(_ context.Context, input usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error) {
		got = input
		return &usecase.NavigationLogOutput{
			Records: []*entity.NavigationRecord{
				{
					URL:       "https://other.example/x",
					Host:      "other.example",
					Decision:  entity.NavigationCancel,
					Reason:    entity.ReasonExternalHost,
					CreatedAt: time.Now(),
				},
				{
					URL:       "https://home.example/",
					Host:      "home.example",
					Decision:  entity.NavigationAllow,
					Reason:    entity.ReasonHomeHost,
					CreatedAt: time.Now(),
				},
			},
			Stats: &entity.NavigationStats{Total: 2, Allowed: 1, Cancelled: 1},
		}, nil
	})

	m := loadHistory(t, lister, usecase.NavigationLogInput{Limit: 10})
	assert.Equal(t, 10, got.Limit)

	view := m.View()
	assert.Contains(t, view, "1 allowed")
	assert.Contains(t, view, "1 cancelled")
	assert.Contains(t, view, "other.example")
	assert.Contains(t, view, "home_host")
}

func TestHistory_Empty(t *testing.T) {
	lister := listerFunc(func(context.Context, usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error) {
		return &usecase.NavigationLogOutput{}, nil
	})
	m := loadHistory(t, lister, usecase.NavigationLogInput{})
	assert.Contains(t, m.View(), "No navigation recorded yet")
}

func TestHistory_Error(t *testing.T) {
	lister := listerFunc(func(context.Context, usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error) {
		return nil, errors.New("database locked")
	})
	m := loadHistory(t, lister, usecase.NavigationLogInput{})
	assert.Contains(t, m.View(), "database locked")
}

func TestHistory_ReloadAndQuit(t *testing.T) {
	calls := 0
	lister := listerFunc(func(context.Context, usecase.NavigationLogInput) (*usecase.NavigationLogOutput, error) {
		calls++
		return &usecase.NavigationLogOutput{}, nil
	})
	m := loadHistory(t, lister, usecase.NavigationLogInput{})
	require.Equal(t, 1, calls)

	next, cmd := m.Update(keyRune("r"))
	require.NotNil(t, cmd)
	assert.True(t, next.(HistoryModel).loading)

	_, cmd = m.Update(keyRune("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
