package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/domain/entity"
)

func threeEntryList(current int) entity.BackForwardList {
	return entity.NewBackForwardList([]entity.HistoryItem{
		{ID: 10, URL: "https://medium.com/"},
		{ID: 11, URL: "https://medium.com/@a"},
		{ID: 12, URL: "https://medium.com/@b"},
	}, current)
}

func TestHistoryNavigation_BackLoadsLastBackItem(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().BackForwardList(mock.Anything).Return(threeEntryList(2), nil)
	page.EXPECT().GoTo(mock.Anything, entity.HistoryItem{ID: 11, URL: "https://medium.com/@a"}).Return(nil)

	item, err := usecase.NewHistoryNavigationUseCase().Execute(testContext(), page, usecase.HistoryBack)
	require.NoError(t, err)
	assert.Equal(t, 11, item.ID)
}

func TestHistoryNavigation_ForwardLoadsFirstForwardItem(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().BackForwardList(mock.Anything).Return(threeEntryList(0), nil)
	page.EXPECT().GoTo(mock.Anything, mock.MatchedBy(func(i entity.HistoryItem) bool { return i.ID == 11 })).Return(nil)

	item, err := usecase.NewHistoryNavigationUseCase().Execute(testContext(), page, usecase.HistoryForward)
	require.NoError(t, err)
	assert.Equal(t, "https://medium.com/@a", item.URL)
}

func TestHistoryNavigation_EmptySide(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().BackForwardList(mock.Anything).Return(threeEntryList(0), nil)

	_, err := usecase.NewHistoryNavigationUseCase().Execute(testContext(), page, usecase.HistoryBack)
	assert.True(t, errors.Is(err, usecase.ErrNoHistoryItem))
	page.AssertNotCalled(t, "GoTo", mock.Anything, mock.Anything)
}

func TestHistoryNavigation_NilPage(t *testing.T) {
	_, err := usecase.NewHistoryNavigationUseCase().Execute(testContext(), nil, usecase.HistoryBack)
	assert.ErrorIs(t, err, usecase.ErrNoPage)
}
