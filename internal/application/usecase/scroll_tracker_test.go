package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/application/usecase"
)

func TestScrollTracker_ButtonVisibleOnlyWhenScrolled(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().ScrollOffset(mock.Anything).Return(0, nil).Once()
	page.EXPECT().ScrollOffset(mock.Anything).Return(120.5, nil).Once()
	page.EXPECT().ScrollOffset(mock.Anything).Return(300, nil).Once()
	page.EXPECT().ScrollOffset(mock.Anything).Return(0, nil).Once()

	uc := usecase.NewScrollTrackerUseCase()
	ctx := testContext()

	st, changed, err := uc.Poll(ctx, page)
	require.NoError(t, err)
	assert.False(t, st.ShowScrollToTop)
	assert.False(t, changed)

	st, changed, _ = uc.Poll(ctx, page)
	assert.True(t, st.ShowScrollToTop)
	assert.True(t, changed)

	st, changed, _ = uc.Poll(ctx, page)
	assert.True(t, st.ShowScrollToTop)
	assert.False(t, changed)

	st, changed, _ = uc.Poll(ctx, page)
	assert.False(t, st.ShowScrollToTop)
	assert.True(t, changed)
}

func TestScrollTracker_ErrorKeepsLastState(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().ScrollOffset(mock.Anything).Return(50, nil).Once()
	page.EXPECT().ScrollOffset(mock.Anything).Return(0, errors.New("detached")).Once()

	uc := usecase.NewScrollTrackerUseCase()
	_, _, err := uc.Poll(testContext(), page)
	require.NoError(t, err)

	st, changed, err := uc.Poll(testContext(), page)
	assert.Error(t, err)
	assert.False(t, changed)
	assert.True(t, st.ShowScrollToTop)
}

func TestScrollTracker_ScrollToTopResets(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().ScrollOffset(mock.Anything).Return(80, nil).Once()
	page.EXPECT().ScrollToTop(mock.Anything).Return(nil)

	uc := usecase.NewScrollTrackerUseCase()
	_, _, _ = uc.Poll(testContext(), page)
	require.NoError(t, uc.ScrollToTop(testContext(), page))
	assert.False(t, uc.State().ShowScrollToTop)
}
