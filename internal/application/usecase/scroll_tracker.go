package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pagehost/internal/application/port"
)

// ScrollState is the scroll-to-top affordance state.
type ScrollState struct {
	Offset          float64
	ShowScrollToTop bool
}

// ScrollTrackerUseCase tracks the vertical scroll offset of a page.
type ScrollTrackerUseCase struct {
	mu   sync.Mutex
	last ScrollState
}

// NewScrollTrackerUseCase creates a new scroll tracker.
func NewScrollTrackerUseCase() *ScrollTrackerUseCase {
	return &ScrollTrackerUseCase{}
}

// Poll reads the current offset. changed reports whether the visibility of
// the scroll-to-top button flipped since the last poll.
func (uc *ScrollTrackerUseCase) Poll(ctx context.Context, page port.WebPage) (state ScrollState, changed bool, err error) {
	if page == nil {
		return ScrollState{}, false, ErrNoPage
	}
	offset, err := page.ScrollOffset(ctx)
	if err != nil {
		return uc.State(), false, fmt.Errorf("failed to read scroll offset: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := ScrollState{Offset: offset, ShowScrollToTop: offset > 0}
	changed = next.ShowScrollToTop != uc.last.ShowScrollToTop
	uc.last = next
	return next, changed, nil
}

// State returns the last polled state.
func (uc *ScrollTrackerUseCase) State() ScrollState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.last
}

// Reset forgets the last offset, for a new document.
func (uc *ScrollTrackerUseCase) Reset() {
	uc.mu.Lock()
	uc.last = ScrollState{}
	uc.mu.Unlock()
}

// ScrollToTop scrolls page to the top and hides the button.
func (uc *ScrollTrackerUseCase) ScrollToTop(ctx context.Context, page port.WebPage) error {
	if page == nil {
		return ErrNoPage
	}
	if err := page.ScrollToTop(ctx); err != nil {
		return fmt.Errorf("failed to scroll to top: %w", err)
	}
	uc.Reset()
	return nil
}
