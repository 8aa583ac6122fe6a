package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

// HistoryDirection selects the end of the back/forward list to load.
type HistoryDirection int

const (
	HistoryBack HistoryDirection = iota
	HistoryForward
)

func (d HistoryDirection) String() string {
	if d == HistoryForward {
		return "forward"
	}
	return "back"
}

// HistoryNavigationUseCase moves through a page's session history.
type HistoryNavigationUseCase struct{}

// NewHistoryNavigationUseCase creates a new history navigation use case.
func NewHistoryNavigationUseCase() *HistoryNavigationUseCase {
	return &HistoryNavigationUseCase{}
}

// Execute loads the last back item or the first forward item.
// Returns ErrNoHistoryItem when that side of the list is empty.
func (uc *HistoryNavigationUseCase) Execute(ctx context.Context, page port.WebPage, dir HistoryDirection) (*entity.HistoryItem, error) {
	if page == nil {
		return nil, ErrNoPage
	}
	log := logging.FromContext(ctx)

	list, err := page.BackForwardList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var (
		item entity.HistoryItem
		ok   bool
	)
	if dir == HistoryForward {
		item, ok = list.Next()
	} else {
		item, ok = list.Previous()
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoHistoryItem)
	}

	log.Debug().
		Str("direction", dir.String()).
		Int("entry_id", item.ID).
		Str("url", logging.TruncateURL(item.URL, logURLMaxLen)).
		Msg("loading history item")

	if err := page.GoTo(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to go %s: %w", dir, err)
	}
	return &item, nil
}
