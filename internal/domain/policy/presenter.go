package policy

import (
	"context"

	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

// DialogPresenter redirects in-page alerts to the host UI instead of the
// engine's own dialog chrome.
type DialogPresenter struct {
	observer DialogObserver
}

// NewDialogPresenter binds the observer that receives alert messages.
func NewDialogPresenter(observer DialogObserver) *DialogPresenter {
	return &DialogPresenter{observer: observer}
}

// HandleJavaScriptAlert forwards the alert message to the host and returns
// at once; showing and dismissing the alert is up to the host.
func (p *DialogPresenter) HandleJavaScriptAlert(ctx context.Context, req entity.DialogRequest) {
	if p.observer == nil {
		return
	}
	if !p.observer.AlertRequested(ctx, req.Message) {
		logging.FromContext(ctx).Debug().
			Int("len", len(req.Message)).
			Msg("alert dropped, previous one still shown")
	}
}
