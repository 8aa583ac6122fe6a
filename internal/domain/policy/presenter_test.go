package policy

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

func TestDialogPresenter_ForwardsMessage(t *testing.T) {
	slot := NewAlertSlot()
	p := NewDialogPresenter(slot)

	p.HandleJavaScriptAlert(context.Background(), entity.DialogRequest{
		Kind:    entity.DialogAlert,
		Message: "Please sign in",
		Frame:   &entity.FrameInfo{IsMainFrame: true, URL: "https://medium.com/"},
	})

	msg, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, "Please sign in", msg)
}

func TestDialogPresenter_EmptyMessageStillDelivered(t *testing.T) {
	slot := NewAlertSlot()
	p := NewDialogPresenter(slot)

	p.HandleJavaScriptAlert(context.Background(), entity.DialogRequest{Kind: entity.DialogAlert})

	msg, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, "", msg)
}

func TestDialogPresenter_RearmsAfterHostClears(t *testing.T) {
	slot := NewAlertSlot()
	p := NewDialogPresenter(slot)
	ctx := context.Background()

	p.HandleJavaScriptAlert(ctx, entity.DialogRequest{Message: "first"})
	p.HandleJavaScriptAlert(ctx, entity.DialogRequest{Message: "second"})

	msg, ok := slot.Take()
	require.True(t, ok)
	assert.Equal(t, "first", msg)

	p.HandleJavaScriptAlert(ctx, entity.DialogRequest{Message: "third"})
	msg, ok = slot.Take()
	require.True(t, ok)
	assert.Equal(t, "third", msg)
}

func TestDialogPresenter_NilObserverDoesNotBlock(t *testing.T) {
	p := NewDialogPresenter(nil)
	p.HandleJavaScriptAlert(context.Background(), entity.DialogRequest{Message: "ignored"})
}

func TestDialogPresenter_LogsDroppedAlert(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	slot := NewAlertSlot()
	p := NewDialogPresenter(slot)

	p.HandleJavaScriptAlert(ctx, entity.DialogRequest{Message: "first"})
	assert.Empty(t, buf.String())

	p.HandleJavaScriptAlert(ctx, entity.DialogRequest{Message: "second"})
	assert.Contains(t, buf.String(), "alert dropped")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
