package policy

import "context"

// NavigationObserver receives URLs the decider refused to load in place.
// rawURL is the request URL exactly as the engine reported it.
type NavigationObserver interface {
	ExternalURLRequested(ctx context.Context, rawURL string) bool
}

// DialogObserver receives alert messages intercepted from the page.
type DialogObserver interface {
	AlertRequested(ctx context.Context, message string) bool
}

// URLSlot is a NavigationObserver backed by a one-shot slot.
type URLSlot struct {
	*OneShot[string]
}

// NewURLSlot returns an empty URL slot.
func NewURLSlot() URLSlot {
	return URLSlot{OneShot: NewOneShot[string]()}
}

// ExternalURLRequested offers rawURL to the slot. It reports false when the
// host has not consumed the previous URL yet.
func (s URLSlot) ExternalURLRequested(_ context.Context, rawURL string) bool {
	return s.Offer(rawURL)
}

// AlertSlot is a DialogObserver backed by a one-shot slot.
type AlertSlot struct {
	*OneShot[string]
}

// NewAlertSlot returns an empty alert slot.
func NewAlertSlot() AlertSlot {
	return AlertSlot{OneShot: NewOneShot[string]()}
}

// AlertRequested offers message to the slot.
func (s AlertSlot) AlertRequested(_ context.Context, message string) bool {
	return s.Offer(message)
}
