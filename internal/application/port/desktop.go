package port

import "context"

// ExternalOpener hands a URL to the system default browser.
type ExternalOpener interface {
	// Open launches the handler for url and returns without waiting for it.
	Open(ctx context.Context, url string) error
}
