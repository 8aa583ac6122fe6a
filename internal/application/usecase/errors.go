// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import "errors"

var (
	// ErrNoHistoryItem is returned by back/forward when the list is empty.
	ErrNoHistoryItem = errors.New("no history item in that direction")

	// ErrEmptyExport is returned when the engine renders an empty artifact.
	ErrEmptyExport = errors.New("engine returned an empty export")

	// ErrUnsupportedScheme is returned when an external URL is not http(s).
	ErrUnsupportedScheme = errors.New("unsupported url scheme")

	// ErrNoPage is returned when a use case is given a nil page.
	ErrNoPage = errors.New("no page")
)
