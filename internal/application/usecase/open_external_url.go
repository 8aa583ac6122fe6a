package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// OpenExternalURLUseCase hands cancelled navigations to the system browser.
type OpenExternalURLUseCase struct {
	opener port.ExternalOpener
}

// NewOpenExternalURLUseCase creates a new external open use case.
func NewOpenExternalURLUseCase(opener port.ExternalOpener) *OpenExternalURLUseCase {
	return &OpenExternalURLUseCase{opener: opener}
}

// Execute opens rawURL with the system handler. Only http and https URLs
// are handed out; the URL is passed on as given, minus surrounding space.
func (uc *OpenExternalURLUseCase) Execute(ctx context.Context, rawURL string) error {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return fmt.Errorf("open external: empty url")
	}
	target, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("open external: %w", err)
	}
	switch strings.ToLower(target.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("open external %q: %w", target.Scheme, ErrUnsupportedScheme)
	}

	logging.FromContext(ctx).Info().Str("url", logging.TruncateURL(raw, logURLMaxLen)).Msg("opening in system browser")

	if err := uc.opener.Open(ctx, raw); err != nil {
		return fmt.Errorf("failed to open %s: %w", raw, err)
	}
	return nil
}
