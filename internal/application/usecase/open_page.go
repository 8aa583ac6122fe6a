package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/pagehost/internal/application/port"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
	"github.com/bnema/pagehost/internal/logging"
)

// OpenPageUseCase creates an engine page and issues the initial load.
type OpenPageUseCase struct {
	engine port.WebEngine
}

// NewOpenPageUseCase creates a new open page use case.
func NewOpenPageUseCase(engine port.WebEngine) *OpenPageUseCase {
	return &OpenPageUseCase{engine: engine}
}

// OpenPageInput contains parameters for opening a page.
type OpenPageInput struct {
	URL     string
	Options port.EngineOptions
}

// OpenPageOutput contains the opened page.
type OpenPageOutput struct {
	Page port.WebPage
	// URL is the normalized URL that was loaded.
	URL string
}

// Execute creates the page and starts loading the URL. The page is closed
// again if the load cannot be issued.
func (uc *OpenPageUseCase) Execute(ctx context.Context, input OpenPageInput) (*OpenPageOutput, error) {
	log := logging.FromContext(ctx)

	target := urlutil.Normalize(strings.TrimSpace(input.URL))
	if target == "" {
		return nil, fmt.Errorf("open page: empty url")
	}

	page, err := uc.engine.NewPage(ctx, input.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	log.Debug().
		Str("url", target).
		Str("content_mode", string(input.Options.ContentMode)).
		Bool("javascript", input.Options.JavaScriptEnabled).
		Msg("loading initial page")

	if err := page.Load(ctx, target); err != nil {
		if cerr := page.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close page after load error")
		}
		return nil, fmt.Errorf("failed to load %s: %w", target, err)
	}

	log.Info().Str("url", target).Msg("page opened")
	return &OpenPageOutput{Page: page, URL: target}, nil
}
