package usecase

import (
	"context"
	"strings"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// describeScript reads a named meta tag; null when the tag is missing.
const describeScript = "const tag = document.querySelector(`meta[name=\"${name}\"]`);\n" +
	"if (tag !== null) {\n" +
	"  return tag.content;\n" +
	"}\n" +
	"return null;\n"

var describeParams = []string{"name"}

// GetPageDescriptionUseCase reads the page's meta description.
// Results are cached per URL; absent descriptions are not cached.
type GetPageDescriptionUseCase struct {
	validator port.ScriptValidator
	cache     port.Cache[string, string]
}

// NewGetPageDescriptionUseCase creates a new description use case.
// Either dependency may be nil.
func NewGetPageDescriptionUseCase(validator port.ScriptValidator, cache port.Cache[string, string]) *GetPageDescriptionUseCase {
	return &GetPageDescriptionUseCase{validator: validator, cache: cache}
}

// Execute returns the description of page at pageURL. Script failures and
// non-string results are logged and reported as absent.
func (uc *GetPageDescriptionUseCase) Execute(ctx context.Context, page port.WebPage, pageURL string) (string, bool) {
	log := logging.FromContext(ctx)
	if page == nil {
		return "", false
	}

	if uc.cache != nil && pageURL != "" {
		if desc, ok := uc.cache.Get(pageURL); ok {
			return desc, true
		}
	}

	if uc.validator != nil {
		if err := uc.validator.ValidateFunctionBody(describeScript, describeParams); err != nil {
			log.Error().Err(err).Msg("description script rejected")
			return "", false
		}
	}

	result, err := page.CallJavaScript(ctx, describeScript, map[string]any{"name": "description"})
	if err != nil {
		log.Warn().Err(err).Str("url", logging.TruncateURL(pageURL, logURLMaxLen)).Msg("error calling JS for description")
		return "", false
	}

	desc, ok := result.(string)
	if !ok || strings.TrimSpace(desc) == "" {
		return "", false
	}

	if uc.cache != nil && pageURL != "" {
		uc.cache.Set(pageURL, desc)
	}
	return desc, true
}
