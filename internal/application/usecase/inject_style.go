package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/logging"
)

// InjectedStyleElementID identifies the style element added to pages.
const InjectedStyleElementID = "pagehost-injected-style"

// injectStyleScript reuses one style element so repeated injections on the
// same document do not stack.
const injectStyleScript = `
let element = document.getElementById(id);
if (element === null) {
  element = document.createElement('style');
  element.id = id;
  (document.head || document.documentElement).appendChild(element);
}
element.textContent = css;
return true;
`

var injectStyleParams = []string{"css", "id"}

const removeStyleScript = `
const element = document.getElementById(id);
if (element !== null) {
  element.remove();
}
return true;
`

var removeStyleParams = []string{"id"}

// InjectStyleConfig controls the injected stylesheet.
type InjectStyleConfig struct {
	Enabled         bool
	BackgroundColor string
}

// InjectStyleUseCase paints the page background by injecting CSS. The
// configured Enabled flag is only the initial state; Toggle flips it.
type InjectStyleUseCase struct {
	validator port.ScriptValidator
	cfg       InjectStyleConfig
	enabled   atomic.Bool
}

// NewInjectStyleUseCase creates a new style injection use case.
// validator may be nil to skip the local syntax check.
func NewInjectStyleUseCase(validator port.ScriptValidator, cfg InjectStyleConfig) *InjectStyleUseCase {
	uc := &InjectStyleUseCase{validator: validator, cfg: cfg}
	uc.enabled.Store(cfg.Enabled)
	return uc
}

// Enabled reports whether the background is currently shown.
func (uc *InjectStyleUseCase) Enabled() bool {
	return uc.enabled.Load()
}

// BackgroundCSS returns the stylesheet injected for color.
func BackgroundCSS(color string) string {
	return fmt.Sprintf("body, main, div { background-color: %s !important; }", strings.TrimSpace(color))
}

// Execute injects the background stylesheet into page. It is a no-op when
// injection is disabled.
func (uc *InjectStyleUseCase) Execute(ctx context.Context, page port.WebPage) error {
	if !uc.enabled.Load() || strings.TrimSpace(uc.cfg.BackgroundColor) == "" {
		return nil
	}
	if page == nil {
		return ErrNoPage
	}
	log := logging.FromContext(ctx)

	if uc.validator != nil {
		if err := uc.validator.ValidateFunctionBody(injectStyleScript, injectStyleParams); err != nil {
			return fmt.Errorf("style script rejected: %w", err)
		}
	}

	css := BackgroundCSS(uc.cfg.BackgroundColor)
	if _, err := page.CallJavaScript(ctx, injectStyleScript, map[string]any{
		"css": css,
		"id":  InjectedStyleElementID,
	}); err != nil {
		return fmt.Errorf("failed to inject style: %w", err)
	}

	log.Debug().Str("background", uc.cfg.BackgroundColor).Msg("style injected")
	return nil
}

// Toggle flips the background on page and returns the new state. Showing it
// injects the stylesheet again; hiding it removes the style element.
func (uc *InjectStyleUseCase) Toggle(ctx context.Context, page port.WebPage) (bool, error) {
	if page == nil {
		return uc.enabled.Load(), ErrNoPage
	}
	var shown bool
	for {
		cur := uc.enabled.Load()
		shown = !cur
		if uc.enabled.CompareAndSwap(cur, shown) {
			break
		}
	}
	if shown {
		return true, uc.Execute(ctx, page)
	}
	return false, uc.Remove(ctx, page)
}

// Remove deletes the injected style element from page, if present.
func (uc *InjectStyleUseCase) Remove(ctx context.Context, page port.WebPage) error {
	if page == nil {
		return ErrNoPage
	}
	if uc.validator != nil {
		if err := uc.validator.ValidateFunctionBody(removeStyleScript, removeStyleParams); err != nil {
			return fmt.Errorf("style script rejected: %w", err)
		}
	}
	if _, err := page.CallJavaScript(ctx, removeStyleScript, map[string]any{
		"id": InjectedStyleElementID,
	}); err != nil {
		return fmt.Errorf("failed to remove style: %w", err)
	}
	logging.FromContext(ctx).Debug().Msg("style removed")
	return nil
}
