// Package script checks JavaScript locally with the sobek parser before it
// is sent to the engine.
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/pagehost/internal/application/port"
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validator implements port.ScriptValidator. Successful checks are
// remembered so constant scripts are parsed once.
type Validator struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{seen: make(map[string]struct{})}
}

// ValidateFunctionBody compiles body as the body of an async function whose
// parameters are params.
func (v *Validator) ValidateFunctionBody(body string, params []string) error {
	for _, p := range params {
		if !identRe.MatchString(p) {
			return fmt.Errorf("invalid parameter name %q", p)
		}
	}

	src := WrapAsyncFunction(body, params)

	v.mu.Lock()
	_, ok := v.seen[src]
	v.mu.Unlock()
	if ok {
		return nil
	}

	if _, err := sobek.Compile("injected.js", src, false); err != nil {
		var syntaxErr *sobek.CompilerSyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("script syntax error: %s", syntaxErr.Error())
		}
		return fmt.Errorf("script does not compile: %w", err)
	}

	v.mu.Lock()
	v.seen[src] = struct{}{}
	v.mu.Unlock()
	return nil
}

// WrapAsyncFunction renders body as a parenthesised async function
// expression taking params positionally.
func WrapAsyncFunction(body string, params []string) string {
	var b strings.Builder
	b.WriteString("(async function(")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(") {\n")
	b.WriteString(body)
	b.WriteString("\n})")
	return b.String()
}

var _ port.ScriptValidator = (*Validator)(nil)
