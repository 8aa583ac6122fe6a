package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/logging"
)

// ManageCookiesUseCase reads and writes the page's cookie store.
type ManageCookiesUseCase struct{}

// NewManageCookiesUseCase creates a new cookie use case.
func NewManageCookiesUseCase() *ManageCookiesUseCase {
	return &ManageCookiesUseCase{}
}

// List returns the cookies of page sorted by domain then name. A non-empty
// domain keeps cookies for that domain and its subdomains.
func (uc *ManageCookiesUseCase) List(ctx context.Context, page port.WebPage, domain string) ([]entity.Cookie, error) {
	if page == nil {
		return nil, ErrNoPage
	}
	cookies, err := page.Cookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}

	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "."))
	out := make([]entity.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if domain == "" || cookieMatchesDomain(c.Domain, domain) {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		di := strings.TrimPrefix(out[i].Domain, ".")
		dj := strings.TrimPrefix(out[j].Domain, ".")
		if di != dj {
			return di < dj
		}
		return out[i].Name < out[j].Name
	})

	logging.FromContext(ctx).Debug().Int("count", len(out)).Str("domain", domain).Msg("listed cookies")
	return out, nil
}

// Set validates and stores cookie.
func (uc *ManageCookiesUseCase) Set(ctx context.Context, page port.WebPage, cookie entity.Cookie) error {
	if page == nil {
		return ErrNoPage
	}
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	if err := cookie.Validate(); err != nil {
		return err
	}
	if err := page.SetCookie(ctx, cookie); err != nil {
		return fmt.Errorf("failed to set cookie %q: %w", cookie.Name, err)
	}

	logging.FromContext(ctx).Debug().
		Str("name", cookie.Name).
		Str("domain", cookie.Domain).
		Bool("session", cookie.Session).
		Msg("cookie set")
	return nil
}

func cookieMatchesDomain(cookieDomain, domain string) bool {
	cd := strings.ToLower(strings.TrimPrefix(cookieDomain, "."))
	return cd == domain || strings.HasSuffix(cd, "."+domain)
}
