package entity

import (
	"fmt"
	"strings"
	"time"
)

// SameSite mirrors the cookie SameSite attribute.
type SameSite string

const (
	SameSiteUnset  SameSite = ""
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// Cookie is an HTTP cookie held in the engine's data store.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure"`
	HTTPOnly bool      `json:"http_only"`
	SameSite SameSite  `json:"same_site,omitempty"`
	// Session cookies have no expiry and die with the data store.
	Session bool `json:"session"`
}

// Validate checks the fields the engine requires to store a cookie.
func (c Cookie) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("cookie name is required")
	}
	if strings.ContainsAny(c.Name, "=; \t\r\n") {
		return fmt.Errorf("cookie name %q contains invalid characters", c.Name)
	}
	if strings.TrimSpace(c.Domain) == "" {
		return fmt.Errorf("cookie %q: domain is required", c.Name)
	}
	switch c.SameSite {
	case SameSiteUnset, SameSiteStrict, SameSiteLax, SameSiteNone:
	default:
		return fmt.Errorf("cookie %q: invalid same-site %q", c.Name, c.SameSite)
	}
	return nil
}

// ParseSameSite parses a user-supplied SameSite value (case-insensitive).
func ParseSameSite(s string) (SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SameSiteUnset, nil
	case "strict":
		return SameSiteStrict, nil
	case "lax":
		return SameSiteLax, nil
	case "none":
		return SameSiteNone, nil
	default:
		return SameSiteUnset, fmt.Errorf("invalid same-site value %q", s)
	}
}
