// Package url provides URL helpers shared by the policy layer and the host.
package url

import (
	"net/url"
	"strings"
)

// Normalize adds an https:// prefix to URL-like inputs that lack a scheme.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if hasKnownScheme(input) {
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

func hasKnownScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"),
		strings.HasPrefix(input, "https://"),
		strings.HasPrefix(input, "file://"),
		strings.HasPrefix(input, "about:"),
		strings.HasPrefix(input, "data:"):
		return true
	}
	return false
}

// Host returns the case-normalized hostname of rawURL without port.
// It returns "" for relative, malformed or host-less URLs.
func Host(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// SameHost reports whether both URLs carry the same non-empty host.
func SameHost(a, b string) bool {
	ha := Host(a)
	return ha != "" && ha == Host(b)
}

// ExtractDomain returns the host with a leading "www." removed.
func ExtractDomain(rawURL string) string {
	return strings.TrimPrefix(Host(rawURL), "www.")
}

// SanitizeForFilename replaces characters that are unsafe in file names.
// Runs of whitespace collapse to a single underscore.
func SanitizeForFilename(name string) string {
	replacer := strings.NewReplacer(
		":", "_",
		"/", "_",
		"\\", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	cleaned := replacer.Replace(strings.TrimSpace(name))
	return strings.Join(strings.Fields(cleaned), "_")
}
