package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file scheme unchanged", input: "file:///path/to/file.html", want: "file:///path/to/file.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "medium.com", want: "https://medium.com"},
		{name: "domain with path gets https", input: "medium.com/@itsuki.enjoy", want: "https://medium.com/@itsuki.enjoy"},
		{name: "surrounding space trimmed", input: "  example.com ", want: "https://example.com"},
		{name: "free text unchanged", input: "hello world", want: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://Medium.COM/@x", "medium.com"},
		{"https://medium.com:8443/path", "medium.com"},
		{"http://[::1]:8080/", "::1"},
		{"/relative/path", ""},
		{"not a url", ""},
		{"", ""},
		{"://broken", ""},
		{"  https://example.com  ", "example.com"},
		{"%zz", ""},
		{"mailto:someone", ""},
	}

	for _, tt := range tests {
		if got := Host(tt.input); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSameHost(t *testing.T) {
	if !SameHost("https://medium.com/@x", "https://MEDIUM.com/other") {
		t.Error("expected hosts to match case-insensitively")
	}
	if SameHost("https://example.com", "https://medium.com") {
		t.Error("different hosts must not match")
	}
	if SameHost("", "") {
		t.Error("empty hosts must not match")
	}
}

func TestExtractDomain(t *testing.T) {
	if got := ExtractDomain("https://www.Example.com/a"); got != "example.com" {
		t.Errorf("ExtractDomain = %q, want example.com", got)
	}
}

func TestSanitizeForFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Itsuki's page", "Itsuki's_page"},
		{"a/b:c", "a_b_c"},
		{"  spaced   out  ", "spaced_out"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeForFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeForFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
