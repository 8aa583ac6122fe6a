package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionsOf(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sections := sectionsOf(string(content))
	require.NotEmpty(t, sections)
	assert.IsNonDecreasing(t, sections)
	assert.True(t, strings.HasPrefix(string(content), "home_url = "))

	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, cfg.HomeURL, back.HomeURL)
	assert.Equal(t, cfg.Engine.ContentMode, back.Engine.ContentMode)
	assert.Equal(t, cfg.Injection.BackgroundColor, back.Injection.BackgroundColor)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `home_url = 'https://example.com'

[logging]
level = 'info'

[engine]
headless = true

[navigation_log]
enabled = true

[engine.viewport]
width = 0
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[engine]",
		"[engine.viewport]",
		"[logging]",
		"[navigation_log]",
	}, sectionsOf(result))
	assert.True(t, strings.HasPrefix(result, "home_url = "))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
