package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaUsesTOMLKeys(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "home_url")
	assert.Contains(t, props, "navigation_log")
	assert.Contains(t, props, "description_cache_size")
	assert.NotContains(t, props, "HomeURL")
	assert.Equal(t, "pagehost configuration", doc["title"])
}

func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchema(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
