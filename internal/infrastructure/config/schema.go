package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/bnema/pagehost/internal/domain/build"
)

// Schema reflects the JSON schema of Config. Property names are the TOML
// keys so editors can validate config.toml.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(build.RepoURL() + "/config.schema.json")
	schema.Title = "pagehost configuration"
	schema.Description = "Configuration schema for pagehost, a terminal host for a scoped web page"
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchema writes the schema document to path.
func WriteSchema(path string) error {
	data, err := SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
