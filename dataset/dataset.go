// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/name-picker/models"
)

// Dataset format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

//go:embed all_names.json
var defaultNames []byte

//go:embed schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// ValidationError lists every schema violation found in a dataset
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid dataset: " + strings.Join(e.Problems, "; ")
}

// Default returns the embedded dataset
func Default() ([]models.NameRecord, error) {
	return Parse(defaultNames, FormatJSON)
}

// LoadFile reads a dataset file. The format comes from the extension.
func LoadFile(path string) ([]models.NameRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return Parse(data, format)
}

// FormatFromPath maps .json, .yaml and .yml to a format
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q", filepath.Ext(path))
	}
}

// Parse decodes and validates a dataset
func Parse(data []byte, format string) ([]models.NameRecord, error) {
	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	// Validated documents round-trip through JSON into the typed records
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize dataset: %w", err)
	}

	var records []models.NameRecord
	if err := json.Unmarshal(normalized, &records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return records, nil
}

func validate(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile dataset schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate dataset: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}
