package config

import (
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360/semsubject/errors"
)

// Config is the declarative routing document. It describes permission
// sets, translation mappings, and parser options; Build* methods
// compile the sections into engine objects.
type Config struct {
	Version      string            `json:"version"`
	Permissions  PermissionsConfig `json:"permissions,omitempty"`
	Translations []MappingConfig   `json:"translations,omitempty"`
	Parser       ParserConfig      `json:"parser,omitempty"`
}

// PermissionsConfig declares a permission set.
type PermissionsConfig struct {
	// DefaultPolicy is "allow" or "deny". Empty means deny.
	DefaultPolicy string       `json:"default_policy,omitempty"`
	Rules         []RuleConfig `json:"rules,omitempty"`
}

// RuleConfig declares a single permission rule.
type RuleConfig struct {
	Pattern string `json:"pattern"`
	// Policy is "allow" or "deny".
	Policy string `json:"policy"`
	// Operations lists "publish", "subscribe", "request". Empty means
	// all operations.
	Operations  []string `json:"operations,omitempty"`
	Description string   `json:"description,omitempty"`
}

// MappingConfig declares a translation rule built from a source
// pattern and a target template with {context}, {aggregate}, {event}
// and {version} placeholders. Target constrains translation results;
// Reverse, when present, makes the mapping bidirectional.
type MappingConfig struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Template string `json:"template"`
	Target   string `json:"target,omitempty"`
	Reverse  string `json:"reverse,omitempty"`
}

// ParserConfig declares parser options.
type ParserConfig struct {
	StandardRules bool `json:"standard_rules,omitempty"`
	// FlexibleContexts lists contexts whose aggregates may nest.
	FlexibleContexts []string `json:"flexible_contexts,omitempty"`
}

// Load reads and parses a routing document from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindValidation, "read config "+path)
	}
	return Parse(data)
}

// Parse validates raw JSON against the document schema and decodes it.
func Parse(data []byte) (*Config, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.KindValidation, "decode config")
	}
	return &cfg, nil
}

func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.Wrap(err, errors.KindValidation, "validate config")
	}

	if !result.Valid() {
		msg := "config document is invalid:"
		for _, desc := range result.Errors() {
			msg += "\n  - " + desc.Field() + ": " + desc.Description()
		}
		return errors.Validationf("%s", msg)
	}
	return nil
}
