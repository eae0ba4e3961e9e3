package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var embeddedSchema string

// schemaURL is the $id of the embedded schema
const schemaURL = "https://github.com/umputun/quickqr/pkg/config/config"

var compiledSchema = sync.OnceValues(func() (*jsv.Schema, error) {
	doc, err := jsv.UnmarshalJSON(strings.NewReader(embeddedSchema))
	if err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}
	c := jsv.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add embedded schema: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}
	return sch, nil
})

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It catches a stale schema, out of range values and missing required values.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return verifyJSON(configData)
}

// verifyJSON validates raw config json against the embedded schema
func verifyJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsv.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return errors.New("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return errors.New("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if cfg.Render.Size == 0 {
		return errors.New("render.size is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
