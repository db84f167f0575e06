package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dyluth/patterns/pkg/abstractfactory"
	"github.com/dyluth/patterns/pkg/prototype"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given
const DefaultPath = "patterns.yml"

// PatternsConfig represents the top-level patterns.yml configuration
type PatternsConfig struct {
	Version   string           `yaml:"version"`
	Prototype *PrototypeConfig `yaml:"prototype,omitempty"`
	Factory   *FactoryConfig   `yaml:"factory,omitempty"`
	Logging   *LoggingConfig   `yaml:"logging,omitempty"`
}

// PrototypeConfig seeds the prototype used by the clone command
type PrototypeConfig struct {
	Variant     string  `yaml:"variant"`                // "base" or "extended"
	IntValue    *int    `yaml:"int_value,omitempty"`    // default 1
	StringValue *string `yaml:"string_value,omitempty"` // default "Value"
	BoolValue   *bool   `yaml:"bool_value,omitempty"`   // extended only, default true
}

// FactoryConfig selects the UI family used by the factory command
type FactoryConfig struct {
	Platform string `yaml:"platform"` // "mobile" or "desktop"
}

// LoggingConfig controls the zap logger level
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Default returns a validated configuration with every default applied.
func Default() *PatternsConfig {
	cfg := &PatternsConfig{Version: "1.0"}
	// Defaults always validate
	_ = cfg.Validate()
	return cfg
}

// Validate performs strict validation on the configuration and fills in
// defaults for omitted sections.
func (c *PatternsConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Prototype == nil {
		c.Prototype = &PrototypeConfig{}
	}
	if err := c.Prototype.Validate(); err != nil {
		return err
	}

	if c.Factory == nil {
		c.Factory = &FactoryConfig{}
	}
	if c.Factory.Platform == "" {
		c.Factory.Platform = string(abstractfactory.PlatformMobile)
	}
	if err := abstractfactory.Platform(c.Factory.Platform).Validate(); err != nil {
		return fmt.Errorf("factory: invalid platform: %s (must be 'mobile' or 'desktop')", c.Factory.Platform)
	}

	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: invalid level: %s (must be 'debug', 'info', 'warn', or 'error')", c.Logging.Level)
	}

	return nil
}

// Validate checks the prototype section and applies field defaults
func (p *PrototypeConfig) Validate() error {
	if p.Variant == "" {
		p.Variant = string(prototype.VariantBase)
	}
	if err := prototype.Variant(p.Variant).Validate(); err != nil {
		return fmt.Errorf("prototype: invalid variant: %w", err)
	}

	if p.IntValue == nil {
		v := prototype.DefaultIntValue
		p.IntValue = &v
	}
	if p.StringValue == nil {
		s := prototype.DefaultStringValue
		p.StringValue = &s
	}

	if p.BoolValue != nil && prototype.Variant(p.Variant) != prototype.VariantExtended {
		return fmt.Errorf("prototype: bool_value is only valid for the 'extended' variant")
	}
	if p.BoolValue == nil && prototype.Variant(p.Variant) == prototype.VariantExtended {
		b := prototype.DefaultBoolValue
		p.BoolValue = &b
	}

	return nil
}

// Build constructs the configured prototype with its seed values applied.
// Must be called on a validated config.
func (p *PrototypeConfig) Build() (prototype.Value, error) {
	v, err := prototype.New(prototype.Variant(p.Variant))
	if err != nil {
		return nil, err
	}

	v.Update(prototype.WithIntValue(*p.IntValue), prototype.WithStringValue(*p.StringValue))
	if ext, ok := v.(*prototype.Extended); ok && p.BoolValue != nil {
		ext.SetBoolValue(*p.BoolValue)
	}
	return v, nil
}

// Parse decodes and validates a configuration document. Unknown keys are rejected.
func Parse(data []byte) (*PatternsConfig, error) {
	var config PatternsConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Load reads and validates patterns.yml from the specified path
func Load(path string) (*PatternsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*PatternsConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
