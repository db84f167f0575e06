package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/patterns/pkg/prototype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "patterns.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
prototype:
  variant: extended
  int_value: 2
  string_value: Value2
  bool_value: false
factory:
  platform: desktop
logging:
  level: debug
`)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, "extended", config.Prototype.Variant)
	assert.Equal(t, 2, *config.Prototype.IntValue)
	assert.Equal(t, "Value2", *config.Prototype.StringValue)
	assert.False(t, *config.Prototype.BoolValue)
	assert.Equal(t, "desktop", config.Factory.Platform)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/patterns.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
prototype:
  - this is invalid
    yaml syntax
`)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_UnknownField(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
prototype:
  variant: base
  colour: blue
`)

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		config, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("present file is loaded", func(t *testing.T) {
		configPath := writeConfig(t, "version: \"1.0\"\nfactory:\n  platform: desktop\n")
		config, err := LoadOrDefault(configPath)
		require.NoError(t, err)
		assert.Equal(t, "desktop", config.Factory.Platform)
	})

	t.Run("invalid file is still an error", func(t *testing.T) {
		configPath := writeConfig(t, "version: \"2.0\"\n")
		_, err := LoadOrDefault(configPath)
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, "base", config.Prototype.Variant)
	assert.Equal(t, prototype.DefaultIntValue, *config.Prototype.IntValue)
	assert.Equal(t, prototype.DefaultStringValue, *config.Prototype.StringValue)
	assert.Nil(t, config.Prototype.BoolValue)
	assert.Equal(t, "mobile", config.Factory.Platform)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unsupported version",
			yaml:    "version: \"2.0\"\n",
			wantErr: "unsupported version: 2.0",
		},
		{
			name:    "missing version",
			yaml:    "prototype:\n  variant: base\n",
			wantErr: "unsupported version",
		},
		{
			name:    "unknown variant",
			yaml:    "version: \"1.0\"\nprototype:\n  variant: triple\n",
			wantErr: "prototype: invalid variant",
		},
		{
			name:    "bool on base variant",
			yaml:    "version: \"1.0\"\nprototype:\n  variant: base\n  bool_value: true\n",
			wantErr: "only valid for the 'extended' variant",
		},
		{
			name:    "unknown platform",
			yaml:    "version: \"1.0\"\nfactory:\n  platform: tv\n",
			wantErr: "factory: invalid platform: tv",
		},
		{
			name:    "unknown log level",
			yaml:    "version: \"1.0\"\nlogging:\n  level: loud\n",
			wantErr: "logging: invalid level: loud",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ExtendedDefaultsBool(t *testing.T) {
	config, err := Parse([]byte("version: \"1.0\"\nprototype:\n  variant: extended\n"))
	require.NoError(t, err)
	require.NotNil(t, config.Prototype.BoolValue)
	assert.True(t, *config.Prototype.BoolValue)
}

func TestPrototypeConfig_Build(t *testing.T) {
	t.Run("extended with seed values", func(t *testing.T) {
		config, err := Parse([]byte(`version: "1.0"
prototype:
  variant: extended
  int_value: 2
  string_value: Value2
  bool_value: false
`))
		require.NoError(t, err)

		v, err := config.Prototype.Build()
		require.NoError(t, err)

		ext, ok := v.(*prototype.Extended)
		require.True(t, ok)
		assert.Equal(t, 2, ext.IntValue())
		assert.Equal(t, "Value2", ext.StringValue())
		assert.False(t, ext.BoolValue())
	})

	t.Run("defaults build a default base", func(t *testing.T) {
		v, err := Default().Prototype.Build()
		require.NoError(t, err)
		assert.True(t, prototype.Identical(prototype.NewBase(), v))
	})
}
