package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/patterns/internal/config"
	"github.com/dyluth/patterns/internal/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietPrinter(t *testing.T) {
	t.Helper()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	printer.SetOutput(devNull, devNull)
	t.Cleanup(func() {
		printer.SetOutput(nil, nil)
		devNull.Close()
	})
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(string)
		wantErr   bool
	}{
		{
			name:      "fresh initialization",
			force:     false,
			setupFunc: func(dir string) {},
			wantErr:   false,
		},
		{
			name:  "force initialization replaces existing file",
			force: true,
			setupFunc: func(dir string) {
				os.WriteFile(filepath.Join(dir, "patterns.yml"), []byte("old content"), 0644)
			},
			wantErr: false,
		},
		{
			name:  "existing file without force",
			force: false,
			setupFunc: func(dir string) {
				os.WriteFile(filepath.Join(dir, "patterns.yml"), []byte("old content"), 0644)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietPrinter(t)
			dir := t.TempDir()
			tt.setupFunc(dir)

			err := Initialize(dir, tt.force)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "project already initialized")
				return
			}
			require.NoError(t, err)

			cfg, err := config.Load(filepath.Join(dir, "patterns.yml"))
			require.NoError(t, err)
			assert.Equal(t, "extended", cfg.Prototype.Variant)
			assert.Equal(t, 2, *cfg.Prototype.IntValue)
			assert.Equal(t, "Value2", *cfg.Prototype.StringValue)
			assert.Equal(t, "mobile", cfg.Factory.Platform)
		})
	}
}

func TestCheckExisting(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckExisting(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns.yml"), []byte("x"), 0644))
	err := CheckExisting(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patterns init --force")
}

func TestTemplateIsValidConfig(t *testing.T) {
	content, err := templatesFS.ReadFile("templates/patterns.yml.tmpl")
	require.NoError(t, err)

	cfg, err := config.Parse(content)
	require.NoError(t, err)
	assert.True(t, *cfg.Prototype.BoolValue)
}
