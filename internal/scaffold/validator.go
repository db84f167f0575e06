package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/patterns/internal/config"
)

// CheckExisting returns an error if dir already contains patterns.yml
func CheckExisting(dir string) error {
	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("project already initialized\n\nFound existing: %s\n\nUse 'patterns init --force' to reinitialize (this will overwrite existing configuration)", config.DefaultPath)
	}
	return nil
}
