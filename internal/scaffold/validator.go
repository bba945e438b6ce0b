package scaffold

import (
	"fmt"
	"os"
)

// CheckExisting returns an error if a config file already exists at path
func CheckExisting(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration already exists: %s\n\nUse 'tailsum init --force' to overwrite it", path)
	}
	return nil
}
