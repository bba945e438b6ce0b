package scaffold

import (
	"embed"
	"fmt"
	"os"

	"github.com/dyluth/tailsum/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes a default configuration file to path.
// If force is true, an existing file at path is replaced.
func Initialize(path string, force bool) error {
	if force {
		if err := handleForce(path); err != nil {
			return err
		}
	}

	file, err := getTemplateFile(path)
	if err != nil {
		return err
	}

	if err := writeFile(file); err != nil {
		return err
	}

	return validateCreatedFile(path)
}

// handleForce removes an existing config file if --force was specified
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// getTemplateFile reads the embedded config template
func getTemplateFile(path string) (FileInfo, error) {
	content, err := templatesFS.ReadFile("templates/tailsum.yml.tmpl")
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to read tailsum.yml template: %w", err)
	}
	return FileInfo{
		Path:        path,
		Content:     content,
		Permissions: 0644,
	}, nil
}

// writeFile writes the file without clobbering one that appeared concurrently
func writeFile(file FileInfo) error {
	f, err := os.OpenFile(file.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, file.Permissions)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", file.Path, err)
	}
	if _, err := f.Write(file.Content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", file.Path, err)
	}
	return f.Close()
}

// validateCreatedFile loads the written file through the normal config path
func validateCreatedFile(path string) error {
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not a valid configuration: %w", path, err)
	}
	return nil
}
