// Package output writes rendered pages to disk.
// Filenames are derived from the language and page title
// (e.g. en_Lorem_Ipsum.md).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under a name built from language and title and
// returns the path written.
func (w *Writer) Write(language, title string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(language, title)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename joins the sanitized language and title with an underscore.
// Example: ("pl", "Kraków Główny") → pl_Kraków_Główny
func Filename(language, title string) string {
	name := sanitize(title)
	if name == "" {
		name = "page"
	}
	if language == "" {
		return name
	}
	return sanitize(language) + "_" + name
}

// sanitize replaces everything except letters and digits with underscores
// and trims leading and trailing underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
