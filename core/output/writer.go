// Package output handles file naming and writing for periodicdata outputs.
// Each element is written to its own file named by the zero-padded atomic
// number (e.g. 029.json), the same scheme the source site uses for its page
// paths.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to "data" under the current working
// directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = filepath.Join(wd, "data")
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data for the element with the given atomic number and
// returns the path written.
func (w *Writer) Write(atomicNumber int, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(atomicNumber, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename returns the zero-padded file name for an atomic number:
// Filename(8, ".json") → "008.json".
func Filename(atomicNumber int, ext string) string {
	return PadNumber(atomicNumber) + ext
}

// PadNumber left-pads an atomic number to three digits.
func PadNumber(atomicNumber int) string {
	return fmt.Sprintf("%03d", atomicNumber)
}
