package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

// File reads a previously downloaded export from disk.
type File struct {
	path   string
	format sheet.Format
}

// NewFile creates a File source. An empty format is guessed from the extension.
func NewFile(path string, format sheet.Format) *File {
	if format == "" {
		switch filepath.Ext(path) {
		case ".html", ".htm":
			format = sheet.FormatHTML
		case ".xlsx":
			format = sheet.FormatXLSX
		default:
			format = sheet.FormatCSV
		}
	}
	return &File{path: path, format: format}
}

// URL returns a file:// URL for logging.
func (f *File) URL() string {
	return "file://" + f.path
}

// Records reads and decodes the file.
func (f *File) Records(ctx context.Context) ([]sheet.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}

	records, err := sheet.Decode(f.format, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s export: %w", f.format, err)
	}
	return records, nil
}
