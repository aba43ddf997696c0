package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// WriteFigures writes each figure specification as <name>.json in dir.
// Figures are declarative; an external renderer turns them into images.
func WriteFigures(dir string, figures []Figure) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.NewStorageError("failed to create figures directory", err)
	}

	paths := make([]string, 0, len(figures))
	for _, fig := range figures {
		path := filepath.Join(dir, fig.Name+".json")
		data, err := json.MarshalIndent(fig, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal figure %s: %w", fig.Name, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, apperrors.NewStorageError("failed to write figure spec", err).
				WithContext("path", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteNarrative writes the narrative interpretation as a text file.
func WriteNarrative(path, narrative string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}
	if err := os.WriteFile(path, []byte(narrative), 0644); err != nil {
		return apperrors.NewStorageError("failed to write narrative", err).
			WithContext("path", path)
	}
	return nil
}
