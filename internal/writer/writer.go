// Package writer serializes a generated catalog to disk. The document is
// schema-validated before anything touches the filesystem, so a failed run
// never leaves a partial or malformed file behind.
package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/validation"
)

// CatalogSchemaPath is the JSON schema the serialized document must satisfy.
const CatalogSchemaPath = "configs/schemas/catalog.schema.json"

// Writer persists catalog documents.
type Writer interface {
	Write(ctx context.Context, doc *domain.Document, path string) error
}

type writer struct {
	schemaValidator validation.SchemaValidator
}

// New creates a Writer backed by the catalog schema validator.
func New() Writer {
	return &writer{schemaValidator: validation.NewSchemaValidator()}
}

// Write serializes doc as indented JSON, validates it against the catalog
// schema, creates intermediate directories, and writes the file with a
// trailing newline. Field order follows the struct definitions, so output
// is stable and diff-friendly across runs.
func (w *writer) Write(ctx context.Context, doc *domain.Document, path string) error {
	log := logger.FromContext(ctx)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	data = append(data, '\n')

	if err := w.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return fmt.Errorf("generated catalog failed schema validation: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog to %s: %w", path, err)
	}

	log.Info("catalog written", "path", path, "bytes", len(data))
	return nil
}
