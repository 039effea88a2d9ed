// Package jsonfile implements the document store on a single JSON file.
// The whole document is serialized under one fixed path; there is no
// partial update and no versioned schema, matching the persisted-blob
// contract of the tracker.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portsrepo "github.com/chorecoin/chore_coin_app/internal/core/ports/repositories"
)

// DocumentRepository persists the tracker document as one JSON file.
type DocumentRepository struct {
	path   string
	logger *slog.Logger
}

// Ensure DocumentRepository implements the repository facade.
var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

// NewDocumentRepository creates a repository rooted at path, creating the
// parent directory if needed.
func NewDocumentRepository(path string, logger *slog.Logger) (*DocumentRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentRepository{path: path, logger: logger}, nil
}

// Load materializes the persisted document. A missing file, an unreadable
// file, or content that fails to parse all yield a fresh default document;
// a document that parses but is missing sections is repaired field by
// field. Load never fails: corrupt storage is recovered destructively.
func (r *DocumentRepository) Load(ctx context.Context) *domain.Document {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("Data file unreadable, starting fresh",
				slog.String("path", r.path),
				slog.String("error", err.Error()))
		}
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn("Data file corrupt, starting fresh",
			slog.String("path", r.path),
			slog.String("error", err.Error()))
		return domain.NewDocument()
	}

	doc.Repair()
	return &doc
}

// Save serializes the full document and atomically replaces the previous
// file via a temp-file rename, so a crash mid-write never leaves a
// half-written document behind.
func (r *DocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Reset erases the persisted document and returns a fresh default one, so
// the caller can swap its in-memory state without a process restart.
func (r *DocumentRepository) Reset(ctx context.Context) (*domain.Document, error) {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove data file: %w", err)
	}
	return domain.NewDocument(), nil
}
