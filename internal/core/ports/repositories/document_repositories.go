package repositories

import (
	"context"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
)

// DocumentLoader defines the read side of the document store.
type DocumentLoader interface {
	// Load materializes the persisted document. Missing or corrupt storage
	// yields a fresh default document; Load never fails.
	Load(ctx context.Context) *domain.Document
}

// DocumentWriter defines the write side of the document store.
type DocumentWriter interface {
	// Save serializes the full document, overwriting any previous value.
	Save(ctx context.Context, doc *domain.Document) error

	// Reset erases the persisted document and returns a fresh default one.
	Reset(ctx context.Context) (*domain.Document, error)
}

// DocumentRepositoryFacade combines all document store operations.
// This is a facade for clients that need access to all operations.
type DocumentRepositoryFacade interface {
	DocumentLoader
	DocumentWriter
}
