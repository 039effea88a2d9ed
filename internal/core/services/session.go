package services

import (
	"sync"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
)

// DocumentSession owns the in-memory document shared by the ledger and
// settings services. The original tracker kept the document and the
// current selection as process-wide variables; here the document is an
// explicit session object and the selection is an explicit parameter on
// every operation.
//
// Operations run mutate-then-persist while holding the session lock, so
// each one is atomic with respect to the others even though the HTTP
// adapter serves requests concurrently.
type DocumentSession struct {
	mu  sync.Mutex
	doc *domain.Document
}

// NewDocumentSession wraps the loaded document.
func NewDocumentSession(doc *domain.Document) *DocumentSession {
	return &DocumentSession{doc: doc}
}

// Lock acquires the session lock and returns the document. The caller
// must call Unlock when its mutate+persist step is complete.
func (s *DocumentSession) Lock() *domain.Document {
	s.mu.Lock()
	return s.doc
}

// Unlock releases the session lock.
func (s *DocumentSession) Unlock() {
	s.mu.Unlock()
}

// Replace swaps the session's document. Callers must hold the lock.
func (s *DocumentSession) Replace(doc *domain.Document) {
	s.doc = doc
}
