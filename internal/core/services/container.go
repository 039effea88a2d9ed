package services

import (
	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portsrepo "github.com/chorecoin/chore_coin_app/internal/core/ports/repositories"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The loaded document becomes the shared
// session both services operate on.
func NewServiceContainer(doc *domain.Document, docRepo portsrepo.DocumentRepositoryFacade) *portssvc.ServiceContainer {
	session := NewDocumentSession(doc)

	return &portssvc.ServiceContainer{
		Ledger:   NewLedgerService(session, docRepo),
		Settings: NewSettingsService(session, docRepo),
	}
}
