package services

import (
	"context"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
)

// LedgerReaderSvc defines read operations over the account ledger.
type LedgerReaderSvc interface {
	// ListAccounts returns every account in creation order.
	ListAccounts(ctx context.Context) []domain.Account

	// GetAccount retrieves the account at the given ordinal.
	GetAccount(ctx context.Context, index int) (*domain.Account, error)

	// History returns an account's history entries, oldest first.
	History(ctx context.Context, index int) ([]domain.HistoryEntry, error)
}

// LedgerWriterSvc defines the balance-changing and account-lifecycle operations.
type LedgerWriterSvc interface {
	// CreateAccount appends a new account named after the global default
	// and returns it together with its ordinal.
	CreateAccount(ctx context.Context) (*domain.Account, int, error)

	// AdjustCoin applies a signed delta to an account's balance and appends
	// exactly one history entry. A delta that would push the balance below
	// zero aborts with apperrors.ErrInsufficientBalance and no mutation.
	AdjustCoin(ctx context.Context, index int, amount int, action domain.HistoryAction) (*domain.Account, error)

	// ResetAccount zeroes an account's balance and empties its history,
	// leaving its name and challenge list untouched.
	ResetAccount(ctx context.Context, index int) (*domain.Account, error)

	// ResetAllData erases the persisted document, returning the system to
	// first-run state.
	ResetAllData(ctx context.Context) error
}

// ExchangeSvc defines the coin cash-out flow.
type ExchangeSvc interface {
	// QuoteExchange checks the exchange precondition and returns the
	// balance and rate for the confirmation prompt.
	QuoteExchange(ctx context.Context, index int) (coin int, rate int, err error)

	// ConfirmExchange performs the cash-out: the account's entire balance
	// is removed with a single EXCHANGE history entry.
	ConfirmExchange(ctx context.Context, index int) (*domain.Account, error)
}

// ChallengeEditorSvc defines the staged, two-phase challenge-list editing
// session. Add and Remove mutate the in-memory document only; nothing is
// persisted until CommitDetailSettings.
type ChallengeEditorSvc interface {
	AddChallenge(ctx context.Context, index int, title string) ([]string, error)
	RemoveChallenge(ctx context.Context, index int, position int) ([]string, error)
	CommitDetailSettings(ctx context.Context, index int) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
// This is a facade for clients that need access to all operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	ExchangeSvc
	ChallengeEditorSvc
}
