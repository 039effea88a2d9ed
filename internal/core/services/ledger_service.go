package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chorecoin/chore_coin_app/internal/apperrors"
	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portsrepo "github.com/chorecoin/chore_coin_app/internal/core/ports/repositories"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
)

// ledgerService implements the LedgerSvcFacade interface. All operations
// follow the same shape: lock the session, validate, mutate, persist.
// Coin operations persist immediately; challenge edits are staged in the
// in-memory document until CommitDetailSettings.
type ledgerService struct {
	BaseService
	session *DocumentSession
	docRepo portsrepo.DocumentRepositoryFacade
}

// NewLedgerService creates the account ledger over the shared document session.
func NewLedgerService(session *DocumentSession, docRepo portsrepo.DocumentRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		session: session,
		docRepo: docRepo,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// accountAt resolves an ordinal inside a locked document.
func accountAt(doc *domain.Document, index int) (*domain.Account, error) {
	acc, ok := doc.Account(index)
	if !ok {
		return nil, fmt.Errorf("%w: account index %d", apperrors.ErrNotFound, index)
	}
	return acc, nil
}

// persist writes the full document through the repository. The in-memory
// mutation has already happened; on failure the two diverge until the
// next successful save, so the error is logged and surfaced.
func (s *ledgerService) persist(ctx context.Context, doc *domain.Document) error {
	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to persist document")
		return fmt.Errorf("persist document: %w", err)
	}
	return nil
}

func (s *ledgerService) ListAccounts(ctx context.Context) []domain.Account {
	doc := s.session.Lock()
	defer s.session.Unlock()

	accounts := make([]domain.Account, len(doc.Accounts))
	for i := range doc.Accounts {
		accounts[i] = doc.Accounts[i].Clone()
	}
	return accounts
}

func (s *ledgerService) GetAccount(ctx context.Context, index int) (*domain.Account, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}
	snapshot := acc.Clone()
	return &snapshot, nil
}

func (s *ledgerService) History(ctx context.Context, index int) ([]domain.HistoryEntry, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}
	return append([]domain.HistoryEntry(nil), acc.History...), nil
}

func (s *ledgerService) CreateAccount(ctx context.Context) (*domain.Account, int, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	// Duplicate names are allowed; the default name comes from settings.
	account := domain.NewAccount(doc.GlobalSettings.NewAccountName)
	doc.Accounts = append(doc.Accounts, account)
	index := len(doc.Accounts) - 1

	if err := s.persist(ctx, doc); err != nil {
		return nil, 0, err
	}

	s.LogInfo(ctx, "Account created",
		slog.Int("account_index", index),
		slog.String("account_name", account.Name))
	snapshot := doc.Accounts[index].Clone()
	return &snapshot, index, nil
}

func (s *ledgerService) AdjustCoin(ctx context.Context, index int, amount int, action domain.HistoryAction) (*domain.Account, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: amount must be a nonzero delta", apperrors.ErrValidation)
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, action)
	}

	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.applyDelta(ctx, doc, acc, index, amount, action)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// applyDelta is the single balance-changing code path: precondition check,
// balance update, exactly one history entry, immediate persist. Callers
// must hold the session lock.
func (s *ledgerService) applyDelta(ctx context.Context, doc *domain.Document, acc *domain.Account, index int, amount int, action domain.HistoryAction) (*domain.Account, error) {
	if !acc.CanApply(amount) {
		s.LogDebug(ctx, "Coin adjustment rejected",
			slog.Int("account_index", index),
			slog.Int("coin", acc.Coin),
			slog.Int("amount", amount))
		return nil, fmt.Errorf("%w: balance %d, delta %d", apperrors.ErrInsufficientBalance, acc.Coin, amount)
	}

	acc.Coin += amount
	acc.History = append(acc.History, domain.NewHistoryEntry(amount, action, time.Now()))

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Coin adjusted",
		slog.Int("account_index", index),
		slog.Int("amount", amount),
		slog.String("action", string(action)),
		slog.Int("coin", acc.Coin))
	snapshot := acc.Clone()
	return &snapshot, nil
}

func (s *ledgerService) QuoteExchange(ctx context.Context, index int) (int, int, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return 0, 0, err
	}

	rate := doc.GlobalSettings.ExchangeRate
	if acc.Coin < rate {
		return 0, 0, fmt.Errorf("%w: balance %d below rate %d", apperrors.ErrRateNotMet, acc.Coin, rate)
	}
	return acc.Coin, rate, nil
}

func (s *ledgerService) ConfirmExchange(ctx context.Context, index int) (*domain.Account, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}

	// The precondition is re-checked here: the quote and the confirmation
	// are separate requests and the balance may have moved between them.
	rate := doc.GlobalSettings.ExchangeRate
	if acc.Coin < rate {
		return nil, fmt.Errorf("%w: balance %d below rate %d", apperrors.ErrRateNotMet, acc.Coin, rate)
	}

	// Exchange cashes out the entire balance, not one rate-sized unit.
	return s.applyDelta(ctx, doc, acc, index, -acc.Coin, domain.ActionExchange)
}

func (s *ledgerService) AddChallenge(ctx context.Context, index int, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: challenge title must not be blank", apperrors.ErrValidation)
	}

	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}

	// Staged edit: nothing is persisted until CommitDetailSettings.
	acc.Challenges = append(acc.Challenges, title)
	return append([]string(nil), acc.Challenges...), nil
}

func (s *ledgerService) RemoveChallenge(ctx context.Context, index int, position int) ([]string, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(acc.Challenges) {
		return nil, fmt.Errorf("%w: challenge position %d", apperrors.ErrNotFound, position)
	}

	// Staged edit: subsequent entries shift left, nothing is persisted yet.
	acc.Challenges = append(acc.Challenges[:position], acc.Challenges[position+1:]...)
	return append([]string(nil), acc.Challenges...), nil
}

func (s *ledgerService) CommitDetailSettings(ctx context.Context, index int) error {
	doc := s.session.Lock()
	defer s.session.Unlock()

	if _, err := accountAt(doc, index); err != nil {
		return err
	}

	if err := s.persist(ctx, doc); err != nil {
		return err
	}

	s.LogInfo(ctx, "Detail settings committed", slog.Int("account_index", index))
	return nil
}

func (s *ledgerService) ResetAccount(ctx context.Context, index int) (*domain.Account, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	acc, err := accountAt(doc, index)
	if err != nil {
		return nil, err
	}

	// Name and challenges survive; balance and history do not.
	acc.Coin = 0
	acc.History = []domain.HistoryEntry{}

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account reset",
		slog.Int("account_index", index),
		slog.String("account_name", acc.Name))
	snapshot := acc.Clone()
	return &snapshot, nil
}

func (s *ledgerService) ResetAllData(ctx context.Context) error {
	s.session.Lock()
	defer s.session.Unlock()

	fresh, err := s.docRepo.Reset(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to reset document store")
		return fmt.Errorf("reset document store: %w", err)
	}

	s.session.Replace(fresh)
	s.LogInfo(ctx, "All data reset to first-run state")
	return nil
}
