package services_test

import (
	"context"
	"testing"

	"github.com/chorecoin/chore_coin_app/internal/apperrors"
	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portsrepo "github.com/chorecoin/chore_coin_app/internal/core/ports/repositories"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDocumentRepository is a mock type for the DocumentRepositoryFacade interface
type MockDocumentRepository struct {
	mock.Mock
}

// Ensure MockDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) Load(ctx context.Context) *domain.Document {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Document)
}

func (m *MockDocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) Reset(ctx context.Context) (*domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDocumentRepository
	doc      *domain.Document
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.doc = domain.NewDocument()
	container := services.NewServiceContainer(suite.doc, suite.mockRepo)
	suite.service = container.Ledger
}

// seedAccount appends an account with the given balance and returns its ordinal.
func (suite *LedgerServiceTestSuite) seedAccount(name string, coin int) int {
	acc := domain.NewAccount(name)
	acc.Coin = coin
	suite.doc.Accounts = append(suite.doc.Accounts, acc)
	return len(suite.doc.Accounts) - 1
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateAccount_UsesDefaultNameAndPersists() {
	ctx := context.Background()
	suite.doc.GlobalSettings.NewAccountName = "Hana"
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Twice()

	account, index, err := suite.service.CreateAccount(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, index)
	suite.Equal("Hana", account.Name)
	suite.Zero(account.Coin)
	suite.Equal(domain.StarterChallenges, account.Challenges)
	suite.Empty(account.History)

	// Duplicate names are allowed; the second account lands at the next ordinal.
	_, index, err = suite.service.CreateAccount(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, index)
	suite.Len(suite.doc.Accounts, 2)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustCoin_AppendsExactlyOneHistoryEntry() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 3)
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()

	account, err := suite.service.AdjustCoin(ctx, index, 1, domain.ActionAdd)

	suite.Require().NoError(err)
	suite.Equal(4, account.Coin)
	suite.Require().Len(account.History, 1)
	suite.Equal(1, account.History[0].Amount)
	suite.Equal(domain.ActionAdd, account.History[0].Action)
	suite.Regexp(`^\d{2}/\d{2}$`, account.History[0].Date)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAdjustCoin_InsufficientBalance() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)

	account, err := suite.service.AdjustCoin(ctx, index, -1, domain.ActionRemove)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(account)

	// No mutation, no history entry, nothing persisted.
	suite.Zero(suite.doc.Accounts[index].Coin)
	suite.Empty(suite.doc.Accounts[index].History)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAdjustCoin_BalanceNeverGoesNegative() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil)

	deltas := []int{1, 1, -3, 1, -2, -1, 5, -10, 2}
	for _, d := range deltas {
		action := domain.ActionAdd
		if d < 0 {
			action = domain.ActionRemove
		}
		_, err := suite.service.AdjustCoin(ctx, index, d, action)
		if err != nil {
			suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
		}
		suite.GreaterOrEqual(suite.doc.Accounts[index].Coin, 0)
	}
}

func (suite *LedgerServiceTestSuite) TestAdjustCoin_InvalidInput() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 3)

	_, err := suite.service.AdjustCoin(ctx, index, 0, domain.ActionAdd)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AdjustCoin(ctx, index, 1, domain.HistoryAction("SPEND"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AdjustCoin(ctx, 99, 1, domain.ActionAdd)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAdjustCoin_SaveError() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 3)
	expectedErr := assert.AnError
	suite.mockRepo.On("Save", ctx, suite.doc).Return(expectedErr).Once()

	account, err := suite.service.AdjustCoin(ctx, index, 1, domain.ActionAdd)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestQuoteExchange_Success() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 25)

	coin, rate, err := suite.service.QuoteExchange(ctx, index)

	suite.Require().NoError(err)
	suite.Equal(25, coin)
	suite.Equal(10, rate)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestQuoteExchange_RateNotMet() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 5)

	_, _, err := suite.service.QuoteExchange(ctx, index)

	suite.ErrorIs(err, apperrors.ErrRateNotMet)
	suite.Equal(5, suite.doc.Accounts[index].Coin)
	suite.Empty(suite.doc.Accounts[index].History)
}

func (suite *LedgerServiceTestSuite) TestConfirmExchange_CashesOutFullBalance() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 25)
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()

	account, err := suite.service.ConfirmExchange(ctx, index)

	suite.Require().NoError(err)
	suite.Zero(account.Coin)
	suite.Require().Len(account.History, 1)
	suite.Equal(-25, account.History[0].Amount)
	suite.Equal(domain.ActionExchange, account.History[0].Action)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestConfirmExchange_RateNotMet() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 9)

	account, err := suite.service.ConfirmExchange(ctx, index)

	suite.ErrorIs(err, apperrors.ErrRateNotMet)
	suite.Nil(account)
	suite.Equal(9, suite.doc.Accounts[index].Coin)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestChallengeEdits_AreStagedUntilCommit() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)

	challenges, err := suite.service.AddChallenge(ctx, index, "  Clean room  ")
	suite.Require().NoError(err)
	suite.Contains(challenges, "Clean room")

	challenges, err = suite.service.RemoveChallenge(ctx, index, 0)
	suite.Require().NoError(err)
	suite.Len(challenges, len(domain.StarterChallenges))

	// Nothing persisted until the explicit commit.
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)

	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()
	suite.Require().NoError(suite.service.CommitDetailSettings(ctx, index))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddChallenge_BlankTitle() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)

	_, err := suite.service.AddChallenge(ctx, index, "   ")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(domain.StarterChallenges, suite.doc.Accounts[index].Challenges)
}

func (suite *LedgerServiceTestSuite) TestRemoveChallenge_ShiftsSubsequentEntriesLeft() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)

	challenges, err := suite.service.RemoveChallenge(ctx, index, 1)

	suite.Require().NoError(err)
	suite.Equal([]string{domain.StarterChallenges[0], domain.StarterChallenges[2]}, challenges)
}

func (suite *LedgerServiceTestSuite) TestRemoveChallenge_BadPosition() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 0)

	_, err := suite.service.RemoveChallenge(ctx, index, len(domain.StarterChallenges))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.RemoveChallenge(ctx, index, -1)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestResetAccount_ScopedToOneAccount() {
	ctx := context.Background()
	first := suite.seedAccount("Hana", 12)
	second := suite.seedAccount("Taro", 7)
	suite.doc.Accounts[first].History = []domain.HistoryEntry{{Date: "03/07", Amount: 12, Action: domain.ActionAdd}}
	suite.doc.Accounts[second].History = []domain.HistoryEntry{{Date: "03/08", Amount: 7, Action: domain.ActionAdd}}
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()

	account, err := suite.service.ResetAccount(ctx, first)

	suite.Require().NoError(err)
	suite.Zero(account.Coin)
	suite.Empty(account.History)
	suite.Equal("Hana", account.Name)
	suite.Equal(domain.StarterChallenges, account.Challenges)

	// The other account is untouched.
	suite.Equal(7, suite.doc.Accounts[second].Coin)
	suite.Len(suite.doc.Accounts[second].History, 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestResetAllData_SwapsInFreshDocument() {
	ctx := context.Background()
	suite.seedAccount("Hana", 12)
	suite.doc.GlobalSettings.ExchangeRate = 50
	suite.mockRepo.On("Reset", ctx).Return(domain.NewDocument(), nil).Once()

	err := suite.service.ResetAllData(ctx)

	suite.Require().NoError(err)
	suite.Empty(suite.service.ListAccounts(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestResetAllData_ResetError() {
	ctx := context.Background()
	suite.seedAccount("Hana", 12)
	expectedErr := assert.AnError
	suite.mockRepo.On("Reset", ctx).Return(nil, expectedErr).Once()

	err := suite.service.ResetAllData(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	// The current document survives a failed reset.
	suite.Len(suite.service.ListAccounts(ctx), 1)
}

func (suite *LedgerServiceTestSuite) TestGetAccount_ReturnsStableSnapshot() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 3)

	account, err := suite.service.GetAccount(ctx, index)
	suite.Require().NoError(err)

	account.Challenges[0] = "changed"
	suite.Equal(domain.StarterChallenges[0], suite.doc.Accounts[index].Challenges[0])

	_, err = suite.service.GetAccount(ctx, 42)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestHistory_ReturnsOldestFirst() {
	ctx := context.Background()
	index := suite.seedAccount("Hana", 10)
	suite.doc.Accounts[index].History = []domain.HistoryEntry{
		{Date: "03/07", Amount: 5, Action: domain.ActionAdd},
		{Date: "03/08", Amount: 5, Action: domain.ActionAdd},
	}

	history, err := suite.service.History(ctx, index)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("03/07", history[0].Date)
	suite.Equal("03/08", history[1].Date)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
