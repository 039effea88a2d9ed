package dto

import (
	"github.com/chorecoin/chore_coin_app/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
// Index is the account's ordinal position, which is also its identity
// for every account-scoped operation.
type AccountResponse struct {
	Index      int                    `json:"index"`
	Name       string                 `json:"name"`
	Coin       int                    `json:"coin"`
	Challenges []string               `json:"challenges"`
	History    []HistoryEntryResponse `json:"history"`
}

// HistoryEntryResponse mirrors domain.HistoryEntry. Entries are returned
// oldest first; newest-first ordering is left to the view layer.
type HistoryEntryResponse struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
	Action string `json:"action"`
}

// ListAccountsResponse wraps the ordered account list.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// HistoryResponse wraps one account's history.
type HistoryResponse struct {
	Index   int                    `json:"index"`
	History []HistoryEntryResponse `json:"history"`
}

// ToAccountResponse converts a domain.Account at the given ordinal to its DTO.
func ToAccountResponse(index int, acc *domain.Account) AccountResponse {
	return AccountResponse{
		Index:      index,
		Name:       acc.Name,
		Coin:       acc.Coin,
		Challenges: acc.Challenges,
		History:    ToHistoryEntryResponses(acc.History),
	}
}

// ToListAccountsResponse converts the ordered domain accounts to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(i, &accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// ToHistoryEntryResponses converts domain history entries to DTOs.
func ToHistoryEntryResponses(entries []domain.HistoryEntry) []HistoryEntryResponse {
	res := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = HistoryEntryResponse{
			Date:   e.Date,
			Amount: e.Amount,
			Action: string(e.Action),
		}
	}
	return res
}
