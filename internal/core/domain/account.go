package domain

// StarterChallenges is the fixed chore list every new account begins with.
var StarterChallenges = []string{
	"Help around the house",
	"Early to bed, early to rise",
	"Finish your homework",
}

// Account represents one tracked child profile with its own balance,
// chore list and history. Accounts have no separate identifier; identity
// is the ordinal position within Document.Accounts.
type Account struct {
	Name       string         `json:"name"`
	Coin       int            `json:"coin"` // integer balance, never negative
	Challenges []string       `json:"challenges"`
	History    []HistoryEntry `json:"history"` // append-only, oldest first
}

// NewAccount returns a fresh account with a zero balance and the starter
// chore list. Duplicate names are permitted.
func NewAccount(name string) Account {
	challenges := make([]string, len(StarterChallenges))
	copy(challenges, StarterChallenges)
	return Account{
		Name:       name,
		Coin:       0,
		Challenges: challenges,
		History:    []HistoryEntry{},
	}
}

// CanApply reports whether applying the signed delta would keep the
// balance non-negative.
func (a *Account) CanApply(amount int) bool {
	return a.Coin+amount >= 0
}

// Clone returns a deep copy, so snapshots handed to callers stay stable
// while the stored account keeps mutating.
func (a *Account) Clone() Account {
	c := *a
	c.Challenges = append([]string(nil), a.Challenges...)
	c.History = append([]HistoryEntry(nil), a.History...)
	return c
}
