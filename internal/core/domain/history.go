package domain

import "time"

// HistoryAction classifies a balance-changing event on an account.
type HistoryAction string

const (
	ActionAdd      HistoryAction = "ADD"
	ActionRemove   HistoryAction = "REMOVE"
	ActionExchange HistoryAction = "EXCHANGE"
)

// IsValid reports whether the action is one of the fixed tags.
func (a HistoryAction) IsValid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionExchange:
		return true
	}
	return false
}

// historyDateLayout renders month/day only, matching the stored schema.
// History entries carry no year or time and are ordered purely by append order.
const historyDateLayout = "01/02"

// HistoryEntry is an immutable record of one balance-changing event.
type HistoryEntry struct {
	Date   string        `json:"date"`   // MM/DD at the moment of the event
	Amount int           `json:"amount"` // signed delta applied to the coin balance
	Action HistoryAction `json:"action"` // ADD, REMOVE or EXCHANGE
}

// NewHistoryEntry stamps a history entry with the current date.
func NewHistoryEntry(amount int, action HistoryAction, now time.Time) HistoryEntry {
	return HistoryEntry{
		Date:   now.Format(historyDateLayout),
		Amount: amount,
		Action: action,
	}
}
