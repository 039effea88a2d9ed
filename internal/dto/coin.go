package dto

// AdjustCoinRequest defines the data needed to change a coin balance.
// Amount is a signed delta; binding:"required" also rejects a zero delta.
type AdjustCoinRequest struct {
	Amount int    `json:"amount" binding:"required"`
	Action string `json:"action" binding:"required,oneof=ADD REMOVE EXCHANGE"`
}

// ExchangeQuoteResponse is the confirmation-prompt payload: exchanging
// removes the entire current balance, not one rate-sized unit.
type ExchangeQuoteResponse struct {
	Index int `json:"index"`
	Coin  int `json:"coin"`
	Rate  int `json:"rate"`
}
