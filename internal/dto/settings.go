package dto

import "github.com/chorecoin/chore_coin_app/internal/core/domain"

// UpdateGlobalSettingsRequest defines the data allowed for a settings update.
// Use pointers to distinguish between zero-value updates and fields not
// provided. Invalid fields are ignored individually, never rejected as a whole.
type UpdateGlobalSettingsRequest struct {
	NewAccountName *string `json:"newAccountName"` // Optional: ignored when blank after trimming
	ExchangeRate   *int    `json:"exchangeRate"`   // Optional: ignored unless >= 1
}

// GlobalSettingsResponse mirrors domain.GlobalSettings.
type GlobalSettingsResponse struct {
	NewAccountName string `json:"newAccountName"`
	ExchangeRate   int    `json:"exchangeRate"`
}

// ToGlobalSettingsResponse converts domain settings to the response DTO.
func ToGlobalSettingsResponse(gs domain.GlobalSettings) GlobalSettingsResponse {
	return GlobalSettingsResponse{
		NewAccountName: gs.NewAccountName,
		ExchangeRate:   gs.ExchangeRate,
	}
}
