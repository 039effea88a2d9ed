package services

import (
	"context"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	"github.com/chorecoin/chore_coin_app/internal/dto"
)

// SettingsReaderSvc defines read access to the global settings.
type SettingsReaderSvc interface {
	GetGlobalSettings(ctx context.Context) domain.GlobalSettings
}

// SettingsWriterSvc defines the global settings update operation.
// Invalid fields are individually ignored; the update never fails outright.
type SettingsWriterSvc interface {
	UpdateGlobalSettings(ctx context.Context, req dto.UpdateGlobalSettingsRequest) (domain.GlobalSettings, error)
}

// SettingsSvcFacade combines the settings service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
