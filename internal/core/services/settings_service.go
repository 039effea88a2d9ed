package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portsrepo "github.com/chorecoin/chore_coin_app/internal/core/ports/repositories"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	session *DocumentSession
	docRepo portsrepo.DocumentRepositoryFacade
}

// NewSettingsService creates the global-settings service over the shared
// document session.
func NewSettingsService(session *DocumentSession, docRepo portsrepo.DocumentRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{
		session: session,
		docRepo: docRepo,
	}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetGlobalSettings(ctx context.Context) domain.GlobalSettings {
	doc := s.session.Lock()
	defer s.session.Unlock()
	return doc.GlobalSettings
}

// UpdateGlobalSettings applies whichever fields are valid and ignores the
// rest: a blank name keeps the previous name, a rate below 1 keeps the
// previous rate. The update itself never fails; only the persist can.
func (s *settingsService) UpdateGlobalSettings(ctx context.Context, req dto.UpdateGlobalSettingsRequest) (domain.GlobalSettings, error) {
	doc := s.session.Lock()
	defer s.session.Unlock()

	if req.NewAccountName != nil {
		if name := strings.TrimSpace(*req.NewAccountName); name != "" {
			doc.GlobalSettings.NewAccountName = name
		}
	}
	if req.ExchangeRate != nil && *req.ExchangeRate >= 1 {
		doc.GlobalSettings.ExchangeRate = *req.ExchangeRate
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to persist settings")
		return doc.GlobalSettings, err
	}

	s.LogInfo(ctx, "Global settings updated",
		slog.String("new_account_name", doc.GlobalSettings.NewAccountName),
		slog.Int("exchange_rate", doc.GlobalSettings.ExchangeRate))
	return doc.GlobalSettings, nil
}
