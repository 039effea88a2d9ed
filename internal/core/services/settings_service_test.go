package services_test

import (
	"context"
	"testing"

	"github.com/chorecoin/chore_coin_app/internal/core/domain"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/core/services"
	"github.com/chorecoin/chore_coin_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDocumentRepository
	doc      *domain.Document
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.doc = domain.NewDocument()
	container := services.NewServiceContainer(suite.doc, suite.mockRepo)
	suite.service = container.Settings
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func (suite *SettingsServiceTestSuite) TestGetGlobalSettings() {
	settings := suite.service.GetGlobalSettings(context.Background())

	suite.Equal(domain.DefaultNewAccountName, settings.NewAccountName)
	suite.Equal(domain.DefaultExchangeRate, settings.ExchangeRate)
}

func (suite *SettingsServiceTestSuite) TestUpdateGlobalSettings_AppliesValidFields() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()

	settings, err := suite.service.UpdateGlobalSettings(ctx, dto.UpdateGlobalSettingsRequest{
		NewAccountName: strPtr("  Hana  "),
		ExchangeRate:   intPtr(25),
	})

	suite.Require().NoError(err)
	suite.Equal("Hana", settings.NewAccountName)
	suite.Equal(25, settings.ExchangeRate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateGlobalSettings_InvalidFieldsAreIgnored() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil)

	tests := []struct {
		name string
		req  dto.UpdateGlobalSettingsRequest
	}{
		{name: "blank name and negative rate", req: dto.UpdateGlobalSettingsRequest{NewAccountName: strPtr(""), ExchangeRate: intPtr(-3)}},
		{name: "whitespace name and zero rate", req: dto.UpdateGlobalSettingsRequest{NewAccountName: strPtr("   "), ExchangeRate: intPtr(0)}},
		{name: "nothing provided", req: dto.UpdateGlobalSettingsRequest{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			settings, err := suite.service.UpdateGlobalSettings(ctx, tt.req)

			suite.Require().NoError(err)
			suite.Equal(domain.DefaultNewAccountName, settings.NewAccountName)
			suite.Equal(domain.DefaultExchangeRate, settings.ExchangeRate)
		})
	}
}

func (suite *SettingsServiceTestSuite) TestUpdateGlobalSettings_PartialUpdate() {
	ctx := context.Background()
	suite.mockRepo.On("Save", ctx, suite.doc).Return(nil).Once()

	// A valid rate still lands when the name is invalid.
	settings, err := suite.service.UpdateGlobalSettings(ctx, dto.UpdateGlobalSettingsRequest{
		NewAccountName: strPtr(" "),
		ExchangeRate:   intPtr(1),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultNewAccountName, settings.NewAccountName)
	suite.Equal(1, settings.ExchangeRate)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
