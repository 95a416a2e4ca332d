package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/core/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	service          *services.BusinessService

	businessID string
	userID     string
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_SeedsSettingsAndOwnership() {
	ctx := context.Background()

	var savedSettings domain.BusinessSettings
	var savedMembership domain.BusinessUser
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockBusinessRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.BusinessSettings) bool {
		savedSettings = s
		return true
	})).Return(nil).Once()
	suite.mockBusinessRepo.On("SaveBusinessUser", ctx, mock.MatchedBy(func(bu domain.BusinessUser) bool {
		savedMembership = bu
		return true
	})).Return(nil).Once()

	req := dto.CreateBusinessRequest{
		Name:         "Lagos Provisions Ltd",
		BusinessType: domain.Company,
		RCNumber:     "RC123456",
		TIN:          "0123456789",
	}
	business, err := suite.service.CreateBusiness(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Company, business.BusinessType)
	suite.True(savedSettings.VATEnabled)
	suite.True(savedSettings.CITEnabled)
	suite.False(savedSettings.PITEnabled)
	suite.True(savedSettings.DefaultVATRate.Equal(decimal.NewFromFloat(7.5)))
	suite.True(savedSettings.CITRate.Equal(decimal.NewFromInt(30)))
	suite.Equal(domain.RoleOwner, savedMembership.Role)
	suite.Equal(suite.userID, savedMembership.UserID)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_SoleProprietorGetsPIT() {
	ctx := context.Background()

	var savedSettings domain.BusinessSettings
	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()
	suite.mockBusinessRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s domain.BusinessSettings) bool {
		savedSettings = s
		return true
	})).Return(nil).Once()
	suite.mockBusinessRepo.On("SaveBusinessUser", ctx, mock.AnythingOfType("domain.BusinessUser")).Return(nil).Once()

	req := dto.CreateBusinessRequest{
		Name:         "Mama Nkechi Stores",
		BusinessType: domain.SoleProprietor,
	}
	_, err := suite.service.CreateBusiness(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(savedSettings.PITEnabled)
	suite.False(savedSettings.CITEnabled)
}

func (suite *BusinessServiceTestSuite) TestAuthorizeUserAction_RoleRanking() {
	ctx := context.Background()

	testCases := []struct {
		name     string
		has      domain.BusinessUserRole
		required domain.BusinessUserRole
		wantErr  error
	}{
		{"owner may do owner actions", domain.RoleOwner, domain.RoleOwner, nil},
		{"owner may do member actions", domain.RoleOwner, domain.RoleMember, nil},
		{"member may read", domain.RoleMember, domain.RoleReadOnly, nil},
		{"member may not do owner actions", domain.RoleMember, domain.RoleOwner, apperrors.ErrForbidden},
		{"read-only may not write", domain.RoleReadOnly, domain.RoleMember, apperrors.ErrForbidden},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			repo := new(MockBusinessRepository)
			svc := services.NewBusinessService(repo)
			repo.On("FindUserRole", ctx, suite.userID, suite.businessID).Return(tc.has, nil).Once()

			err := svc.AuthorizeUserAction(ctx, suite.userID, suite.businessID, tc.required)

			if tc.wantErr == nil {
				suite.NoError(err)
			} else {
				suite.ErrorIs(err, tc.wantErr)
			}
		})
	}
}

func (suite *BusinessServiceTestSuite) TestAuthorizeUserAction_NonMemberLooksLikeNotFound() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("FindUserRole", ctx, suite.userID, suite.businessID).
		Return(domain.BusinessUserRole(""), apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.businessID, domain.RoleReadOnly)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_RequiresOwner() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("FindUserRole", ctx, suite.userID, suite.businessID).Return(domain.RoleMember, nil).Once()

	newRate := decimal.NewFromInt(10)
	_, err := suite.service.UpdateSettings(ctx, suite.businessID, dto.UpdateSettingsRequest{DefaultVATRate: &newRate}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_MergesOnlyProvidedFields() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("FindUserRole", ctx, suite.userID, suite.businessID).Return(domain.RoleOwner, nil).Once()
	suite.mockBusinessRepo.On("FindSettingsByBusinessID", ctx, suite.businessID).Return(&domain.BusinessSettings{
		SettingsID:     uuid.NewString(),
		BusinessID:     suite.businessID,
		DefaultVATRate: decimal.NewFromFloat(7.5),
		DefaultWHTRate: decimal.NewFromInt(5),
		VATEnabled:     true,
	}, nil).Once()
	suite.mockBusinessRepo.On("SaveSettings", ctx, mock.AnythingOfType("domain.BusinessSettings")).Return(nil).Once()

	newWHT := decimal.NewFromInt(10)
	updated, err := suite.service.UpdateSettings(ctx, suite.businessID, dto.UpdateSettingsRequest{DefaultWHTRate: &newWHT}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.DefaultWHTRate.Equal(decimal.NewFromInt(10)))
	// Untouched fields keep their stored values.
	suite.True(updated.DefaultVATRate.Equal(decimal.NewFromFloat(7.5)))
	suite.True(updated.VATEnabled)
}

func (suite *BusinessServiceTestSuite) TestUpdateSettings_RejectsNegativeRate() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("FindUserRole", ctx, suite.userID, suite.businessID).Return(domain.RoleOwner, nil).Once()
	suite.mockBusinessRepo.On("FindSettingsByBusinessID", ctx, suite.businessID).Return(&domain.BusinessSettings{
		SettingsID: uuid.NewString(),
		BusinessID: suite.businessID,
	}, nil).Once()

	negative := decimal.NewFromInt(-5)
	_, err := suite.service.UpdateSettings(ctx, suite.businessID, dto.UpdateSettingsRequest{CITRate: &negative}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestCommitCarryForwards_PersistsForOwner() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("FindUserRole", ctx, suite.userID, suite.businessID).Return(domain.RoleOwner, nil).Once()

	cf := domain.CarryForwards{
		LossReliefBf:       decimal.NewFromInt(250000),
		CapitalAllowanceBf: decimal.NewFromInt(40000),
		ChargeableLossBf:   decimal.NewFromInt(30000),
		WHTReceivableBf:    decimal.NewFromInt(12000),
	}
	suite.mockBusinessRepo.On("UpdateCarryForwards", ctx, suite.businessID, cf, suite.userID).Return(nil).Once()

	err := suite.service.CommitCarryForwards(ctx, suite.businessID, cf, suite.userID)

	suite.Require().NoError(err)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
