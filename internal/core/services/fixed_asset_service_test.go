package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/core/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FixedAssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo    *MockFixedAssetRepository
	mockTxnRepo      *MockTransactionRepository
	mockBusinessRepo *MockBusinessRepository
	mockAuthorizer   *MockBusinessAuthorizer
	service          *services.FixedAssetService

	businessID string
	userID     string
}

func (suite *FixedAssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockFixedAssetRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockAuthorizer = new(MockBusinessAuthorizer)
	suite.service = services.NewFixedAssetService(suite.mockAssetRepo, suite.mockTxnRepo, suite.mockBusinessRepo, suite.mockAuthorizer)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *FixedAssetServiceTestSuite) allowAll(ctx context.Context) {
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.businessID, mock.Anything).Return(nil)
}

func (suite *FixedAssetServiceTestSuite) TestCreateFixedAsset_DefaultsRatesFromSettings() {
	ctx := context.Background()
	suite.allowAll(ctx)

	settings := &domain.BusinessSettings{
		BusinessID:                  suite.businessID,
		DefaultDepreciationRate:     decimal.NewFromInt(10),
		DefaultCapitalAllowanceRate: decimal.NewFromInt(25),
	}
	suite.mockBusinessRepo.On("FindSettingsByBusinessID", ctx, suite.businessID).Return(settings, nil).Once()
	suite.mockAssetRepo.On("SaveFixedAsset", ctx, mock.MatchedBy(func(a domain.FixedAsset) bool {
		return a.DepreciationRate.Equal(decimal.NewFromInt(10)) &&
			a.CapitalAllowanceRate.Equal(decimal.NewFromInt(25)) &&
			a.AccumulatedDepreciation.IsZero() &&
			a.IsActive && !a.IsDisposed
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.FixedPurchase && t.Amount.Equal(decimal.NewFromInt(500000))
	})).Return(nil).Once()

	req := dto.CreateFixedAssetRequest{
		Name:         "Delivery van",
		PurchaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Cost:         decimal.NewFromInt(500000),
		Category:     domain.AssetFixed,
	}
	asset, err := suite.service.CreateFixedAsset(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(asset)
	suite.True(asset.Cost.Equal(decimal.NewFromInt(500000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FixedAssetServiceTestSuite) TestCreateFixedAsset_RejectsNonPositiveCost() {
	ctx := context.Background()
	suite.allowAll(ctx)

	req := dto.CreateFixedAssetRequest{
		Name:         "Broken",
		PurchaseDate: time.Now(),
		Cost:         decimal.Zero,
		Category:     domain.AssetFixed,
	}
	asset, err := suite.service.CreateFixedAsset(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(asset)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FixedAssetServiceTestSuite) TestRunMonthlyDepreciation_ChargesReducingBalance() {
	ctx := context.Background()
	suite.allowAll(ctx)

	asset := domain.FixedAsset{
		FixedAssetID:            uuid.NewString(),
		BusinessID:              suite.businessID,
		Name:                    "Generator",
		Cost:                    decimal.NewFromInt(1200000),
		DepreciationRate:        decimal.NewFromInt(10),
		AccumulatedDepreciation: decimal.Zero,
		Category:                domain.AssetFixed,
		IsActive:                true,
	}
	suite.mockAssetRepo.On("ListActiveFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{asset}, nil).Once()

	expectedCharge := decimal.NewFromInt(10000)
	suite.mockAssetRepo.On("UpdateFixedAsset", ctx, mock.MatchedBy(func(a domain.FixedAsset) bool {
		return a.FixedAssetID == asset.FixedAssetID && a.AccumulatedDepreciation.Equal(expectedCharge)
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Depreciation && t.Amount.Equal(expectedCharge) && t.FixedAssetID == asset.FixedAssetID
	})).Return(nil).Once()

	lines, err := suite.service.RunMonthlyDepreciation(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 1)
	suite.True(lines[0].MonthlyDepreciation.Equal(expectedCharge))
	suite.True(lines[0].BookValue.Equal(decimal.NewFromInt(1190000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FixedAssetServiceTestSuite) TestRunMonthlyDepreciation_SkipsFullyDepreciated() {
	ctx := context.Background()
	suite.allowAll(ctx)

	cost := decimal.NewFromInt(300000)
	asset := domain.FixedAsset{
		FixedAssetID:            uuid.NewString(),
		BusinessID:              suite.businessID,
		Name:                    "Old laptop",
		Cost:                    cost,
		DepreciationRate:        decimal.NewFromInt(33),
		AccumulatedDepreciation: cost,
		Category:                domain.AssetFixed,
		IsActive:                true,
	}
	suite.mockAssetRepo.On("ListActiveFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{asset}, nil).Once()

	lines, err := suite.service.RunMonthlyDepreciation(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 1)
	suite.True(lines[0].MonthlyDepreciation.IsZero())
	suite.True(lines[0].BookValue.IsZero())
	// No update and no transaction for a zero charge
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "UpdateFixedAsset", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *FixedAssetServiceTestSuite) TestDisposeFixedAsset_FixedGainGoesToDisposalProfit() {
	ctx := context.Background()
	suite.allowAll(ctx)

	assetID := uuid.NewString()
	asset := &domain.FixedAsset{
		FixedAssetID:            assetID,
		BusinessID:              suite.businessID,
		Name:                    "Truck",
		Cost:                    decimal.NewFromInt(800000),
		AccumulatedDepreciation: decimal.NewFromInt(300000),
		Category:                domain.AssetFixed,
		IsActive:                true,
	}
	suite.mockAssetRepo.On("FindFixedAssetByID", ctx, assetID).Return(asset, nil).Once()

	// Book value 500000, proceeds 600000, gain 100000
	suite.mockAssetRepo.On("UpdateFixedAsset", ctx, mock.MatchedBy(func(a domain.FixedAsset) bool {
		return a.IsDisposed && !a.IsActive &&
			a.DisposalProfit.Equal(decimal.NewFromInt(100000)) &&
			a.ChargeableGain.IsZero() && a.ChargeableLoss.IsZero()
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.FixedDisposal && t.Amount.Equal(decimal.NewFromInt(600000))
	})).Return(nil).Once()

	req := dto.DisposeFixedAssetRequest{
		DisposalDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		DisposalAmount: decimal.NewFromInt(600000),
	}
	disposed, err := suite.service.DisposeFixedAsset(ctx, suite.businessID, assetID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(disposed)
	suite.True(disposed.DisposalProfit.Equal(decimal.NewFromInt(100000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FixedAssetServiceTestSuite) TestDisposeFixedAsset_ChargeableLossGoesToChargeableLoss() {
	ctx := context.Background()
	suite.allowAll(ctx)

	assetID := uuid.NewString()
	asset := &domain.FixedAsset{
		FixedAssetID:            assetID,
		BusinessID:              suite.businessID,
		Name:                    "Land",
		Cost:                    decimal.NewFromInt(2000000),
		AccumulatedDepreciation: decimal.Zero,
		Category:                domain.AssetChargeable,
		IsActive:                true,
	}
	suite.mockAssetRepo.On("FindFixedAssetByID", ctx, assetID).Return(asset, nil).Once()
	suite.mockAssetRepo.On("UpdateFixedAsset", ctx, mock.MatchedBy(func(a domain.FixedAsset) bool {
		return a.IsDisposed &&
			a.ChargeableGain.IsZero() &&
			a.ChargeableLoss.Equal(decimal.NewFromInt(500000)) &&
			a.DisposalProfit.IsZero()
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()

	req := dto.DisposeFixedAssetRequest{
		DisposalDate:   time.Now(),
		DisposalAmount: decimal.NewFromInt(1500000),
	}
	disposed, err := suite.service.DisposeFixedAsset(ctx, suite.businessID, assetID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(disposed.ChargeableLoss.Equal(decimal.NewFromInt(500000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *FixedAssetServiceTestSuite) TestDisposeFixedAsset_AlreadyDisposed() {
	ctx := context.Background()
	suite.allowAll(ctx)

	assetID := uuid.NewString()
	asset := &domain.FixedAsset{
		FixedAssetID: assetID,
		BusinessID:   suite.businessID,
		IsDisposed:   true,
	}
	suite.mockAssetRepo.On("FindFixedAssetByID", ctx, assetID).Return(asset, nil).Once()

	req := dto.DisposeFixedAssetRequest{DisposalDate: time.Now(), DisposalAmount: decimal.NewFromInt(1)}
	disposed, err := suite.service.DisposeFixedAsset(ctx, suite.businessID, assetID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(disposed)
	suite.ErrorIs(err, apperrors.ErrAlreadyDisposed)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "UpdateFixedAsset", mock.Anything, mock.Anything)
}

func (suite *FixedAssetServiceTestSuite) TestGetFixedAssetByID_WrongBusiness() {
	ctx := context.Background()
	suite.allowAll(ctx)

	assetID := uuid.NewString()
	asset := &domain.FixedAsset{FixedAssetID: assetID, BusinessID: uuid.NewString()}
	suite.mockAssetRepo.On("FindFixedAssetByID", ctx, assetID).Return(asset, nil).Once()

	found, err := suite.service.GetFixedAssetByID(ctx, suite.businessID, assetID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFixedAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixedAssetServiceTestSuite))
}
