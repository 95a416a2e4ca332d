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

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockTxnRepo       *MockTransactionRepository
	mockAuthorizer    *MockBusinessAuthorizer
	service           *services.InventoryService

	businessID string
	userID     string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockBusinessAuthorizer)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo, suite.mockTxnRepo, suite.mockAuthorizer)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, mock.Anything).Return(nil)
}

func (suite *InventoryServiceTestSuite) item(qty, cost int64) *domain.InventoryItem {
	return &domain.InventoryItem{
		ItemID:          uuid.NewString(),
		BusinessID:      suite.businessID,
		SKU:             "SKU-001",
		Name:            "Cement bag",
		CurrentQuantity: decimal.NewFromInt(qty),
		CurrentCost:     decimal.NewFromInt(cost),
		IsActive:        true,
	}
}

func (suite *InventoryServiceTestSuite) TestRecordPurchase_ReAveragesCost() {
	ctx := context.Background()
	item := suite.item(100, 500)
	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()

	// (100*500 + 50*600) / 150 = 533.33
	expectedAvg := decimal.NewFromFloat(533.33)
	suite.mockInventoryRepo.On("ApplyMovement", ctx,
		mock.MatchedBy(func(i domain.InventoryItem) bool {
			return i.CurrentQuantity.Equal(decimal.NewFromInt(150)) && i.CurrentCost.Equal(expectedAvg)
		}),
		mock.MatchedBy(func(m domain.InventoryMovement) bool {
			return m.Type == domain.MovementPurchase &&
				m.Quantity.Equal(decimal.NewFromInt(50)) &&
				m.TotalCost.Equal(decimal.NewFromInt(30000)) &&
				m.RunningQuantity.Equal(decimal.NewFromInt(150))
		}),
	).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.InventoryPurchase && t.Amount.Equal(decimal.NewFromInt(30000))
	})).Return(nil).Once()

	req := dto.InventoryPurchaseRequest{
		AccountID: uuid.NewString(),
		Date:      time.Now(),
		Quantity:  decimal.NewFromInt(50),
		UnitCost:  decimal.NewFromInt(600),
	}
	updated, err := suite.service.RecordPurchase(ctx, suite.businessID, item.ItemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentCost.Equal(expectedAvg))
	suite.mockInventoryRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRecordSale_BooksRevenueAndCOGS() {
	ctx := context.Background()
	item := suite.item(150, 0)
	item.CurrentCost = decimal.NewFromFloat(533.33)
	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()

	// COGS = 40 * 533.33 = 21333.20; sale leaves unit cost unchanged
	expectedCOGS := decimal.NewFromFloat(21333.20)
	suite.mockInventoryRepo.On("ApplyMovement", ctx,
		mock.MatchedBy(func(i domain.InventoryItem) bool {
			return i.CurrentQuantity.Equal(decimal.NewFromInt(110)) && i.CurrentCost.Equal(decimal.NewFromFloat(533.33))
		}),
		mock.MatchedBy(func(m domain.InventoryMovement) bool {
			return m.Type == domain.MovementSale &&
				m.Quantity.Equal(decimal.NewFromInt(-40)) &&
				m.TotalCost.Equal(expectedCOGS)
		}),
	).Return(nil).Once()

	revenueAccount := uuid.NewString()
	cogsAccount := uuid.NewString()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.InventorySale && t.AccountID == revenueAccount && t.Amount.Equal(decimal.NewFromInt(32000))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Payment && t.AccountID == cogsAccount && t.Amount.Equal(expectedCOGS)
	})).Return(nil).Once()

	req := dto.InventorySaleRequest{
		RevenueAccountID: revenueAccount,
		COGSAccountID:    cogsAccount,
		Date:             time.Now(),
		Quantity:         decimal.NewFromInt(40),
		UnitPrice:        decimal.NewFromInt(800),
	}
	updated, err := suite.service.RecordSale(ctx, suite.businessID, item.ItemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentQuantity.Equal(decimal.NewFromInt(110)))
	suite.mockInventoryRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRecordSale_InsufficientStock() {
	ctx := context.Background()
	item := suite.item(10, 500)
	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()

	req := dto.InventorySaleRequest{
		RevenueAccountID: uuid.NewString(),
		COGSAccountID:    uuid.NewString(),
		Date:             time.Now(),
		Quantity:         decimal.NewFromInt(11),
		UnitPrice:        decimal.NewFromInt(800),
	}
	updated, err := suite.service.RecordSale(ctx, suite.businessID, item.ItemID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInsufficientInventory)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ApplyMovement", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestSetOpeningBalance_RejectsExistingStock() {
	ctx := context.Background()
	item := suite.item(5, 100)
	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()

	req := dto.OpeningBalanceRequest{
		Date:     time.Now(),
		Quantity: decimal.NewFromInt(10),
		UnitCost: decimal.NewFromInt(100),
	}
	updated, err := suite.service.SetOpeningBalance(ctx, suite.businessID, item.ItemID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestSetOpeningBalance_SeedsStock() {
	ctx := context.Background()
	item := suite.item(0, 0)
	suite.mockInventoryRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockInventoryRepo.On("ApplyMovement", ctx,
		mock.MatchedBy(func(i domain.InventoryItem) bool {
			return i.CurrentQuantity.Equal(decimal.NewFromInt(20)) && i.CurrentCost.Equal(decimal.NewFromInt(250))
		}),
		mock.MatchedBy(func(m domain.InventoryMovement) bool {
			return m.Type == domain.MovementOpeningBalance && m.Quantity.Equal(decimal.NewFromInt(20))
		}),
	).Return(nil).Once()

	req := dto.OpeningBalanceRequest{
		Date:     time.Now(),
		Quantity: decimal.NewFromInt(20),
		UnitCost: decimal.NewFromInt(250),
	}
	updated, err := suite.service.SetOpeningBalance(ctx, suite.businessID, item.ItemID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentQuantity.Equal(decimal.NewFromInt(20)))
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListMovements_ChecksItemOwnership() {
	ctx := context.Background()
	itemID := uuid.NewString()
	foreign := &domain.InventoryItem{ItemID: itemID, BusinessID: uuid.NewString()}
	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).Return(foreign, nil).Once()

	movements, err := suite.service.ListMovements(ctx, suite.businessID, itemID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(movements)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ListMovements", mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
