package services_test

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) SaveSettings(ctx context.Context, settings domain.BusinessSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindSettingsByBusinessID(ctx context.Context, businessID string) (*domain.BusinessSettings, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessSettings), args.Error(1)
}

func (m *MockBusinessRepository) UpdateCarryForwards(ctx context.Context, businessID string, cf domain.CarryForwards, updatedBy string) error {
	args := m.Called(ctx, businessID, cf, updatedBy)
	return args.Error(0)
}

func (m *MockBusinessRepository) SaveBusinessUser(ctx context.Context, membership domain.BusinessUser) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindUserRole(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error) {
	args := m.Called(ctx, userID, businessID)
	return args.Get(0).(domain.BusinessUserRole), args.Error(1)
}

// --- Mock ChartAccountRepository ---
type MockChartAccountRepository struct {
	mock.Mock
}

func (m *MockChartAccountRepository) SaveAccount(ctx context.Context, account domain.ChartAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockChartAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}

func (m *MockChartAccountRepository) ListAccounts(ctx context.Context, businessID string) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListSalaryTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock FixedAssetRepository ---
type MockFixedAssetRepository struct {
	mock.Mock
}

func (m *MockFixedAssetRepository) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockFixedAssetRepository) FindFixedAssetByID(ctx context.Context, fixedAssetID string) (*domain.FixedAsset, error) {
	args := m.Called(ctx, fixedAssetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) ListFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) ListActiveFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) UpdateFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, businessID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ApplyMovement(ctx context.Context, item domain.InventoryItem, movement domain.InventoryMovement) error {
	args := m.Called(ctx, item, movement)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListMovements(ctx context.Context, itemID string) ([]domain.InventoryMovement, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryMovement), args.Error(1)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, businessID string) ([]domain.Contact, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListEmployees(ctx context.Context, businessID string) ([]domain.Contact, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock BusinessAuthorizerSvc ---
type MockBusinessAuthorizer struct {
	mock.Mock
}

func (m *MockBusinessAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, businessID string, required domain.BusinessUserRole) error {
	args := m.Called(ctx, userID, businessID, required)
	return args.Error(0)
}
