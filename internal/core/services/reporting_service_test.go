package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockChartAccountRepository
	mockAssetRepo   *MockFixedAssetRepository
	mockAuthorizer  *MockBusinessAuthorizer
	service         *services.ReportingService

	businessID string
	userID     string
	from       time.Time
	to         time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockChartAccountRepository)
	suite.mockAssetRepo = new(MockFixedAssetRepository)
	suite.mockAuthorizer = new(MockBusinessAuthorizer)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockAssetRepo, suite.mockAuthorizer)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.businessID, mock.Anything).Return(nil)
}

func (suite *ReportingServiceTestSuite) account(accType domain.AccountType, mutate func(*domain.ChartAccount)) domain.ChartAccount {
	acc := domain.ChartAccount{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountType: accType,
		IsActive:    true,
	}
	if mutate != nil {
		mutate(&acc)
	}
	return acc
}

func (suite *ReportingServiceTestSuite) txn(accountID string, txnType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    suite.businessID,
		AccountID:     accountID,
		Type:          txnType,
		Date:          time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(amount),
	}
}

func (suite *ReportingServiceTestSuite) TestAccountingProfit_BucketsByAccountFlags() {
	ctx := context.Background()

	revenue := suite.account(domain.Revenue, func(a *domain.ChartAccount) { a.IsRevenue = true })
	grant := suite.account(domain.Revenue, func(a *domain.ChartAccount) { a.IsNonTaxable = true })
	cogs := suite.account(domain.COGS, nil)
	rent := suite.account(domain.Expense, nil)
	fines := suite.account(domain.Expense, func(a *domain.ChartAccount) { a.IsDisallowable = true })

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return([]domain.ChartAccount{revenue, grant, cogs, rent, fines}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{
		suite.txn(revenue.AccountID, domain.Receipt, 2000000),
		suite.txn(grant.AccountID, domain.Receipt, 100000),
		suite.txn(cogs.AccountID, domain.Payment, 600000),
		suite.txn(rent.AccountID, domain.Payment, 300000),
		suite.txn(fines.AccountID, domain.Payment, 50000),
	}, nil).Once()
	suite.mockAssetRepo.On("ListFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{}, nil).Once()

	report, err := suite.service.AccountingProfit(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Revenue.Equal(decimal.NewFromInt(2100000)))
	suite.True(report.NonTaxableIncome.Equal(decimal.NewFromInt(100000)))
	suite.True(report.COGS.Equal(decimal.NewFromInt(600000)))
	suite.True(report.Expenses.Equal(decimal.NewFromInt(350000)))
	suite.True(report.DisallowableExpenses.Equal(decimal.NewFromInt(50000)))
	// 2,100,000 - 600,000 - 350,000 = 1,150,000
	suite.True(report.AccountingProfit.Equal(decimal.NewFromInt(1150000)))
}

func (suite *ReportingServiceTestSuite) TestAccountingProfit_ExcludesVATFromBuckets() {
	ctx := context.Background()

	revenue := suite.account(domain.Revenue, func(a *domain.ChartAccount) { a.IsRevenue = true })
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return([]domain.ChartAccount{revenue}, nil).Once()

	sale := suite.txn(revenue.AccountID, domain.Receipt, 107500)
	sale.VATAmount = decimal.NewFromInt(7500)
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{sale}, nil).Once()
	suite.mockAssetRepo.On("ListFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{}, nil).Once()

	report, err := suite.service.AccountingProfit(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Revenue.Equal(decimal.NewFromInt(100000)))
}

func (suite *ReportingServiceTestSuite) TestAccountingProfit_FoldsInAssetRegister() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return([]domain.ChartAccount{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{}, nil).Once()

	disposalDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	outsideDate := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.mockAssetRepo.On("ListFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{
		{
			// Still on the books, only its depreciation counts
			FixedAssetID:            uuid.NewString(),
			Category:                domain.AssetFixed,
			AccumulatedDepreciation: decimal.NewFromInt(55000),
			IsActive:                true,
		},
		{
			FixedAssetID:            uuid.NewString(),
			Category:                domain.AssetFixed,
			AccumulatedDepreciation: decimal.NewFromInt(40000),
			IsDisposed:              true,
			DisposalDate:            &disposalDate,
			DisposalProfit:          decimal.NewFromInt(25000),
		},
		{
			FixedAssetID:            uuid.NewString(),
			Category:                domain.AssetChargeable,
			AccumulatedDepreciation: decimal.NewFromInt(10000),
			IsDisposed:              true,
			DisposalDate:            &disposalDate,
			ChargeableGain:          decimal.NewFromInt(90000),
		},
		{
			// Disposed before the period, its gain does not count
			FixedAssetID:            uuid.NewString(),
			Category:                domain.AssetFixed,
			AccumulatedDepreciation: decimal.NewFromInt(5000),
			IsDisposed:              true,
			DisposalDate:            &outsideDate,
			DisposalProfit:          decimal.NewFromInt(99999),
		},
	}, nil).Once()

	report, err := suite.service.AccountingProfit(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Depreciation.Equal(decimal.NewFromInt(55000)))
	suite.True(report.DisposalProfitLoss.Equal(decimal.NewFromInt(25000)))
	suite.True(report.ChargeableGains.Equal(decimal.NewFromInt(90000)))
}

func (suite *ReportingServiceTestSuite) TestAccountingProfit_DisposedAssetsAddNoDepreciation() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.businessID).Return([]domain.ChartAccount{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{}, nil).Once()

	// Disposed well before the reporting period. Its lifetime depreciation
	// must not depress this period's profit.
	priorDisposal := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockAssetRepo.On("ListFixedAssets", ctx, suite.businessID).Return([]domain.FixedAsset{
		{
			FixedAssetID:            uuid.NewString(),
			Category:                domain.AssetFixed,
			AccumulatedDepreciation: decimal.NewFromInt(40000),
			IsActive:                false,
			IsDisposed:              true,
			DisposalDate:            &priorDisposal,
			DisposalProfit:          decimal.NewFromInt(12000),
		},
	}, nil).Once()

	report, err := suite.service.AccountingProfit(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Depreciation.IsZero())
	suite.True(report.DisposalProfitLoss.IsZero())
}

func (suite *ReportingServiceTestSuite) TestVATReport_SplitsByDirection() {
	ctx := context.Background()

	inflow := suite.txn(uuid.NewString(), domain.Receipt, 107500)
	inflow.VATAmount = decimal.NewFromInt(7500)
	outflow := suite.txn(uuid.NewString(), domain.Payment, 21500)
	outflow.VATAmount = decimal.NewFromInt(1500)
	plain := suite.txn(uuid.NewString(), domain.Payment, 5000)

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{inflow, outflow, plain}, nil).Once()

	report, err := suite.service.VATReport(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.VATCollected.Equal(decimal.NewFromInt(7500)))
	suite.True(report.VATPaid.Equal(decimal.NewFromInt(1500)))
	suite.True(report.VATNet.Equal(decimal.NewFromInt(6000)))
	suite.Len(report.Transactions, 2)
}

func (suite *ReportingServiceTestSuite) TestWHTReport_SplitsByType() {
	ctx := context.Background()

	receivable := suite.txn(uuid.NewString(), domain.Receipt, 100000)
	receivable.WHTAmount = decimal.NewFromInt(5000)
	receivable.WHTType = domain.WHTReceivable
	payable := suite.txn(uuid.NewString(), domain.Payment, 80000)
	payable.WHTAmount = decimal.NewFromInt(4000)
	payable.WHTType = domain.WHTPayable

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.businessID, suite.from, suite.to).Return([]domain.Transaction{receivable, payable}, nil).Once()

	report, err := suite.service.WHTReport(ctx, suite.businessID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.WHTReceivable.Equal(decimal.NewFromInt(5000)))
	suite.True(report.WHTPayable.Equal(decimal.NewFromInt(4000)))
	suite.True(report.WHTNet.Equal(decimal.NewFromInt(1000)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
