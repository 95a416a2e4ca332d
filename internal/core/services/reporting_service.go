package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

// ReportingService builds period reports by bucketing transactions against
// the chart of accounts tax flags.
type ReportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.ChartAccountRepository
	assetRepo       portsrepo.FixedAssetRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(tr portsrepo.TransactionRepository, ar portsrepo.ChartAccountRepository, fr portsrepo.FixedAssetRepository, authorizer portssvc.BusinessAuthorizerSvc) *ReportingService {
	return &ReportingService{
		BaseService:     BaseService{BusinessAuthorizer: authorizer},
		transactionRepo: tr,
		accountRepo:     ar,
		assetRepo:       fr,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// AccountingProfit sums the period's transactions into profit buckets keyed by
// each transaction's account type and tax flags. Depreciation is the lifetime
// accumulated figure over the business's assets; chargeable disposals are
// excluded from accounting profit and reported separately for the tax step.
func (s *ReportingService) AccountingProfit(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.AccountingProfitReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for profit report", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accountsByID := make(map[string]domain.ChartAccount, len(accounts))
	for _, acc := range accounts {
		accountsByID[acc.AccountID] = acc
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for profit report", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report := &domain.AccountingProfitReport{
		Revenue:              decimal.Zero,
		COGS:                 decimal.Zero,
		Expenses:             decimal.Zero,
		Depreciation:         decimal.Zero,
		DisposalProfitLoss:   decimal.Zero,
		NonTaxableIncome:     decimal.Zero,
		DisallowableExpenses: decimal.Zero,
		ChargeableGains:      decimal.Zero,
		ChargeableLosses:     decimal.Zero,
	}

	for _, txn := range txns {
		account, ok := accountsByID[txn.AccountID]
		if !ok {
			// Asset-linked rows (purchases, depreciation charges, disposals)
			// carry no chart account and are folded in from the asset register.
			continue
		}

		// The VAT portion is neither income nor expense.
		net := txn.Amount.Sub(txn.VATAmount)

		switch account.AccountType {
		case domain.Revenue:
			report.Revenue = report.Revenue.Add(net)
			if account.IsNonTaxable {
				report.NonTaxableIncome = report.NonTaxableIncome.Add(net)
			}
		case domain.COGS:
			report.COGS = report.COGS.Add(net)
		case domain.Expense:
			report.Expenses = report.Expenses.Add(net)
			if account.IsDisallowable {
				report.DisallowableExpenses = report.DisallowableExpenses.Add(net)
			}
		}
	}

	assets, err := s.assetRepo.ListFixedAssets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for profit report", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}

	for _, asset := range assets {
		// Only assets still on the books contribute depreciation; a past
		// disposal must not keep depressing later periods.
		if asset.IsActive && !asset.IsDisposed {
			report.Depreciation = report.Depreciation.Add(asset.AccumulatedDepreciation)
		}

		if !asset.IsDisposed || asset.DisposalDate == nil {
			continue
		}
		if asset.DisposalDate.Before(from) || asset.DisposalDate.After(to) {
			continue
		}
		switch asset.Category {
		case domain.AssetChargeable:
			report.ChargeableGains = report.ChargeableGains.Add(asset.ChargeableGain)
			report.ChargeableLosses = report.ChargeableLosses.Add(asset.ChargeableLoss)
		default:
			report.DisposalProfitLoss = report.DisposalProfitLoss.Add(asset.DisposalProfit)
		}
	}

	report.Revenue = report.Revenue.Round(2)
	report.COGS = report.COGS.Round(2)
	report.Expenses = report.Expenses.Round(2)
	report.Depreciation = report.Depreciation.Round(2)
	report.DisposalProfitLoss = report.DisposalProfitLoss.Round(2)
	report.NonTaxableIncome = report.NonTaxableIncome.Round(2)
	report.DisallowableExpenses = report.DisallowableExpenses.Round(2)
	report.ChargeableGains = report.ChargeableGains.Round(2)
	report.ChargeableLosses = report.ChargeableLosses.Round(2)
	report.AccountingProfit = taxcalc.AccountingProfit(
		report.Revenue, report.COGS, report.Depreciation, report.Expenses, report.DisposalProfitLoss)

	s.LogDebug(ctx, "Accounting profit report built",
		slog.String("business_id", businessID),
		slog.String("accounting_profit", report.AccountingProfit.String()))
	return report, nil
}

// VATReport totals VAT collected on inflows against VAT paid on outflows.
func (s *ReportingService) VATReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.VATReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for VAT report", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report := &domain.VATReport{
		VATCollected: decimal.Zero,
		VATPaid:      decimal.Zero,
		Transactions: []domain.Transaction{},
	}
	for _, txn := range txns {
		if txn.VATAmount.IsZero() {
			continue
		}
		if txn.Type.IsInflow() {
			report.VATCollected = report.VATCollected.Add(txn.VATAmount)
		} else {
			report.VATPaid = report.VATPaid.Add(txn.VATAmount)
		}
		report.Transactions = append(report.Transactions, txn)
	}

	report.VATCollected = report.VATCollected.Round(2)
	report.VATPaid = report.VATPaid.Round(2)
	report.VATNet = report.VATCollected.Sub(report.VATPaid).Round(2)
	return report, nil
}

// WHTReport totals withholding tax by direction.
func (s *ReportingService) WHTReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.WHTReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for WHT report", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report := &domain.WHTReport{
		WHTReceivable: decimal.Zero,
		WHTPayable:    decimal.Zero,
		Transactions:  []domain.Transaction{},
	}
	for _, txn := range txns {
		if txn.WHTAmount.IsZero() {
			continue
		}
		switch txn.WHTType {
		case domain.WHTReceivable:
			report.WHTReceivable = report.WHTReceivable.Add(txn.WHTAmount)
		case domain.WHTPayable:
			report.WHTPayable = report.WHTPayable.Add(txn.WHTAmount)
		}
		report.Transactions = append(report.Transactions, txn)
	}

	report.WHTReceivable = report.WHTReceivable.Round(2)
	report.WHTPayable = report.WHTPayable.Round(2)
	report.WHTNet = report.WHTReceivable.Sub(report.WHTPayable).Round(2)
	return report, nil
}
