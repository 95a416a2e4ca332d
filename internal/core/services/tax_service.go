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

// TaxService runs the year-end computations: the adjustment chain from
// accounting profit to taxable profit, then CIT for companies or PIT for sole
// proprietors. The regime is gated on the business type before any figures are
// computed.
type TaxService struct {
	BaseService
	reporting    portssvc.ReportingSvcFacade
	businessRepo portsrepo.BusinessRepository
	assetRepo    portsrepo.FixedAssetRepository
}

// NewTaxService creates a new TaxService.
func NewTaxService(reporting portssvc.ReportingSvcFacade, br portsrepo.BusinessRepository, fr portsrepo.FixedAssetRepository, authorizer portssvc.BusinessAuthorizerSvc) *TaxService {
	return &TaxService{
		BaseService:  BaseService{BusinessAuthorizer: authorizer},
		reporting:    reporting,
		businessRepo: br,
		assetRepo:    fr,
	}
}

var _ portssvc.TaxSvcFacade = (*TaxService)(nil)

// CITReport computes company income tax for the period. Fails with
// ErrWrongTaxRegime for sole proprietors before touching any figures.
func (s *TaxService) CITReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.CITReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	business, settings, err := s.loadBusinessAndSettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.BusinessType != domain.Company || !settings.CITEnabled {
		return nil, fmt.Errorf("%w: CIT applies to companies only", apperrors.ErrWrongTaxRegime)
	}

	accounting, taxable, excessLosses, err := s.adjustmentChain(ctx, businessID, from, to, *settings, userID)
	if err != nil {
		return nil, err
	}

	whtReport, err := s.reporting.WHTReport(ctx, businessID, from, to, userID)
	if err != nil {
		return nil, err
	}

	cit, err := taxcalc.ComputeCIT(accounting.Revenue, taxable.TaxableProfit, settings.CITRate, whtReport.WHTReceivable)
	if err != nil {
		return nil, err
	}

	report := &domain.CITReport{
		Accounting:    *accounting,
		Taxable:       taxable,
		Turnover:      accounting.Revenue,
		CITRate:       cit.CITRate,
		CIT:           cit.CIT,
		WHTReceivable: whtReport.WHTReceivable,
		WHTDeductible: cit.WHTDeductible,
		NetCIT:        cit.NetCIT,
		CarryForwards: carryForwards(taxable, excessLosses, cit.WHTCarriedFwd),
	}

	s.LogInfo(ctx, "CIT report computed",
		slog.String("business_id", businessID),
		slog.String("taxable_profit", taxable.TaxableProfit.String()),
		slog.String("net_cit", cit.NetCIT.String()),
		slog.Bool("below_threshold", cit.BelowThreshold))
	return report, nil
}

// PITReport assesses a sole proprietor's taxable profit under the progressive
// bands. Fails with ErrWrongTaxRegime for companies.
func (s *TaxService) PITReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.PITReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	business, settings, err := s.loadBusinessAndSettings(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.BusinessType != domain.SoleProprietor || !settings.PITEnabled {
		return nil, fmt.Errorf("%w: PIT applies to sole proprietors only", apperrors.ErrWrongTaxRegime)
	}

	accounting, taxable, excessLosses, err := s.adjustmentChain(ctx, businessID, from, to, *settings, userID)
	if err != nil {
		return nil, err
	}

	pit, err := taxcalc.ComputePIT(taxable.TaxableProfit, taxcalc.DefaultPAYEBands())
	if err != nil {
		return nil, err
	}

	report := &domain.PITReport{
		Accounting:    *accounting,
		Taxable:       taxable,
		PIT:           pit.PAYE,
		Bands:         pit.Bands,
		CarryForwards: carryForwards(taxable, excessLosses, decimal.Zero),
	}

	s.LogInfo(ctx, "PIT report computed",
		slog.String("business_id", businessID),
		slog.String("taxable_profit", taxable.TaxableProfit.String()),
		slog.String("pit", pit.PAYE.String()))
	return report, nil
}

func (s *TaxService) loadBusinessAndSettings(ctx context.Context, businessID string) (*domain.Business, *domain.BusinessSettings, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load business for tax computation", slog.String("business_id", businessID))
		return nil, nil, fmt.Errorf("failed to load business %s: %w", businessID, err)
	}
	settings, err := s.businessRepo.FindSettingsByBusinessID(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for tax computation", slog.String("business_id", businessID))
		return nil, nil, fmt.Errorf("failed to load settings for business %s: %w", businessID, err)
	}
	return business, settings, nil
}

// adjustmentChain builds the accounting profit report and runs the adjustment
// chain to taxable profit. Chargeable losses offset chargeable gains only; the
// excess never reduces ordinary profit and carries forward instead.
func (s *TaxService) adjustmentChain(ctx context.Context, businessID string, from, to time.Time, settings domain.BusinessSettings, userID string) (*domain.AccountingProfitReport, domain.TaxableProfitReport, decimal.Decimal, error) {
	accounting, err := s.reporting.AccountingProfit(ctx, businessID, from, to, userID)
	if err != nil {
		return nil, domain.TaxableProfitReport{}, decimal.Zero, err
	}

	caForYear, err := s.capitalAllowanceForYear(ctx, businessID)
	if err != nil {
		return nil, domain.TaxableProfitReport{}, decimal.Zero, err
	}

	totalLosses := accounting.ChargeableLosses.Add(settings.ChargeableLossBf)
	offsetLosses := decimal.Min(totalLosses, accounting.ChargeableGains)
	excessLosses := totalLosses.Sub(offsetLosses).Round(2)

	taxable := taxcalc.TaxableProfit(taxcalc.TaxableProfitInput{
		AccountingProfit:        accounting.AccountingProfit,
		Depreciation:            accounting.Depreciation,
		DisallowableExpenses:    accounting.DisallowableExpenses,
		ChargeableGains:         accounting.ChargeableGains,
		ChargeableLosses:        offsetLosses,
		NonTaxableIncome:        accounting.NonTaxableIncome,
		LossReliefBf:            settings.LossReliefBf,
		CapitalAllowanceForYear: caForYear,
		CapitalAllowanceBf:      settings.CapitalAllowanceBf,
		Revenue:                 accounting.Revenue,
	})

	return accounting, taxable, excessLosses, nil
}

// capitalAllowanceForYear sums a fresh year's allowance over the undisposed
// FIXED assets, each at its own rate on original cost. Chargeable assets sit
// outside the capital allowance regime.
func (s *TaxService) capitalAllowanceForYear(ctx context.Context, businessID string) (decimal.Decimal, error) {
	assets, err := s.assetRepo.ListActiveFixedAssets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for capital allowance", slog.String("business_id", businessID))
		return decimal.Zero, fmt.Errorf("failed to list assets for capital allowance: %w", err)
	}

	total := decimal.Zero
	for _, asset := range assets {
		if asset.Category != domain.AssetFixed {
			continue
		}
		allowance, err := taxcalc.CapitalAllowanceForYear(asset.Cost, asset.CapitalAllowanceRate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to compute capital allowance for asset %s: %w", asset.FixedAssetID, err)
		}
		total = total.Add(allowance)
	}
	return total.Round(2), nil
}

// carryForwards derives next year's opening balances from this year's outcome.
// An unrelieved loss arises when the adjustments push the pre-clamp taxable
// figure below zero.
func carryForwards(taxable domain.TaxableProfitReport, excessChargeableLosses, whtCarriedFwd decimal.Decimal) domain.CarryForwards {
	preClamp := taxable.AccountingProfit.
		Add(taxable.Depreciation).
		Add(taxable.DisallowableExpenses).
		Add(taxable.ChargeableGains.Sub(taxable.ChargeableLosses)).
		Sub(taxable.NonTaxableIncome).
		Sub(taxable.LossReliefBf).
		Sub(taxable.AllowedCapitalAllowance)

	lossRelief := decimal.Zero
	if preClamp.IsNegative() {
		lossRelief = preClamp.Neg().Round(2)
	}

	return domain.CarryForwards{
		LossReliefBf:       lossRelief,
		CapitalAllowanceBf: taxable.UnrelievedCapitalAllowance,
		ChargeableLossBf:   excessChargeableLosses,
		WHTReceivableBf:    whtCarriedFwd,
	}
}
