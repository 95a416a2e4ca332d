package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CITTurnoverThreshold gates the CIT rate: businesses at or below this turnover
// pay 0% CIT and their WHT receivable carries forward unconsumed.
var CITTurnoverThreshold = decimal.NewFromInt(50_000_000)

// nonTaxableRatioLimit is the boundary of the capital allowance restriction.
// A non-taxable ratio of exactly 10% already triggers the restricted branch.
var nonTaxableRatioLimit = decimal.NewFromFloat(0.10)

var twoThirds = decimal.NewFromInt(2).Div(decimal.NewFromInt(3))

// AccountingProfit folds the period buckets into accounting profit:
// revenue - COGS - depreciation - expenses + disposal profit/loss.
func AccountingProfit(revenue, cogs, depreciation, expenses, disposalProfitLoss decimal.Decimal) decimal.Decimal {
	return revenue.
		Sub(cogs).
		Sub(depreciation).
		Sub(expenses).
		Add(disposalProfitLoss).
		Round(2)
}

// TaxableProfitInput carries everything the adjustment chain needs.
type TaxableProfitInput struct {
	AccountingProfit        decimal.Decimal
	Depreciation            decimal.Decimal // Added back; book depreciation is not deductible
	DisallowableExpenses    decimal.Decimal
	ChargeableGains         decimal.Decimal
	ChargeableLosses        decimal.Decimal
	NonTaxableIncome        decimal.Decimal
	LossReliefBf            decimal.Decimal
	CapitalAllowanceForYear decimal.Decimal
	CapitalAllowanceBf      decimal.Decimal
	Revenue                 decimal.Decimal // Turnover, drives the 10% restriction
}

// TaxableProfit runs the adjustment chain from accounting profit to taxable
// profit, restricting the capital allowance to two thirds when non-taxable
// income reaches 10% of revenue. The unrelieved third is reported for the
// caller to carry forward.
func TaxableProfit(in TaxableProfitInput) domain.TaxableProfitReport {
	totalCA := in.CapitalAllowanceForYear.Add(in.CapitalAllowanceBf)

	ratio := decimal.Zero
	if in.Revenue.IsPositive() {
		ratio = in.NonTaxableIncome.Div(in.Revenue)
	}

	allowedCA := totalCA
	unrelievedCA := decimal.Zero
	if ratio.GreaterThanOrEqual(nonTaxableRatioLimit) {
		allowedCA = totalCA.Mul(twoThirds).Round(2)
		unrelievedCA = totalCA.Sub(allowedCA)
	}

	taxable := in.AccountingProfit.
		Add(in.Depreciation).
		Add(in.DisallowableExpenses).
		Add(in.ChargeableGains.Sub(in.ChargeableLosses)).
		Sub(in.NonTaxableIncome).
		Sub(in.LossReliefBf).
		Sub(allowedCA)

	return domain.TaxableProfitReport{
		AccountingProfit:           in.AccountingProfit.Round(2),
		Depreciation:               in.Depreciation.Round(2),
		DisallowableExpenses:       in.DisallowableExpenses.Round(2),
		ChargeableGains:            in.ChargeableGains.Round(2),
		ChargeableLosses:           in.ChargeableLosses.Round(2),
		NonTaxableIncome:           in.NonTaxableIncome.Round(2),
		LossReliefBf:               in.LossReliefBf.Round(2),
		CapitalAllowanceForYear:    in.CapitalAllowanceForYear.Round(2),
		CapitalAllowanceBf:         in.CapitalAllowanceBf.Round(2),
		TotalCapitalAllowance:      totalCA.Round(2),
		AllowedCapitalAllowance:    allowedCA.Round(2),
		UnrelievedCapitalAllowance: unrelievedCA.Round(2),
		NonTaxableRatio:            ratio.Round(4),
		TaxableProfit:              decimal.Max(decimal.Zero, taxable).Round(2),
	}
}

// CITResult is the company income tax outcome for one period.
type CITResult struct {
	CITRate        decimal.Decimal // Percent actually applied (0 below the threshold)
	CIT            decimal.Decimal
	WHTDeductible  decimal.Decimal
	WHTCarriedFwd  decimal.Decimal
	NetCIT         decimal.Decimal
	BelowThreshold bool
}

// ComputeCIT applies the turnover-gated rate and nets off WHT receivable.
// WHT is consumed only when a positive rate applies, and only up to the CIT
// charge itself; the remainder carries forward.
func ComputeCIT(turnover, taxableProfit, citRatePercent, whtReceivable decimal.Decimal) (CITResult, error) {
	if citRatePercent.IsNegative() {
		return CITResult{}, fmt.Errorf("%w: CIT rate must not be negative, got %s", apperrors.ErrValidation, citRatePercent)
	}

	rate := citRatePercent
	below := turnover.LessThanOrEqual(CITTurnoverThreshold)
	if below {
		rate = decimal.Zero
	}

	cit := taxableProfit.Mul(rate.Div(hundred)).Round(2)

	deductible := decimal.Zero
	if rate.IsPositive() {
		deductible = decimal.Min(whtReceivable, cit)
	}

	return CITResult{
		CITRate:        rate,
		CIT:            cit,
		WHTDeductible:  deductible.Round(2),
		WHTCarriedFwd:  whtReceivable.Sub(deductible).Round(2),
		NetCIT:         decimal.Max(decimal.Zero, cit.Sub(deductible)).Round(2),
		BelowThreshold: below,
	}, nil
}

// ComputePIT assesses a sole proprietor's taxable profit under the PAYE bands.
// No employment reliefs apply; the profit goes straight into the band walk.
func ComputePIT(taxableProfit decimal.Decimal, bands []Band) (domain.PAYEResult, error) {
	return ComputePAYE(decimal.Max(decimal.Zero, taxableProfit), Reliefs{}, bands)
}
