package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DepreciationResult is the outcome of applying one month of depreciation.
type DepreciationResult struct {
	MonthlyDepreciation     decimal.Decimal
	AccumulatedDepreciation decimal.Decimal // New accumulated figure, never above cost
	BookValue               decimal.Decimal // Cost less new accumulated depreciation
}

// MonthlyDepreciation applies one month of straight-line depreciation against
// the remaining book value (declining base, not original cost) and clamps the
// accumulated figure at cost. The rate is an annual percentage.
func MonthlyDepreciation(cost, accumulated, ratePercent decimal.Decimal) (DepreciationResult, error) {
	if cost.IsNegative() || accumulated.IsNegative() {
		return DepreciationResult{}, fmt.Errorf("%w: cost and accumulated depreciation must not be negative", apperrors.ErrValidation)
	}
	if ratePercent.IsNegative() {
		return DepreciationResult{}, fmt.Errorf("%w: depreciation rate must not be negative, got %s", apperrors.ErrValidation, ratePercent)
	}

	bookValue := cost.Sub(accumulated)
	monthly := bookValue.Mul(ratePercent.Div(hundred)).Div(twelve).Round(2)

	newAccumulated := accumulated.Add(monthly)
	if newAccumulated.GreaterThan(cost) {
		monthly = cost.Sub(accumulated)
		newAccumulated = cost
	}

	return DepreciationResult{
		MonthlyDepreciation:     monthly,
		AccumulatedDepreciation: newAccumulated.Round(2),
		BookValue:               cost.Sub(newAccumulated).Round(2),
	}, nil
}

// CapitalAllowanceForYear is the annual capital allowance on an asset,
// computed fresh against original cost each year (unlike depreciation it does
// not accumulate against a shrinking base).
func CapitalAllowanceForYear(cost, ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if cost.IsNegative() || ratePercent.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: cost and capital allowance rate must not be negative", apperrors.ErrValidation)
	}
	return cost.Mul(ratePercent.Div(hundred)).Round(2), nil
}

// DisposalResult splits a disposal outcome into book value and signed gain/loss.
type DisposalResult struct {
	BookValue decimal.Decimal
	GainLoss  decimal.Decimal // Positive gain, negative loss
	Gain      decimal.Decimal // max(0, GainLoss)
	Loss      decimal.Decimal // abs(min(0, GainLoss))
}

// DisposalGainLoss computes the gain or loss realized when an asset is sold
// for disposalAmount against its depreciated book value.
func DisposalGainLoss(cost, accumulated, disposalAmount decimal.Decimal) DisposalResult {
	bookValue := cost.Sub(accumulated)
	gainLoss := disposalAmount.Sub(bookValue).Round(2)

	res := DisposalResult{
		BookValue: bookValue.Round(2),
		GainLoss:  gainLoss,
		Gain:      decimal.Zero,
		Loss:      decimal.Zero,
	}
	if gainLoss.IsPositive() {
		res.Gain = gainLoss
	} else {
		res.Loss = gainLoss.Abs()
	}
	return res
}
