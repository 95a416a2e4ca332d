package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WHTResult is the breakdown of a transaction amount into gross, WHT, and net.
type WHTResult struct {
	Gross decimal.Decimal
	WHT   decimal.Decimal
	Net   decimal.Decimal
}

// ComputeWHT derives withholding tax from an amount for the given percentage rate.
// In gross mode the amount is pre-tax and WHT is taken out of it. In net mode the
// amount is what was actually received and the gross must be backed out via
// gross = net / (1 - rate), which is undefined for rates of 100% or more.
func ComputeWHT(amount, ratePercent decimal.Decimal, mode domain.WHTMode) (WHTResult, error) {
	if ratePercent.IsNegative() {
		return WHTResult{}, fmt.Errorf("%w: WHT rate must not be negative, got %s", apperrors.ErrValidation, ratePercent)
	}
	rate := ratePercent.Div(hundred)

	switch mode {
	case domain.WHTNet:
		if rate.GreaterThanOrEqual(one) {
			return WHTResult{}, fmt.Errorf("%w: net-mode WHT requires a rate below 100%%, got %s%%", apperrors.ErrDivisionGuard, ratePercent)
		}
		gross := amount.Div(one.Sub(rate))
		wht := gross.Mul(rate).Round(2)
		return WHTResult{
			Gross: gross.Round(2),
			WHT:   wht,
			Net:   amount.Round(2),
		}, nil
	case domain.WHTGross:
		wht := amount.Mul(rate).Round(2)
		return WHTResult{
			Gross: amount.Round(2),
			WHT:   wht,
			Net:   amount.Sub(wht).Round(2),
		}, nil
	default:
		return WHTResult{}, fmt.Errorf("%w: unknown WHT mode %q", apperrors.ErrValidation, mode)
	}
}
