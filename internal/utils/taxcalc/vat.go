// Package taxcalc holds the pure tax and adjustment computations: VAT, WHT,
// PAYE bands, depreciation and capital allowance, weighted-average inventory
// costing, and the accounting-profit to CIT/PIT adjustment chain. Everything
// here is a pure function over decimals; no I/O, no logging, no hidden state.
// Callers are expected to validate tenancy and persistence concerns.
package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
)

// VATResult is the breakdown of a transaction amount into net, VAT, and gross.
type VATResult struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// ComputeVAT converts an amount to net/VAT/gross for the given percentage rate.
// When inclusive is true the amount already contains VAT and the tax is
// extracted; otherwise VAT is added on top.
func ComputeVAT(amount, ratePercent decimal.Decimal, inclusive bool) (VATResult, error) {
	if ratePercent.IsNegative() {
		return VATResult{}, fmt.Errorf("%w: VAT rate must not be negative, got %s", apperrors.ErrValidation, ratePercent)
	}
	rate := ratePercent.Div(hundred)

	if inclusive {
		vat := amount.Mul(rate).Div(one.Add(rate)).Round(2)
		return VATResult{
			Net:   amount.Sub(vat).Round(2),
			VAT:   vat,
			Gross: amount.Round(2),
		}, nil
	}

	vat := amount.Mul(rate).Round(2)
	return VATResult{
		Net:   amount.Round(2),
		VAT:   vat,
		Gross: amount.Add(vat).Round(2),
	}, nil
}
