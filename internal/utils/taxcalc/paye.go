package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Band is one progressive tax band. Width is the slice of taxable income the
// band covers; a zero Width marks the unbounded top band. Rate is a fraction.
type Band struct {
	Width decimal.Decimal
	Rate  decimal.Decimal
}

// DefaultPAYEBands returns the Nigerian statutory bands (2024):
// 300k @ 7%, 300k @ 11%, 500k @ 15%, 500k @ 19%, 1.6M @ 21%, remainder @ 24%.
func DefaultPAYEBands() []Band {
	return []Band{
		{Width: decimal.NewFromInt(300_000), Rate: decimal.NewFromFloat(0.07)},
		{Width: decimal.NewFromInt(300_000), Rate: decimal.NewFromFloat(0.11)},
		{Width: decimal.NewFromInt(500_000), Rate: decimal.NewFromFloat(0.15)},
		{Width: decimal.NewFromInt(500_000), Rate: decimal.NewFromFloat(0.19)},
		{Width: decimal.NewFromInt(1_600_000), Rate: decimal.NewFromFloat(0.21)},
		{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.24)},
	}
}

// rentReliefFraction is the statutory rent relief: 20% of rent paid.
var rentReliefFraction = decimal.NewFromFloat(0.20)

// Reliefs are the statutory deductions applied before banding. All amounts must
// cover the same period as the gross income they are deducted from.
type Reliefs struct {
	NHF              decimal.Decimal
	Pension          decimal.Decimal
	LifeAssurance    decimal.Decimal
	MortgageInterest decimal.Decimal
	RentPaid         decimal.Decimal
}

// Total sums the flat reliefs plus 20% of rent paid.
func (r Reliefs) Total() decimal.Decimal {
	return r.NHF.
		Add(r.Pension).
		Add(r.LifeAssurance).
		Add(r.MortgageInterest).
		Add(r.RentPaid.Mul(rentReliefFraction))
}

// Scale multiplies every relief input by the given factor. Used to annualize
// monthly figures before the annual band walk.
func (r Reliefs) Scale(factor decimal.Decimal) Reliefs {
	return Reliefs{
		NHF:              r.NHF.Mul(factor),
		Pension:          r.Pension.Mul(factor),
		LifeAssurance:    r.LifeAssurance.Mul(factor),
		MortgageInterest: r.MortgageInterest.Mul(factor),
		RentPaid:         r.RentPaid.Mul(factor),
	}
}

// ComputePAYE applies the reliefs and walks the progressive bands over the
// remaining taxable income. Bands are consumed in order; the final band must be
// unbounded (zero width). Income and reliefs must be annual figures.
func ComputePAYE(grossIncome decimal.Decimal, reliefs Reliefs, bands []Band) (domain.PAYEResult, error) {
	if len(bands) == 0 {
		return domain.PAYEResult{}, fmt.Errorf("%w: no PAYE bands configured", apperrors.ErrValidation)
	}
	if grossIncome.IsNegative() {
		return domain.PAYEResult{}, fmt.Errorf("%w: gross income must not be negative, got %s", apperrors.ErrValidation, grossIncome)
	}

	totalRelief := reliefs.Total()
	taxableIncome := decimal.Max(decimal.Zero, grossIncome.Sub(totalRelief))

	result := domain.PAYEResult{
		GrossIncome:   grossIncome.Round(2),
		TotalRelief:   totalRelief.Round(2),
		TaxableIncome: taxableIncome.Round(2),
		PAYE:          decimal.Zero,
	}

	remaining := taxableIncome
	for _, band := range bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		inBand := remaining
		if band.Width.IsPositive() {
			inBand = decimal.Min(remaining, band.Width)
		}
		tax := inBand.Mul(band.Rate).Round(2)
		result.Bands = append(result.Bands, domain.PAYEBandLine{
			Amount: inBand.Round(2),
			Rate:   band.Rate,
			Tax:    tax,
		})
		result.PAYE = result.PAYE.Add(tax)
		remaining = remaining.Sub(inBand)
	}

	result.PAYE = result.PAYE.Round(2)
	return result, nil
}

// ComputeMonthlyPAYE annualizes a monthly gross and monthly reliefs, runs the
// annual band walk once, and divides the results by twelve. Keeping a single
// path through the bands avoids the drift that a direct monthly walk produces.
// The band lines stay annual; the headline figures are per month.
func ComputeMonthlyPAYE(monthlyGross decimal.Decimal, monthlyReliefs Reliefs, bands []Band) (domain.PAYEResult, error) {
	annual, err := ComputePAYE(monthlyGross.Mul(twelve), monthlyReliefs.Scale(twelve), bands)
	if err != nil {
		return domain.PAYEResult{}, err
	}
	annual.GrossIncome = annual.GrossIncome.Div(twelve).Round(2)
	annual.TotalRelief = annual.TotalRelief.Div(twelve).Round(2)
	annual.TaxableIncome = annual.TaxableIncome.Div(twelve).Round(2)
	annual.PAYE = annual.PAYE.Div(twelve).Round(2)
	return annual, nil
}
