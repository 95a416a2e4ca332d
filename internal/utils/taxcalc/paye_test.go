package taxcalc_test

import (
	"testing"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePAYE_FirstBandOnly(t *testing.T) {
	// 200k taxable falls entirely inside the 7% band.
	res, err := taxcalc.ComputePAYE(d("200000"), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.PAYE.Equal(d("14000")), "paye = %s", res.PAYE)
	require.Len(t, res.Bands, 1)
	assert.True(t, res.Bands[0].Amount.Equal(d("200000")))
}

func TestComputePAYE_SpansBands(t *testing.T) {
	// 700k: 300k @ 7% = 21,000; 300k @ 11% = 33,000; 100k @ 15% = 15,000.
	res, err := taxcalc.ComputePAYE(d("700000"), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.PAYE.Equal(d("69000")), "paye = %s", res.PAYE)
	require.Len(t, res.Bands, 3)
	assert.True(t, res.Bands[2].Amount.Equal(d("100000")))
}

func TestComputePAYE_TopBand(t *testing.T) {
	// 5M: 21,000 + 33,000 + 75,000 + 95,000 + 336,000 + (1.8M @ 24%) 432,000 = 992,000.
	res, err := taxcalc.ComputePAYE(d("5000000"), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.PAYE.Equal(d("992000")), "paye = %s", res.PAYE)
	require.Len(t, res.Bands, 6)
}

func TestComputePAYE_Reliefs(t *testing.T) {
	reliefs := taxcalc.Reliefs{
		NHF:              d("25000"),
		Pension:          d("80000"),
		LifeAssurance:    d("10000"),
		MortgageInterest: d("50000"),
		RentPaid:         d("500000"), // 20% relief = 100,000
	}
	res, err := taxcalc.ComputePAYE(d("1000000"), reliefs, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.TotalRelief.Equal(d("265000")), "relief = %s", res.TotalRelief)
	assert.True(t, res.TaxableIncome.Equal(d("735000")), "taxable = %s", res.TaxableIncome)
}

func TestComputePAYE_ReliefsExceedIncome(t *testing.T) {
	reliefs := taxcalc.Reliefs{Pension: d("500000")}
	res, err := taxcalc.ComputePAYE(d("300000"), reliefs, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.TaxableIncome.IsZero())
	assert.True(t, res.PAYE.IsZero())
	assert.Empty(t, res.Bands)
}

func TestComputePAYE_Monotonic(t *testing.T) {
	incomes := []string{"0", "100000", "299999", "300000", "300001", "650000", "1200000", "3200000", "9000000"}
	prev := decimal.NewFromInt(-1)
	for _, inc := range incomes {
		res, err := taxcalc.ComputePAYE(d(inc), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
		require.NoError(t, err)
		assert.True(t, res.PAYE.GreaterThanOrEqual(prev),
			"paye at %s (%s) dropped below previous (%s)", inc, res.PAYE, prev)
		prev = res.PAYE
	}
}

func TestComputePAYE_NoBands(t *testing.T) {
	_, err := taxcalc.ComputePAYE(d("100000"), taxcalc.Reliefs{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestComputePAYE_NegativeIncome(t *testing.T) {
	_, err := taxcalc.ComputePAYE(d("-1"), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestComputeMonthlyPAYE_AnnualizeThenDivide(t *testing.T) {
	// 100k/month = 1.2M/year: 21,000 + 33,000 + 75,000 + (100k @ 19%) 19,000 = 148,000/year.
	res, err := taxcalc.ComputeMonthlyPAYE(d("100000"), taxcalc.Reliefs{}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, res.PAYE.Equal(d("12333.33")), "monthly paye = %s", res.PAYE)
	assert.True(t, res.GrossIncome.Equal(d("100000")), "monthly gross = %s", res.GrossIncome)
}

func TestComputeMonthlyPAYE_MatchesAnnual(t *testing.T) {
	monthly, err := taxcalc.ComputeMonthlyPAYE(d("250000"), taxcalc.Reliefs{NHF: d("5000")}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)

	annual, err := taxcalc.ComputePAYE(d("3000000"), taxcalc.Reliefs{NHF: d("60000")}, taxcalc.DefaultPAYEBands())
	require.NoError(t, err)

	diff := monthly.PAYE.Mul(decimal.NewFromInt(12)).Sub(annual.PAYE).Abs()
	assert.True(t, diff.LessThanOrEqual(d("0.06")), "monthly*12 drifted %s from annual", diff)
}
