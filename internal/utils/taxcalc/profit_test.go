package taxcalc_test

import (
	"testing"

	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountingProfit(t *testing.T) {
	profit := taxcalc.AccountingProfit(d("1000000"), d("300000"), d("50000"), d("200000"), d("25000"))
	assert.True(t, profit.Equal(d("475000")), "profit = %s", profit)
}

func TestTaxableProfit_FullAllowanceBelowTenPercent(t *testing.T) {
	rep := taxcalc.TaxableProfit(taxcalc.TaxableProfitInput{
		AccountingProfit:        d("1000000"),
		Depreciation:            d("100000"),
		DisallowableExpenses:    d("50000"),
		NonTaxableIncome:        d("90000"), // 9% of revenue
		Revenue:                 d("1000000"),
		CapitalAllowanceForYear: d("120000"),
		CapitalAllowanceBf:      d("30000"),
	})
	assert.True(t, rep.AllowedCapitalAllowance.Equal(d("150000")), "allowed = %s", rep.AllowedCapitalAllowance)
	assert.True(t, rep.UnrelievedCapitalAllowance.IsZero())
	// 1,000,000 + 100,000 + 50,000 - 90,000 - 150,000 = 910,000
	assert.True(t, rep.TaxableProfit.Equal(d("910000")), "taxable = %s", rep.TaxableProfit)
}

func TestTaxableProfit_RestrictedAtExactlyTenPercent(t *testing.T) {
	// The boundary belongs to the restricted branch: ratio == 0.10 gives 2/3 only.
	rep := taxcalc.TaxableProfit(taxcalc.TaxableProfitInput{
		AccountingProfit:        d("500000"),
		NonTaxableIncome:        d("100000"),
		Revenue:                 d("1000000"),
		CapitalAllowanceForYear: d("90000"),
	})
	assert.True(t, rep.AllowedCapitalAllowance.Equal(d("60000")), "allowed = %s", rep.AllowedCapitalAllowance)
	assert.True(t, rep.UnrelievedCapitalAllowance.Equal(d("30000")), "unrelieved = %s", rep.UnrelievedCapitalAllowance)
}

func TestTaxableProfit_ZeroRevenue(t *testing.T) {
	rep := taxcalc.TaxableProfit(taxcalc.TaxableProfitInput{
		AccountingProfit:        d("100000"),
		NonTaxableIncome:        d("5000"),
		CapitalAllowanceForYear: d("30000"),
	})
	// Zero revenue means a zero ratio, so the full allowance applies.
	assert.True(t, rep.NonTaxableRatio.IsZero())
	assert.True(t, rep.AllowedCapitalAllowance.Equal(d("30000")))
}

func TestTaxableProfit_ChargeableNettingAndFloor(t *testing.T) {
	rep := taxcalc.TaxableProfit(taxcalc.TaxableProfitInput{
		AccountingProfit: d("100000"),
		ChargeableGains:  d("40000"),
		ChargeableLosses: d("15000"),
		LossReliefBf:     d("500000"),
		Revenue:          d("900000"),
	})
	// 100,000 + 25,000 - 500,000 clamps to zero.
	assert.True(t, rep.TaxableProfit.IsZero(), "taxable = %s", rep.TaxableProfit)
	assert.True(t, rep.ChargeableGains.Equal(d("40000")))
	assert.True(t, rep.ChargeableLosses.Equal(d("15000")))
}

func TestComputeCIT_BelowTurnoverThreshold(t *testing.T) {
	res, err := taxcalc.ComputeCIT(d("30000000"), d("5000000"), d("25"), d("100000"))
	require.NoError(t, err)
	assert.True(t, res.CITRate.IsZero())
	assert.True(t, res.CIT.IsZero())
	assert.True(t, res.NetCIT.IsZero())
	assert.True(t, res.WHTDeductible.IsZero())
	// The receivable carries forward untouched when no CIT is charged.
	assert.True(t, res.WHTCarriedFwd.Equal(d("100000")), "carried = %s", res.WHTCarriedFwd)
	assert.True(t, res.BelowThreshold)
}

func TestComputeCIT_AboveThreshold(t *testing.T) {
	res, err := taxcalc.ComputeCIT(d("60000000"), d("10000000"), d("25"), d("500000"))
	require.NoError(t, err)
	assert.True(t, res.CIT.Equal(d("2500000")), "cit = %s", res.CIT)
	assert.True(t, res.WHTDeductible.Equal(d("500000")))
	assert.True(t, res.NetCIT.Equal(d("2000000")), "net = %s", res.NetCIT)
	assert.True(t, res.WHTCarriedFwd.IsZero())
	assert.False(t, res.BelowThreshold)
}

func TestComputeCIT_ThresholdBoundary(t *testing.T) {
	// Exactly 50M is still in the zero-rate bracket.
	res, err := taxcalc.ComputeCIT(d("50000000"), d("1000000"), d("25"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, res.CITRate.IsZero())
	assert.True(t, res.BelowThreshold)
}

func TestComputeCIT_WHTExceedsCharge(t *testing.T) {
	res, err := taxcalc.ComputeCIT(d("60000000"), d("1000000"), d("25"), d("400000"))
	require.NoError(t, err)
	// 250,000 charge, 400,000 receivable: consume up to the charge, carry the rest.
	assert.True(t, res.CIT.Equal(d("250000")))
	assert.True(t, res.WHTDeductible.Equal(d("250000")))
	assert.True(t, res.NetCIT.IsZero())
	assert.True(t, res.WHTCarriedFwd.Equal(d("150000")), "carried = %s", res.WHTCarriedFwd)
}

func TestComputePIT_UsesBands(t *testing.T) {
	// PIT on 700k taxable profit matches the PAYE band walk with no reliefs.
	pit, err := taxcalc.ComputePIT(d("700000"), taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, pit.PAYE.Equal(d("69000")), "pit = %s", pit.PAYE)
}

func TestComputePIT_NegativeProfitClamps(t *testing.T) {
	pit, err := taxcalc.ComputePIT(d("-50000"), taxcalc.DefaultPAYEBands())
	require.NoError(t, err)
	assert.True(t, pit.PAYE.IsZero())
}
