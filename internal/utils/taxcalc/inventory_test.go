package taxcalc_test

import (
	"testing"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPurchase_WeightedAverage(t *testing.T) {
	// (0,0) -> purchase 100 @ 500 -> purchase 50 @ 600 gives 150 units at ~533.33.
	first, err := taxcalc.ApplyPurchase(decimal.Zero, decimal.Zero, d("100"), d("500"))
	require.NoError(t, err)
	assert.True(t, first.NewQuantity.Equal(d("100")))
	assert.True(t, first.WeightedAvgCost.Equal(d("500")))

	second, err := taxcalc.ApplyPurchase(first.NewQuantity, first.WeightedAvgCost, d("50"), d("600"))
	require.NoError(t, err)
	assert.True(t, second.NewQuantity.Equal(d("150")), "qty = %s", second.NewQuantity)
	assert.True(t, second.WeightedAvgCost.Equal(d("533.33")), "avg cost = %s", second.WeightedAvgCost)
}

func TestApplyPurchase_ZeroTotal(t *testing.T) {
	res, err := taxcalc.ApplyPurchase(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, res.NewQuantity.IsZero())
	assert.True(t, res.WeightedAvgCost.IsZero())
}

func TestApplyPurchase_NegativeInputs(t *testing.T) {
	_, err := taxcalc.ApplyPurchase(d("10"), d("100"), d("-5"), d("100"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplySale_RealizesCOGS(t *testing.T) {
	res, err := taxcalc.ApplySale(d("150"), d("533.33"), d("40"))
	require.NoError(t, err)
	assert.True(t, res.NewQuantity.Equal(d("110")))
	assert.True(t, res.COGS.Equal(d("21333.20")), "cogs = %s", res.COGS)
	// Sales never move the weighted-average unit cost.
	assert.True(t, res.UnitCost.Equal(d("533.33")))
}

func TestApplySale_InsufficientStock(t *testing.T) {
	_, err := taxcalc.ApplySale(d("5"), d("100"), d("6"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)
}

func TestApplySale_ExactStock(t *testing.T) {
	res, err := taxcalc.ApplySale(d("5"), d("100"), d("5"))
	require.NoError(t, err)
	assert.True(t, res.NewQuantity.IsZero())
	assert.True(t, res.COGS.Equal(d("500")))
	assert.True(t, res.RunningCost.IsZero())
}

func TestApplySale_NegativeQuantity(t *testing.T) {
	_, err := taxcalc.ApplySale(d("5"), d("100"), d("-1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
