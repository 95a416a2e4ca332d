package taxcalc

import (
	"fmt"

	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PurchaseResult is the item state after a weighted-average purchase.
type PurchaseResult struct {
	NewQuantity     decimal.Decimal
	WeightedAvgCost decimal.Decimal // New unit cost
	TotalCost       decimal.Decimal // Value of all units on hand
}

// ApplyPurchase re-averages the unit cost across the existing stock and the
// incoming units: newCost = (oldQty*oldCost + qty*unitCost) / (oldQty + qty).
func ApplyPurchase(currentQty, currentCost, qty, unitCost decimal.Decimal) (PurchaseResult, error) {
	if qty.IsNegative() || unitCost.IsNegative() {
		return PurchaseResult{}, fmt.Errorf("%w: purchase quantity and unit cost must not be negative", apperrors.ErrValidation)
	}

	newQty := currentQty.Add(qty)
	if newQty.IsZero() {
		return PurchaseResult{NewQuantity: decimal.Zero, WeightedAvgCost: decimal.Zero, TotalCost: decimal.Zero}, nil
	}

	totalCost := currentQty.Mul(currentCost).Add(qty.Mul(unitCost))
	return PurchaseResult{
		NewQuantity:     newQty,
		WeightedAvgCost: totalCost.Div(newQty).Round(2),
		TotalCost:       totalCost.Round(2),
	}, nil
}

// SaleResult is the item state after a sale, plus the COGS it realized.
type SaleResult struct {
	NewQuantity decimal.Decimal
	UnitCost    decimal.Decimal // Unchanged by the sale
	COGS        decimal.Decimal // qty * weighted-average unit cost
	RunningCost decimal.Decimal // Value of the units remaining
}

// ApplySale realizes COGS at the current weighted-average cost and reduces the
// quantity on hand. A sale exceeding the stock on hand fails without touching
// anything.
func ApplySale(currentQty, currentCost, qty decimal.Decimal) (SaleResult, error) {
	if qty.IsNegative() {
		return SaleResult{}, fmt.Errorf("%w: sale quantity must not be negative", apperrors.ErrValidation)
	}
	if qty.GreaterThan(currentQty) {
		return SaleResult{}, fmt.Errorf("%w: requested %s, have %s", apperrors.ErrInsufficientInventory, qty, currentQty)
	}

	newQty := currentQty.Sub(qty)
	return SaleResult{
		NewQuantity: newQty,
		UnitCost:    currentCost,
		COGS:        qty.Mul(currentCost).Round(2),
		RunningCost: newQty.Mul(currentCost).Round(2),
	}, nil
}
