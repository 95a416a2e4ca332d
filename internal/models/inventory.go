package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents an inventory item row carrying the running quantity
// and weighted-average unit cost.
type InventoryItem struct {
	ItemID          string          `db:"item_id"`
	BusinessID      string          `db:"business_id"`
	SKU             string          `db:"sku"`
	Name            string          `db:"name"`
	CurrentQuantity decimal.Decimal `db:"current_quantity"`
	CurrentCost     decimal.Decimal `db:"current_cost"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}

// InventoryMovement represents one append-only inventory ledger row.
type InventoryMovement struct {
	MovementID      string          `db:"movement_id"`
	ItemID          string          `db:"item_id"`
	TransactionID   string          `db:"transaction_id"`
	Type            string          `db:"type"`
	Date            time.Time       `db:"date"`
	Quantity        decimal.Decimal `db:"quantity"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	TotalCost       decimal.Decimal `db:"total_cost"`
	RunningQuantity decimal.Decimal `db:"running_quantity"`
	RunningCost     decimal.Decimal `db:"running_cost"`
	WeightedAvgCost decimal.Decimal `db:"weighted_avg_cost"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
