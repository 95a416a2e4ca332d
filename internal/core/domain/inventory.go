package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem tracks quantity on hand and the weighted-average unit cost.
// Purchases re-average the cost; sales reduce quantity and leave cost unchanged.
type InventoryItem struct {
	ItemID          string          `json:"itemID"`     // Primary Key (UUID)
	BusinessID      string          `json:"businessID"` // FK -> businesses.business_id
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	CurrentQuantity decimal.Decimal `json:"currentQuantity"`
	CurrentCost     decimal.Decimal `json:"currentCost"` // Weighted-average unit cost
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// MovementType classifies an inventory ledger line.
type MovementType string

const (
	MovementPurchase       MovementType = "PURCHASE"
	MovementSale           MovementType = "SALE"
	MovementOpeningBalance MovementType = "OPENING_BALANCE"
)

// InventoryMovement is an immutable audit line recorded for every purchase and
// sale. History is append-only; the running fields snapshot the item state after
// the movement was applied.
type InventoryMovement struct {
	MovementID      string          `json:"movementID"` // Primary Key (UUID)
	ItemID          string          `json:"itemID"`     // FK -> inventory_items.item_id
	TransactionID   string          `json:"transactionID,omitempty"`
	Type            MovementType    `json:"type"`
	Date            time.Time       `json:"date"`
	Quantity        decimal.Decimal `json:"quantity"` // Negative for sales
	UnitCost        decimal.Decimal `json:"unitCost"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	RunningQuantity decimal.Decimal `json:"runningQuantity"`
	RunningCost     decimal.Decimal `json:"runningCost"`
	WeightedAvgCost decimal.Decimal `json:"weightedAvgCost"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}
