package dto

import (
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines the data needed to create an inventory item.
type CreateInventoryItemRequest struct {
	SKU  string `json:"sku" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// OpeningBalanceRequest seeds an item's initial quantity and unit cost.
type OpeningBalanceRequest struct {
	Date     time.Time       `json:"date" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost decimal.Decimal `json:"unitCost" binding:"required"`
}

// InventoryPurchaseRequest defines a stock purchase at a unit cost.
type InventoryPurchaseRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"required"`
}

// InventorySaleRequest defines a stock sale at a unit price. Cost of goods
// sold is derived from the item's weighted average cost, not from the price.
type InventorySaleRequest struct {
	RevenueAccountID string          `json:"revenueAccountID" binding:"required"`
	COGSAccountID    string          `json:"cogsAccountID" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice        decimal.Decimal `json:"unitPrice" binding:"required"`
}

// ListInventoryItemsResponse wraps the list of inventory items.
type ListInventoryItemsResponse struct {
	Items []domain.InventoryItem `json:"items"`
}

// ListMovementsResponse wraps an item's movement history.
type ListMovementsResponse struct {
	Movements []domain.InventoryMovement `json:"movements"`
}
