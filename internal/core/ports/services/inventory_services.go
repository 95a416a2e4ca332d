package services

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// InventorySvcFacade defines the interface for inventory items and
// weighted-average cost movements. Every stock change appends an
// immutable movement line alongside the updated item state.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, businessID string, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, businessID string, itemID string, userID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, businessID string, userID string) ([]domain.InventoryItem, error)
	SetOpeningBalance(ctx context.Context, businessID string, itemID string, req dto.OpeningBalanceRequest, userID string) (*domain.InventoryItem, error)
	RecordPurchase(ctx context.Context, businessID string, itemID string, req dto.InventoryPurchaseRequest, userID string) (*domain.InventoryItem, error)
	// RecordSale books revenue at the sale price and cost of goods sold at
	// the item's weighted average cost. Selling more than is on hand fails
	// with apperrors.ErrInsufficientInventory.
	RecordSale(ctx context.Context, businessID string, itemID string, req dto.InventorySaleRequest, userID string) (*domain.InventoryItem, error)
	ListMovements(ctx context.Context, businessID string, itemID string, userID string) ([]domain.InventoryMovement, error)
}
