package repositories

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// InventoryRepository defines persistence operations for inventory items and
// their movement history. Movements are append-only; the item row carries the
// current quantity and weighted-average cost as idempotent replacements.
type InventoryRepository interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, businessID string) ([]domain.InventoryItem, error)
	// ApplyMovement atomically appends the movement line and replaces the item's
	// current quantity and cost in one transaction.
	ApplyMovement(ctx context.Context, item domain.InventoryItem, movement domain.InventoryMovement) error
	ListMovements(ctx context.Context, itemID string) ([]domain.InventoryMovement, error)
}
