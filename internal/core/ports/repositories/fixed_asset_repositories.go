package repositories

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// FixedAssetRepository defines persistence operations for fixed assets.
type FixedAssetRepository interface {
	SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error
	FindFixedAssetByID(ctx context.Context, fixedAssetID string) (*domain.FixedAsset, error)
	ListFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error)
	// ListActiveFixedAssets returns only active, undisposed assets. The
	// monthly depreciation run operates on this set.
	ListActiveFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error)
	// UpdateFixedAsset persists depreciation and disposal state changes. The
	// accumulated depreciation written is an idempotent replacement, not a delta.
	UpdateFixedAsset(ctx context.Context, asset domain.FixedAsset) error
}
