package services

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// FixedAssetSvcFacade defines the interface for fixed asset operations:
// acquisition, the monthly depreciation run and disposal.
type FixedAssetSvcFacade interface {
	CreateFixedAsset(ctx context.Context, businessID string, req dto.CreateFixedAssetRequest, userID string) (*domain.FixedAsset, error)
	GetFixedAssetByID(ctx context.Context, businessID string, assetID string, userID string) (*domain.FixedAsset, error)
	ListFixedAssets(ctx context.Context, businessID string, userID string) ([]domain.FixedAsset, error)
	// RunMonthlyDepreciation charges one month of reducing-balance
	// depreciation on every active, undisposed asset and records a
	// DEPRECIATION transaction per asset.
	RunMonthlyDepreciation(ctx context.Context, businessID string, userID string) ([]dto.DepreciationRunLine, error)
	// DisposeFixedAsset settles an asset at the given proceeds. FIXED
	// assets produce a disposal profit or loss, CHARGEABLE assets a
	// chargeable gain or loss.
	DisposeFixedAsset(ctx context.Context, businessID string, assetID string, req dto.DisposeFixedAssetRequest, userID string) (*domain.FixedAsset, error)
}
