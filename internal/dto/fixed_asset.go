package dto

import (
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedAssetRequest defines the data needed to record an asset purchase.
// Rates left nil fall back to the business defaults.
type CreateFixedAssetRequest struct {
	Name                 string               `json:"name" binding:"required"`
	AssetTag             string               `json:"assetTag"`
	PurchaseDate         time.Time            `json:"purchaseDate" binding:"required"`
	Cost                 decimal.Decimal      `json:"cost" binding:"required"`
	DepreciationRate     *decimal.Decimal     `json:"depreciationRate"`
	CapitalAllowanceRate *decimal.Decimal     `json:"capitalAllowanceRate"`
	Category             domain.AssetCategory `json:"category" binding:"required,oneof=FIXED CHARGEABLE"`
}

// DisposeFixedAssetRequest defines the data needed to dispose of an asset.
type DisposeFixedAssetRequest struct {
	DisposalDate   time.Time       `json:"disposalDate" binding:"required"`
	DisposalAmount decimal.Decimal `json:"disposalAmount"`
}

// DepreciationRunLine reports the effect of one depreciation run on one asset.
type DepreciationRunLine struct {
	FixedAssetID            string          `json:"fixedAssetID"`
	Name                    string          `json:"name"`
	MonthlyDepreciation     decimal.Decimal `json:"monthlyDepreciation"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// DepreciationRunResponse wraps the per-asset lines of a depreciation run.
type DepreciationRunResponse struct {
	Lines []DepreciationRunLine `json:"lines"`
	Total decimal.Decimal       `json:"total"`
}

// ListFixedAssetsResponse wraps the list of fixed assets.
type ListFixedAssetsResponse struct {
	FixedAssets []domain.FixedAsset `json:"fixedAssets"`
}
