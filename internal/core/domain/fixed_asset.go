package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetCategory distinguishes how a disposal gain or loss is taxed.
type AssetCategory string

const (
	// AssetFixed disposals flow into ordinary accounting profit.
	AssetFixed AssetCategory = "FIXED"
	// AssetChargeable disposals are excluded from accounting profit and taxed
	// under the chargeable-gains adjustment instead.
	AssetChargeable AssetCategory = "CHARGEABLE"
)

// FixedAsset is a depreciable asset. Accumulated depreciation only ever grows,
// capped at cost, and stops at disposal. Disposal happens at most once.
type FixedAsset struct {
	FixedAssetID            string          `json:"fixedAssetID"` // Primary Key (UUID)
	BusinessID              string          `json:"businessID"`   // FK -> businesses.business_id
	Name                    string          `json:"name"`
	AssetTag                string          `json:"assetTag"`
	PurchaseDate            time.Time       `json:"purchaseDate"`
	Cost                    decimal.Decimal `json:"cost"`
	DepreciationRate        decimal.Decimal `json:"depreciationRate"`     // Percent per annum
	CapitalAllowanceRate    decimal.Decimal `json:"capitalAllowanceRate"` // Percent per annum
	Category                AssetCategory   `json:"category"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	DisposalDate            *time.Time      `json:"disposalDate,omitempty"`
	DisposalAmount          decimal.Decimal `json:"disposalAmount"`
	DisposalProfit          decimal.Decimal `json:"disposalProfit"` // Signed, FIXED assets only
	ChargeableGain          decimal.Decimal `json:"chargeableGain"`
	ChargeableLoss          decimal.Decimal `json:"chargeableLoss"`
	IsDisposed              bool            `json:"isDisposed"`
	IsActive                bool            `json:"isActive"`
	AuditFields
}

// BookValue is cost less accumulated depreciation.
func (a FixedAsset) BookValue() decimal.Decimal {
	return a.Cost.Sub(a.AccumulatedDepreciation)
}
