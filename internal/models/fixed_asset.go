package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset represents a depreciable asset row.
type FixedAsset struct {
	FixedAssetID            string          `db:"fixed_asset_id"`
	BusinessID              string          `db:"business_id"`
	Name                    string          `db:"name"`
	AssetTag                string          `db:"asset_tag"`
	PurchaseDate            time.Time       `db:"purchase_date"`
	Cost                    decimal.Decimal `db:"cost"`
	DepreciationRate        decimal.Decimal `db:"depreciation_rate"`
	CapitalAllowanceRate    decimal.Decimal `db:"capital_allowance_rate"`
	Category                string          `db:"category"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	DisposalDate            *time.Time      `db:"disposal_date"`
	DisposalAmount          decimal.Decimal `db:"disposal_amount"`
	DisposalProfit          decimal.Decimal `db:"disposal_profit"`
	ChargeableGain          decimal.Decimal `db:"chargeable_gain"`
	ChargeableLoss          decimal.Decimal `db:"chargeable_loss"`
	IsDisposed              bool            `db:"is_disposed"`
	IsActive                bool            `db:"is_active"`
	AuditFields
}
