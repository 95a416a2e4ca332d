package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelFixedAsset converts a domain FixedAsset to a model FixedAsset.
func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		FixedAssetID:            d.FixedAssetID,
		BusinessID:              d.BusinessID,
		Name:                    d.Name,
		AssetTag:                d.AssetTag,
		PurchaseDate:            d.PurchaseDate,
		Cost:                    d.Cost,
		DepreciationRate:        d.DepreciationRate,
		CapitalAllowanceRate:    d.CapitalAllowanceRate,
		Category:                string(d.Category),
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		DisposalDate:            d.DisposalDate,
		DisposalAmount:          d.DisposalAmount,
		DisposalProfit:          d.DisposalProfit,
		ChargeableGain:          d.ChargeableGain,
		ChargeableLoss:          d.ChargeableLoss,
		IsDisposed:              d.IsDisposed,
		IsActive:                d.IsActive,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedAsset converts a model FixedAsset to a domain FixedAsset.
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		FixedAssetID:            m.FixedAssetID,
		BusinessID:              m.BusinessID,
		Name:                    m.Name,
		AssetTag:                m.AssetTag,
		PurchaseDate:            m.PurchaseDate,
		Cost:                    m.Cost,
		DepreciationRate:        m.DepreciationRate,
		CapitalAllowanceRate:    m.CapitalAllowanceRate,
		Category:                domain.AssetCategory(m.Category),
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		DisposalDate:            m.DisposalDate,
		DisposalAmount:          m.DisposalAmount,
		DisposalProfit:          m.DisposalProfit,
		ChargeableGain:          m.ChargeableGain,
		ChargeableLoss:          m.ChargeableLoss,
		IsDisposed:              m.IsDisposed,
		IsActive:                m.IsActive,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFixedAssetSlice converts a slice of model FixedAssets.
func ToDomainFixedAssetSlice(ms []models.FixedAsset) []domain.FixedAsset {
	ds := make([]domain.FixedAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFixedAsset(m)
	}
	return ds
}
