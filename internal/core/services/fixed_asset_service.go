package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	portssvc "github.com/nairabooks/naira_books_app/internal/core/ports/services"
	"github.com/nairabooks/naira_books_app/internal/dto"
	"github.com/nairabooks/naira_books_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

// FixedAssetService handles asset acquisition, the monthly reducing-balance
// depreciation run and disposal.
type FixedAssetService struct {
	BaseService
	assetRepo       portsrepo.FixedAssetRepository
	transactionRepo portsrepo.TransactionRepository
	businessRepo    portsrepo.BusinessRepository
}

// NewFixedAssetService creates a new FixedAssetService.
func NewFixedAssetService(fr portsrepo.FixedAssetRepository, tr portsrepo.TransactionRepository, br portsrepo.BusinessRepository, authorizer portssvc.BusinessAuthorizerSvc) *FixedAssetService {
	return &FixedAssetService{
		BaseService:     BaseService{BusinessAuthorizer: authorizer},
		assetRepo:       fr,
		transactionRepo: tr,
		businessRepo:    br,
	}
}

var _ portssvc.FixedAssetSvcFacade = (*FixedAssetService)(nil)

// CreateFixedAsset records an asset purchase. Rates left out of the request
// fall back to the business defaults, and a FIXED_PURCHASE transaction is
// written alongside the asset.
func (s *FixedAssetService) CreateFixedAsset(ctx context.Context, businessID string, req dto.CreateFixedAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !req.Cost.IsPositive() {
		return nil, fmt.Errorf("%w: asset cost must be positive", apperrors.ErrValidation)
	}

	settings, err := s.businessRepo.FindSettingsByBusinessID(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for asset creation", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load business settings: %w", err)
	}

	depRate := settings.DefaultDepreciationRate
	if req.DepreciationRate != nil {
		depRate = *req.DepreciationRate
	}
	caRate := settings.DefaultCapitalAllowanceRate
	if req.CapitalAllowanceRate != nil {
		caRate = *req.CapitalAllowanceRate
	}
	if depRate.IsNegative() || caRate.IsNegative() {
		return nil, fmt.Errorf("%w: rates must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	asset := domain.FixedAsset{
		FixedAssetID:            uuid.NewString(),
		BusinessID:              businessID,
		Name:                    req.Name,
		AssetTag:                req.AssetTag,
		PurchaseDate:            req.PurchaseDate,
		Cost:                    req.Cost.Round(2),
		DepreciationRate:        depRate,
		CapitalAllowanceRate:    caRate,
		Category:                req.Category,
		AccumulatedDepreciation: decimal.Zero,
		DisposalAmount:          decimal.Zero,
		DisposalProfit:          decimal.Zero,
		ChargeableGain:          decimal.Zero,
		ChargeableLoss:          decimal.Zero,
		IsActive:                true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.assetRepo.SaveFixedAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save fixed asset", slog.String("business_id", businessID), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create fixed asset: %w", err)
	}

	purchase := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		FixedAssetID:  asset.FixedAssetID,
		Type:          domain.FixedPurchase,
		Date:          req.PurchaseDate,
		Amount:        asset.Cost,
		Description:   fmt.Sprintf("Purchase of asset %s", asset.Name),
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		AuditFields:   asset.AuditFields,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to record asset purchase transaction", slog.String("fixed_asset_id", asset.FixedAssetID))
		return nil, fmt.Errorf("failed to record asset purchase: %w", err)
	}

	s.LogInfo(ctx, "Fixed asset created", slog.String("fixed_asset_id", asset.FixedAssetID), slog.String("category", string(asset.Category)))
	return &asset, nil
}

// GetFixedAssetByID retrieves one asset.
func (s *FixedAssetService) GetFixedAssetByID(ctx context.Context, businessID string, assetID string, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindFixedAssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find fixed asset", slog.String("fixed_asset_id", assetID))
		return nil, fmt.Errorf("failed to get fixed asset %s: %w", assetID, err)
	}
	if asset.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return asset, nil
}

// ListFixedAssets retrieves all assets for a business, disposed ones included.
func (s *FixedAssetService) ListFixedAssets(ctx context.Context, businessID string, userID string) ([]domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListFixedAssets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed assets", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list fixed assets for business %s: %w", businessID, err)
	}
	if assets == nil {
		return []domain.FixedAsset{}, nil
	}
	return assets, nil
}

// RunMonthlyDepreciation charges one month of reducing-balance depreciation on
// every active, undisposed asset. Each charge updates the asset's accumulated
// depreciation and records a DEPRECIATION transaction. Fully depreciated
// assets contribute a zero line and are left untouched.
func (s *FixedAssetService) RunMonthlyDepreciation(ctx context.Context, businessID string, userID string) ([]dto.DepreciationRunLine, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListActiveFixedAssets(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for depreciation run", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list assets for depreciation run: %w", err)
	}

	now := time.Now()
	lines := make([]dto.DepreciationRunLine, 0, len(assets))
	for _, asset := range assets {
		result, err := taxcalc.MonthlyDepreciation(asset.Cost, asset.AccumulatedDepreciation, asset.DepreciationRate)
		if err != nil {
			s.LogError(ctx, err, "Depreciation computation failed", slog.String("fixed_asset_id", asset.FixedAssetID))
			return nil, fmt.Errorf("failed to depreciate asset %s: %w", asset.FixedAssetID, err)
		}

		lines = append(lines, dto.DepreciationRunLine{
			FixedAssetID:            asset.FixedAssetID,
			Name:                    asset.Name,
			MonthlyDepreciation:     result.MonthlyDepreciation,
			AccumulatedDepreciation: result.AccumulatedDepreciation,
			BookValue:               result.BookValue,
		})

		if result.MonthlyDepreciation.IsZero() {
			continue
		}

		asset.AccumulatedDepreciation = result.AccumulatedDepreciation
		asset.LastUpdatedAt = now
		asset.LastUpdatedBy = userID
		if err := s.assetRepo.UpdateFixedAsset(ctx, asset); err != nil {
			s.LogError(ctx, err, "Failed to update asset after depreciation", slog.String("fixed_asset_id", asset.FixedAssetID))
			return nil, fmt.Errorf("failed to update asset %s: %w", asset.FixedAssetID, err)
		}

		charge := domain.Transaction{
			TransactionID: uuid.NewString(),
			BusinessID:    businessID,
			FixedAssetID:  asset.FixedAssetID,
			Type:          domain.Depreciation,
			Date:          now,
			Amount:        result.MonthlyDepreciation,
			Description:   fmt.Sprintf("Monthly depreciation of %s", asset.Name),
			VATAmount:     decimal.Zero,
			WHTAmount:     decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.transactionRepo.SaveTransaction(ctx, charge); err != nil {
			s.LogError(ctx, err, "Failed to record depreciation transaction", slog.String("fixed_asset_id", asset.FixedAssetID))
			return nil, fmt.Errorf("failed to record depreciation for asset %s: %w", asset.FixedAssetID, err)
		}
	}

	s.LogInfo(ctx, "Depreciation run completed", slog.String("business_id", businessID), slog.Int("assets", len(lines)))
	return lines, nil
}

// DisposeFixedAsset settles an asset at the given proceeds. The gain or loss
// against book value lands in disposal profit for FIXED assets and in the
// chargeable gain/loss fields for CHARGEABLE assets. Disposal happens at most
// once per asset.
func (s *FixedAssetService) DisposeFixedAsset(ctx context.Context, businessID string, assetID string, req dto.DisposeFixedAssetRequest, userID string) (*domain.FixedAsset, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	asset, err := s.GetFixedAssetByID(ctx, businessID, assetID, userID)
	if err != nil {
		return nil, err
	}
	if asset.IsDisposed {
		return nil, fmt.Errorf("%w: asset %s", apperrors.ErrAlreadyDisposed, assetID)
	}
	if req.DisposalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: disposal amount must not be negative", apperrors.ErrValidation)
	}

	result := taxcalc.DisposalGainLoss(asset.Cost, asset.AccumulatedDepreciation, req.DisposalAmount)

	now := time.Now()
	disposalDate := req.DisposalDate
	asset.DisposalDate = &disposalDate
	asset.DisposalAmount = req.DisposalAmount.Round(2)
	asset.IsDisposed = true
	asset.IsActive = false
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	switch asset.Category {
	case domain.AssetChargeable:
		asset.ChargeableGain = result.Gain
		asset.ChargeableLoss = result.Loss
	default:
		asset.DisposalProfit = result.GainLoss
	}

	if err := s.assetRepo.UpdateFixedAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset disposal", slog.String("fixed_asset_id", assetID))
		return nil, fmt.Errorf("failed to dispose asset %s: %w", assetID, err)
	}

	disposal := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		FixedAssetID:  assetID,
		Type:          domain.FixedDisposal,
		Date:          req.DisposalDate,
		Amount:        asset.DisposalAmount,
		Description:   fmt.Sprintf("Disposal of asset %s", asset.Name),
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, disposal); err != nil {
		s.LogError(ctx, err, "Failed to record disposal transaction", slog.String("fixed_asset_id", assetID))
		return nil, fmt.Errorf("failed to record disposal for asset %s: %w", assetID, err)
	}

	s.LogInfo(ctx, "Fixed asset disposed",
		slog.String("fixed_asset_id", assetID),
		slog.String("gain_loss", result.GainLoss.String()),
		slog.String("category", string(asset.Category)))
	return asset, nil
}
