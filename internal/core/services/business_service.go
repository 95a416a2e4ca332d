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
	"github.com/shopspring/decimal"
)

// defaultVATRatePercent and defaultWHTRatePercent seed the settings row of a
// new business with the statutory standard rates.
var (
	defaultVATRatePercent = decimal.NewFromFloat(7.5)
	defaultWHTRatePercent = decimal.NewFromInt(5)
	defaultCITRatePercent = decimal.NewFromInt(30)
	defaultDepRatePercent = decimal.NewFromInt(10)
	defaultCARatePercent  = decimal.NewFromInt(25)
)

// BusinessService handles business logic for businesses, their tax settings
// and user membership. It also acts as the authorizer every other service
// consults before touching business data.
type BusinessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepository
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(br portsrepo.BusinessRepository) *BusinessService {
	return &BusinessService{businessRepo: br}
}

var (
	_ portssvc.BusinessSvcFacade     = (*BusinessService)(nil)
	_ portssvc.BusinessAuthorizerSvc = (*BusinessService)(nil)
)

// CreateBusiness creates a new business, seeds its settings with the standard
// rates and makes the creator the owner.
func (s *BusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error) {
	now := time.Now()
	newBusinessID := uuid.NewString()

	business := domain.Business{
		BusinessID:   newBusinessID,
		Name:         req.Name,
		BusinessType: req.BusinessType,
		RCNumber:     req.RCNumber,
		TIN:          req.TIN,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business", slog.String("business_name", req.Name))
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	settings := domain.BusinessSettings{
		SettingsID:                  uuid.NewString(),
		BusinessID:                  newBusinessID,
		DefaultVATRate:              defaultVATRatePercent,
		DefaultWHTRate:              defaultWHTRatePercent,
		CITRate:                     defaultCITRatePercent,
		DefaultDepreciationRate:     defaultDepRatePercent,
		DefaultCapitalAllowanceRate: defaultCARatePercent,
		VATEnabled:                  true,
		WHTEnabled:                  true,
		CITEnabled:                  req.BusinessType == domain.Company,
		PITEnabled:                  req.BusinessType == domain.SoleProprietor,
		PAYEEnabled:                 true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.businessRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save default settings for new business", slog.String("business_id", newBusinessID))
		return nil, fmt.Errorf("failed to create business settings: %w", err)
	}

	membership := domain.BusinessUser{
		UserID:     creatorUserID,
		BusinessID: newBusinessID,
		Role:       domain.RoleOwner,
		JoinedAt:   now,
	}
	if err := s.businessRepo.SaveBusinessUser(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as owner of new business", slog.String("business_id", newBusinessID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to add creator to business: %w", err)
	}

	s.LogInfo(ctx, "Business created successfully", slog.String("business_id", newBusinessID), slog.String("creator_user_id", creatorUserID))
	return &business, nil
}

// GetBusinessByID retrieves a business after checking membership.
func (s *BusinessService) GetBusinessByID(ctx context.Context, businessID string, userID string) (*domain.Business, error) {
	if err := s.AuthorizeUserAction(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find business", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	return business, nil
}

// GetSettings retrieves the tax settings for a business.
func (s *BusinessService) GetSettings(ctx context.Context, businessID string, userID string) (*domain.BusinessSettings, error) {
	if err := s.AuthorizeUserAction(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	settings, err := s.businessRepo.FindSettingsByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find business settings", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to get settings for business %s: %w", businessID, err)
	}
	return settings, nil
}

// UpdateSettings applies the provided settings changes. Only owners may
// change tax configuration.
func (s *BusinessService) UpdateSettings(ctx context.Context, businessID string, req dto.UpdateSettingsRequest, userID string) (*domain.BusinessSettings, error) {
	if err := s.AuthorizeUserAction(ctx, userID, businessID, domain.RoleOwner); err != nil {
		return nil, err
	}

	settings, err := s.businessRepo.FindSettingsByBusinessID(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for update", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load settings for business %s: %w", businessID, err)
	}

	if req.DefaultVATRate != nil {
		if req.DefaultVATRate.IsNegative() {
			return nil, fmt.Errorf("%w: VAT rate must not be negative", apperrors.ErrValidation)
		}
		settings.DefaultVATRate = *req.DefaultVATRate
	}
	if req.DefaultWHTRate != nil {
		if req.DefaultWHTRate.IsNegative() {
			return nil, fmt.Errorf("%w: WHT rate must not be negative", apperrors.ErrValidation)
		}
		settings.DefaultWHTRate = *req.DefaultWHTRate
	}
	if req.CITRate != nil {
		if req.CITRate.IsNegative() {
			return nil, fmt.Errorf("%w: CIT rate must not be negative", apperrors.ErrValidation)
		}
		settings.CITRate = *req.CITRate
	}
	if req.DefaultDepreciationRate != nil {
		settings.DefaultDepreciationRate = *req.DefaultDepreciationRate
	}
	if req.DefaultCapitalAllowanceRate != nil {
		settings.DefaultCapitalAllowanceRate = *req.DefaultCapitalAllowanceRate
	}
	if req.LossReliefBf != nil {
		settings.LossReliefBf = *req.LossReliefBf
	}
	if req.CapitalAllowanceBf != nil {
		settings.CapitalAllowanceBf = *req.CapitalAllowanceBf
	}
	if req.ChargeableLossBf != nil {
		settings.ChargeableLossBf = *req.ChargeableLossBf
	}
	if req.VATEnabled != nil {
		settings.VATEnabled = *req.VATEnabled
	}
	if req.WHTEnabled != nil {
		settings.WHTEnabled = *req.WHTEnabled
	}
	if req.CITEnabled != nil {
		settings.CITEnabled = *req.CITEnabled
	}
	if req.PITEnabled != nil {
		settings.PITEnabled = *req.PITEnabled
	}
	if req.PAYEEnabled != nil {
		settings.PAYEEnabled = *req.PAYEEnabled
	}
	if req.FinancialYearStart != nil {
		settings.FinancialYearStart = req.FinancialYearStart
	}
	if req.FinancialYearEnd != nil {
		settings.FinancialYearEnd = req.FinancialYearEnd
	}

	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.businessRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save updated settings", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to update settings for business %s: %w", businessID, err)
	}

	s.LogInfo(ctx, "Business settings updated", slog.String("business_id", businessID))
	return settings, nil
}

// CommitCarryForwards persists the carry-forward balances from an accepted
// year-end computation. Only owners may commit.
func (s *BusinessService) CommitCarryForwards(ctx context.Context, businessID string, cf domain.CarryForwards, userID string) error {
	if err := s.AuthorizeUserAction(ctx, userID, businessID, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.businessRepo.UpdateCarryForwards(ctx, businessID, cf, userID); err != nil {
		s.LogError(ctx, err, "Failed to commit carry forwards", slog.String("business_id", businessID))
		return fmt.Errorf("failed to commit carry forwards for business %s: %w", businessID, err)
	}

	s.LogInfo(ctx, "Carry forwards committed",
		slog.String("business_id", businessID),
		slog.String("loss_relief_bf", cf.LossReliefBf.String()),
		slog.String("capital_allowance_bf", cf.CapitalAllowanceBf.String()))
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within
// a business. Returns apperrors.ErrNotFound when the user is not a member, so
// callers do not reveal business existence, and apperrors.ErrForbidden when the
// membership exists but the role is too low.
func (s *BusinessService) AuthorizeUserAction(ctx context.Context, userID, businessID string, requiredRole domain.BusinessUserRole) error {
	role, err := s.businessRepo.FindUserRole(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Authorization failed: user not a member of business",
				slog.String("user_id", userID), slog.String("business_id", businessID))
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to check user business role", slog.String("user_id", userID), slog.String("business_id", businessID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if roleRank(role) >= roleRank(requiredRole) {
		return nil
	}

	s.GetLogger(ctx).Warn("Authorization failed: user lacks required role",
		slog.String("user_id", userID),
		slog.String("business_id", businessID),
		slog.String("user_role", string(role)),
		slog.String("required_role", string(requiredRole)))
	return apperrors.ErrForbidden
}

// roleRank orders roles so higher roles satisfy lower requirements.
func roleRank(role domain.BusinessUserRole) int {
	switch role {
	case domain.RoleOwner:
		return 3
	case domain.RoleMember:
		return 2
	case domain.RoleReadOnly:
		return 1
	default:
		return 0
	}
}
