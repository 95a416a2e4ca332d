package services

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// BusinessSvcFacade defines the interface for managing businesses and
// their tax settings.
type BusinessSvcFacade interface {
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error)
	GetBusinessByID(ctx context.Context, businessID string, userID string) (*domain.Business, error)
	GetSettings(ctx context.Context, businessID string, userID string) (*domain.BusinessSettings, error)
	UpdateSettings(ctx context.Context, businessID string, req dto.UpdateSettingsRequest, userID string) (*domain.BusinessSettings, error)
	// CommitCarryForwards persists the carry-forward balances produced by a
	// year-end tax computation so the next financial year starts from them.
	CommitCarryForwards(ctx context.Context, businessID string, cf domain.CarryForwards, userID string) error
}

// BusinessAuthorizerSvc checks whether a user may act on a business.
// It is consumed by every other service before touching business data.
type BusinessAuthorizerSvc interface {
	// AuthorizeUserAction returns apperrors.ErrForbidden when the user has
	// no membership on the business, or a role below the required one.
	AuthorizeUserAction(ctx context.Context, userID string, businessID string, required domain.BusinessUserRole) error
}
