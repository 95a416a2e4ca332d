package repositories

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// BusinessRepository defines persistence operations for businesses, their
// settings, and user membership.
type BusinessRepository interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	SaveSettings(ctx context.Context, settings domain.BusinessSettings) error
	FindSettingsByBusinessID(ctx context.Context, businessID string) (*domain.BusinessSettings, error)
	// UpdateCarryForwards atomically replaces the carry-forward balances after a
	// period's tax computation has been accepted.
	UpdateCarryForwards(ctx context.Context, businessID string, cf domain.CarryForwards, updatedBy string) error
	SaveBusinessUser(ctx context.Context, membership domain.BusinessUser) error
	FindUserRole(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error)
}
