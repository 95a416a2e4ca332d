package repositories

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// ChartAccountRepository defines persistence operations for chart accounts.
type ChartAccountRepository interface {
	SaveAccount(ctx context.Context, account domain.ChartAccount) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error)
	ListAccounts(ctx context.Context, businessID string) ([]domain.ChartAccount, error)
}
