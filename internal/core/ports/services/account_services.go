package services

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// ChartAccountSvcFacade defines the interface for chart of accounts
// operations. Account tax flags recorded here drive the adjustment
// buckets used by the reporting and tax services.
type ChartAccountSvcFacade interface {
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.ChartAccount, error)
	GetAccountByID(ctx context.Context, businessID string, accountID string, userID string) (*domain.ChartAccount, error)
	ListAccounts(ctx context.Context, businessID string, userID string) ([]domain.ChartAccount, error)
}
