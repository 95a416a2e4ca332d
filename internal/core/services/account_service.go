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

// ChartAccountService handles business logic for the chart of accounts.
type ChartAccountService struct {
	BaseService
	accountRepo portsrepo.ChartAccountRepository
}

// NewChartAccountService creates a new ChartAccountService.
func NewChartAccountService(ar portsrepo.ChartAccountRepository, authorizer portssvc.BusinessAuthorizerSvc) *ChartAccountService {
	return &ChartAccountService{
		BaseService: BaseService{BusinessAuthorizer: authorizer},
		accountRepo: ar,
	}
}

var _ portssvc.ChartAccountSvcFacade = (*ChartAccountService)(nil)

// CreateAccount persists a new chart account with its tax flags.
func (s *ChartAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.ChartAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	// Tax flag sanity: only expenses can be disallowable, only revenue
	// can be non-taxable or count toward turnover.
	if req.IsDisallowable && req.AccountType != domain.Expense {
		return nil, fmt.Errorf("%w: only EXPENSE accounts can be disallowable", apperrors.ErrValidation)
	}
	if (req.IsNonTaxable || req.IsRevenue) && req.AccountType != domain.Revenue {
		return nil, fmt.Errorf("%w: only REVENUE accounts can be flagged non-taxable or turnover", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.ChartAccount{
		AccountID:        uuid.NewString(),
		BusinessID:       businessID,
		Code:             req.Code,
		Name:             req.Name,
		AccountType:      req.AccountType,
		IsDisallowable:   req.IsDisallowable,
		IsNonTaxable:     req.IsNonTaxable,
		IsRevenue:        req.IsRevenue,
		IsRent:           req.IsRent,
		IsDisposalProfit: req.IsDisposalProfit,
		IsDisposalLoss:   req.IsDisposalLoss,
		Balance:          decimal.Zero,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save chart account", slog.String("business_id", businessID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Chart account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a chart account, checking that it belongs to the
// business the caller is acting on.
func (s *ChartAccountService) GetAccountByID(ctx context.Context, businessID string, accountID string, userID string) (*domain.ChartAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find chart account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	if account.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts for a business.
func (s *ChartAccountService) ListAccounts(ctx context.Context, businessID string, userID string) ([]domain.ChartAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chart accounts", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list accounts for business %s: %w", businessID, err)
	}
	if accounts == nil {
		return []domain.ChartAccount{}, nil
	}
	return accounts, nil
}
