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

// TransactionService records ledger transactions. VAT and WHT components are
// derived once here, from the business settings, and stored on the row; no
// later computation ever changes them.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.ChartAccountRepository
	businessRepo    portsrepo.BusinessRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(tr portsrepo.TransactionRepository, ar portsrepo.ChartAccountRepository, br portsrepo.BusinessRepository, authorizer portssvc.BusinessAuthorizerSvc) *TransactionService {
	return &TransactionService{
		BaseService:     BaseService{BusinessAuthorizer: authorizer},
		transactionRepo: tr,
		accountRepo:     ar,
		businessRepo:    br,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreateTransaction validates the entry, derives VAT and WHT from the business
// settings and persists the transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		s.LogError(ctx, err, "Failed to look up account for transaction", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to validate account: %w", err)
	}
	if account.BusinessID != businessID {
		return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
	}

	settings, err := s.businessRepo.FindSettingsByBusinessID(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for transaction", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load business settings: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		AccountID:     req.AccountID,
		ContactID:     req.ContactID,
		Type:          req.Type,
		Date:          req.Date,
		Amount:        req.Amount.Round(2),
		Description:   req.Description,
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		IsSalary:      req.Type == domain.Salary,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: userID,
		},
	}

	if req.ApplyVAT && settings.VATEnabled {
		rate := settings.DefaultVATRate
		if req.VATRate != nil {
			rate = *req.VATRate
		}
		// Amounts are entered VAT-inclusive; the VAT portion is backed out.
		vat, err := taxcalc.ComputeVAT(txn.Amount, rate, true)
		if err != nil {
			return nil, err
		}
		txn.VATAmount = vat.VAT
	}

	if req.ApplyWHT && settings.WHTEnabled {
		rate := settings.DefaultWHTRate
		if req.WHTRate != nil {
			rate = *req.WHTRate
		}
		mode := req.WHTMode
		if mode == "" {
			mode = domain.WHTGross
		}
		wht, err := taxcalc.ComputeWHT(txn.Amount, rate, mode)
		if err != nil {
			return nil, err
		}
		txn.WHTAmount = wht.WHT
		// In net mode the entered amount was net of withholding; the ledger
		// records the grossed-up figure.
		txn.Amount = wht.Gross
		if txn.Type.IsInflow() {
			txn.WHTType = domain.WHTReceivable
		} else {
			txn.WHTType = domain.WHTPayable
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *TransactionService) GetTransactionByID(ctx context.Context, businessID string, txnID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", txnID))
		return nil, fmt.Errorf("failed to get transaction %s: %w", txnID, err)
	}
	if txn.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// ListTransactions retrieves the business's transactions within [from, to].
func (s *TransactionService) ListTransactions(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) ([]domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end precedes period start", apperrors.ErrValidation)
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list transactions for business %s: %w", businessID, err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
