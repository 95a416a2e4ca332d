package services

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// TransactionSvcFacade defines the interface for recording and listing
// transactions. VAT and WHT components are computed at entry time from
// the business settings and stored on the transaction.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, businessID string, txnID string, userID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) ([]domain.Transaction, error)
}
