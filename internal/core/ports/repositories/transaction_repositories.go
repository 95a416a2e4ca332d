package repositories

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger transactions.
// The engine only ever reads transactions back; rows are written once at entry
// time with their derived VAT/WHT amounts and never recomputed.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns all transactions for a business dated within
	// [from, to], inclusive.
	ListTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error)
	// ListSalaryTransactions returns salary-flagged transactions within the window.
	ListSalaryTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error)
}
