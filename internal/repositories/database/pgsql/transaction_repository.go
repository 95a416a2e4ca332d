package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	"github.com/nairabooks/naira_books_app/internal/models"
	"github.com/nairabooks/naira_books_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, business_id, account_id, contact_id, fixed_asset_id,
	type, date, amount, description, vat_amount, wht_amount, wht_type, is_salary,
	created_at, created_by, last_updated_at, last_updated_by`

// nullable turns the domain's empty-string optional FKs into SQL NULLs.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var contactID, fixedAssetID, whtType sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.BusinessID,
		&m.AccountID,
		&contactID,
		&fixedAssetID,
		&m.Type,
		&m.Date,
		&m.Amount,
		&m.Description,
		&m.VATAmount,
		&m.WHTAmount,
		&whtType,
		&m.IsSalary,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	m.ContactID = contactID.String
	m.FixedAssetID = fixedAssetID.String
	m.WHTType = whtType.String
	return m, err
}

// SaveTransaction inserts a new transaction row. Rows are immutable after insert.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.BusinessID,
		nullable(m.AccountID),
		nullable(m.ContactID),
		nullable(m.FixedAssetID),
		m.Type,
		m.Date,
		m.Amount,
		m.Description,
		m.VATAmount,
		m.WHTAmount,
		nullable(m.WHTType),
		m.IsSalary,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves all transactions for a business dated within
// [from, to], oldest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at;
	`
	return r.queryTransactions(ctx, query, businessID, from, to)
}

// ListSalaryTransactions retrieves salary-flagged transactions within the window.
func (r *PgxTransactionRepository) ListSalaryTransactions(ctx context.Context, businessID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1 AND date >= $2 AND date <= $3 AND is_salary = TRUE
		ORDER BY date, created_at;
	`
	return r.queryTransactions(ctx, query, businessID, from, to)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, businessID string, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for business %s: %w", businessID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for business %s: %w", businessID, err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for business %s: %w", businessID, rows.Err())
	}
	return txns, nil
}
