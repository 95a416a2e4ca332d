package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nairabooks/naira_books_app/internal/apperrors"
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	portsrepo "github.com/nairabooks/naira_books_app/internal/core/ports/repositories"
	"github.com/nairabooks/naira_books_app/internal/models"
	"github.com/nairabooks/naira_books_app/internal/utils/mapping"
)

type PgxChartAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxChartAccountRepository creates a new repository for chart account data.
func newPgxChartAccountRepository(pool *pgxpool.Pool) portsrepo.ChartAccountRepository {
	return &PgxChartAccountRepository{pool: pool}
}

var _ portsrepo.ChartAccountRepository = (*PgxChartAccountRepository)(nil)

const chartAccountColumns = `account_id, business_id, code, name, account_type,
	is_disallowable, is_non_taxable, is_revenue, is_rent, is_disposal_profit, is_disposal_loss,
	balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanChartAccount(row pgx.Row) (models.ChartAccount, error) {
	var m models.ChartAccount
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.IsDisallowable,
		&m.IsNonTaxable,
		&m.IsRevenue,
		&m.IsRent,
		&m.IsDisposalProfit,
		&m.IsDisposalLoss,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new chart account.
func (r *PgxChartAccountRepository) SaveAccount(ctx context.Context, account domain.ChartAccount) error {
	m := mapping.ToModelChartAccount(account)

	query := `
		INSERT INTO chart_accounts (` + chartAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.BusinessID,
		m.Code,
		m.Name,
		m.AccountType,
		m.IsDisallowable,
		m.IsNonTaxable,
		m.IsRevenue,
		m.IsRent,
		m.IsDisposalProfit,
		m.IsDisposalLoss,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account code %s already exists for business %s", apperrors.ErrDuplicate, m.Code, m.BusinessID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a chart account by its ID.
func (r *PgxChartAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error) {
	query := `SELECT ` + chartAccountColumns + ` FROM chart_accounts WHERE account_id = $1;`

	m, err := scanChartAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := mapping.ToDomainChartAccount(m)
	return &d, nil
}

// ListAccounts retrieves all active chart accounts for a business, ordered by code.
func (r *PgxChartAccountRepository) ListAccounts(ctx context.Context, businessID string) ([]domain.ChartAccount, error) {
	query := `
		SELECT ` + chartAccountColumns + `
		FROM chart_accounts
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for business %s: %w", businessID, err)
	}
	defer rows.Close()

	accounts := []domain.ChartAccount{}
	for rows.Next() {
		m, err := scanChartAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for business %s: %w", businessID, err)
		}
		accounts = append(accounts, mapping.ToDomainChartAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for business %s: %w", businessID, rows.Err())
	}
	return accounts, nil
}
