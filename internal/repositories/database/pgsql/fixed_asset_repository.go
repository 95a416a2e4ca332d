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

type PgxFixedAssetRepository struct {
	pool *pgxpool.Pool
}

// newPgxFixedAssetRepository creates a new repository for fixed asset data.
func newPgxFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepository {
	return &PgxFixedAssetRepository{pool: pool}
}

var _ portsrepo.FixedAssetRepository = (*PgxFixedAssetRepository)(nil)

const fixedAssetColumns = `fixed_asset_id, business_id, name, asset_tag, purchase_date, cost,
	depreciation_rate, capital_allowance_rate, category, accumulated_depreciation,
	disposal_date, disposal_amount, disposal_profit, chargeable_gain, chargeable_loss,
	is_disposed, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanFixedAsset(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.FixedAssetID,
		&m.BusinessID,
		&m.Name,
		&m.AssetTag,
		&m.PurchaseDate,
		&m.Cost,
		&m.DepreciationRate,
		&m.CapitalAllowanceRate,
		&m.Category,
		&m.AccumulatedDepreciation,
		&m.DisposalDate,
		&m.DisposalAmount,
		&m.DisposalProfit,
		&m.ChargeableGain,
		&m.ChargeableLoss,
		&m.IsDisposed,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFixedAsset inserts a new fixed asset.
func (r *PgxFixedAssetRepository) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	query := `
		INSERT INTO fixed_assets (` + fixedAssetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.pool.Exec(ctx, query,
		m.FixedAssetID,
		m.BusinessID,
		m.Name,
		m.AssetTag,
		m.PurchaseDate,
		m.Cost,
		m.DepreciationRate,
		m.CapitalAllowanceRate,
		m.Category,
		m.AccumulatedDepreciation,
		m.DisposalDate,
		m.DisposalAmount,
		m.DisposalProfit,
		m.ChargeableGain,
		m.ChargeableLoss,
		m.IsDisposed,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: fixed asset %s already exists", apperrors.ErrDuplicate, m.FixedAssetID)
		}
		return fmt.Errorf("failed to save fixed asset %s: %w", m.FixedAssetID, err)
	}
	return nil
}

// FindFixedAssetByID retrieves a fixed asset by its ID.
func (r *PgxFixedAssetRepository) FindFixedAssetByID(ctx context.Context, fixedAssetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + fixedAssetColumns + ` FROM fixed_assets WHERE fixed_asset_id = $1;`

	m, err := scanFixedAsset(r.pool.QueryRow(ctx, query, fixedAssetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fixed asset by ID %s: %w", fixedAssetID, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// ListFixedAssets retrieves all fixed assets for a business, disposed included.
func (r *PgxFixedAssetRepository) ListFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + fixedAssetColumns + `
		FROM fixed_assets
		WHERE business_id = $1
		ORDER BY purchase_date, name;
	`
	return r.queryFixedAssets(ctx, query, businessID)
}

// ListActiveFixedAssets retrieves active, undisposed fixed assets only.
func (r *PgxFixedAssetRepository) ListActiveFixedAssets(ctx context.Context, businessID string) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + fixedAssetColumns + `
		FROM fixed_assets
		WHERE business_id = $1 AND is_active = TRUE AND is_disposed = FALSE
		ORDER BY purchase_date, name;
	`
	return r.queryFixedAssets(ctx, query, businessID)
}

func (r *PgxFixedAssetRepository) queryFixedAssets(ctx context.Context, query string, businessID string) ([]domain.FixedAsset, error) {
	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets for business %s: %w", businessID, err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		m, err := scanFixedAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row for business %s: %w", businessID, err)
		}
		assets = append(assets, mapping.ToDomainFixedAsset(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows for business %s: %w", businessID, rows.Err())
	}
	return assets, nil
}

// UpdateFixedAsset replaces the mutable state of an asset: accumulated
// depreciation and the disposal columns. Identity and cost columns never change.
func (r *PgxFixedAssetRepository) UpdateFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	query := `
		UPDATE fixed_assets
		SET accumulated_depreciation = $2, disposal_date = $3, disposal_amount = $4,
			disposal_profit = $5, chargeable_gain = $6, chargeable_loss = $7,
			is_disposed = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE fixed_asset_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.FixedAssetID,
		m.AccumulatedDepreciation,
		m.DisposalDate,
		m.DisposalAmount,
		m.DisposalProfit,
		m.ChargeableGain,
		m.ChargeableLoss,
		m.IsDisposed,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update fixed asset %s: %w", m.FixedAssetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
