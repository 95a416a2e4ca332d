package pgsql

import (
	"context"
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

type PgxBusinessRepository struct {
	pool *pgxpool.Pool
}

// newPgxBusinessRepository creates a new repository for business, settings and
// membership data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepository {
	return &PgxBusinessRepository{pool: pool}
}

var _ portsrepo.BusinessRepository = (*PgxBusinessRepository)(nil)

// SaveBusiness inserts a new business.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)

	query := `
		INSERT INTO businesses (business_id, name, business_type, rc_number, tin, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.BusinessType,
		m.RCNumber,
		m.TIN,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: business %s already exists", apperrors.ErrDuplicate, m.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", m.BusinessID, err)
	}
	return nil
}

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, business_type, rc_number, tin, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM businesses
		WHERE business_id = $1;
	`
	var m models.Business
	err := r.pool.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID,
		&m.Name,
		&m.BusinessType,
		&m.RCNumber,
		&m.TIN,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}

	d := mapping.ToDomainBusiness(m)
	return &d, nil
}

const settingsColumns = `settings_id, business_id, default_vat_rate, default_wht_rate, cit_rate,
	default_depreciation_rate, default_capital_allowance_rate,
	loss_relief_bf, capital_allowance_bf, chargeable_loss_bf,
	vat_enabled, wht_enabled, cit_enabled, pit_enabled, paye_enabled,
	financial_year_start, financial_year_end,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveSettings upserts the settings row for a business. A business has exactly
// one settings row keyed by business_id.
func (r *PgxBusinessRepository) SaveSettings(ctx context.Context, settings domain.BusinessSettings) error {
	m := mapping.ToModelBusinessSettings(settings)

	query := `
		INSERT INTO business_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (business_id) DO UPDATE SET
			default_vat_rate = EXCLUDED.default_vat_rate,
			default_wht_rate = EXCLUDED.default_wht_rate,
			cit_rate = EXCLUDED.cit_rate,
			default_depreciation_rate = EXCLUDED.default_depreciation_rate,
			default_capital_allowance_rate = EXCLUDED.default_capital_allowance_rate,
			loss_relief_bf = EXCLUDED.loss_relief_bf,
			capital_allowance_bf = EXCLUDED.capital_allowance_bf,
			chargeable_loss_bf = EXCLUDED.chargeable_loss_bf,
			vat_enabled = EXCLUDED.vat_enabled,
			wht_enabled = EXCLUDED.wht_enabled,
			cit_enabled = EXCLUDED.cit_enabled,
			pit_enabled = EXCLUDED.pit_enabled,
			paye_enabled = EXCLUDED.paye_enabled,
			financial_year_start = EXCLUDED.financial_year_start,
			financial_year_end = EXCLUDED.financial_year_end,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		m.SettingsID,
		m.BusinessID,
		m.DefaultVATRate,
		m.DefaultWHTRate,
		m.CITRate,
		m.DefaultDepreciationRate,
		m.DefaultCapitalAllowanceRate,
		m.LossReliefBf,
		m.CapitalAllowanceBf,
		m.ChargeableLossBf,
		m.VATEnabled,
		m.WHTEnabled,
		m.CITEnabled,
		m.PITEnabled,
		m.PAYEEnabled,
		m.FinancialYearStart,
		m.FinancialYearEnd,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for business %s: %w", m.BusinessID, err)
	}
	return nil
}

// FindSettingsByBusinessID retrieves the settings row for a business.
func (r *PgxBusinessRepository) FindSettingsByBusinessID(ctx context.Context, businessID string) (*domain.BusinessSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM business_settings WHERE business_id = $1;`

	var m models.BusinessSettings
	err := r.pool.QueryRow(ctx, query, businessID).Scan(
		&m.SettingsID,
		&m.BusinessID,
		&m.DefaultVATRate,
		&m.DefaultWHTRate,
		&m.CITRate,
		&m.DefaultDepreciationRate,
		&m.DefaultCapitalAllowanceRate,
		&m.LossReliefBf,
		&m.CapitalAllowanceBf,
		&m.ChargeableLossBf,
		&m.VATEnabled,
		&m.WHTEnabled,
		&m.CITEnabled,
		&m.PITEnabled,
		&m.PAYEEnabled,
		&m.FinancialYearStart,
		&m.FinancialYearEnd,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for business %s: %w", businessID, err)
	}

	d := mapping.ToDomainBusinessSettings(m)
	return &d, nil
}

// UpdateCarryForwards replaces the carry-forward balances in one statement so a
// committed year end is all-or-nothing.
func (r *PgxBusinessRepository) UpdateCarryForwards(ctx context.Context, businessID string, cf domain.CarryForwards, updatedBy string) error {
	query := `
		UPDATE business_settings
		SET loss_relief_bf = $2, capital_allowance_bf = $3, chargeable_loss_bf = $4, last_updated_at = $5, last_updated_by = $6
		WHERE business_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		businessID,
		cf.LossReliefBf,
		cf.CapitalAllowanceBf,
		cf.ChargeableLossBf,
		time.Now(),
		updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update carry forwards for business %s: %w", businessID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveBusinessUser inserts a membership row.
func (r *PgxBusinessRepository) SaveBusinessUser(ctx context.Context, membership domain.BusinessUser) error {
	m := mapping.ToModelBusinessUser(membership)

	query := `
		INSERT INTO business_users (user_id, business_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query, m.UserID, m.BusinessID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user %s is already a member of business %s", apperrors.ErrDuplicate, m.UserID, m.BusinessID)
		}
		return fmt.Errorf("failed to save business user: %w", err)
	}
	return nil
}

// FindUserRole returns the role a user holds in a business.
func (r *PgxBusinessRepository) FindUserRole(ctx context.Context, userID, businessID string) (domain.BusinessUserRole, error) {
	query := `SELECT role FROM business_users WHERE user_id = $1 AND business_id = $2;`

	var role string
	err := r.pool.QueryRow(ctx, query, userID, businessID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find role for user %s in business %s: %w", userID, businessID, err)
	}
	return domain.BusinessUserRole(role), nil
}
