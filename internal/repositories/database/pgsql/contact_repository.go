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

type PgxContactRepository struct {
	pool *pgxpool.Pool
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepository {
	return &PgxContactRepository{pool: pool}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

const contactColumns = `contact_id, business_id, name, email, type,
	basic_salary, housing_allowance, transport_allowance, other_allowances,
	nhf_contribution, pension_contribution, life_assurance, mortgage_interest, rent_paid,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanContact(row pgx.Row) (models.Contact, error) {
	var m models.Contact
	err := row.Scan(
		&m.ContactID,
		&m.BusinessID,
		&m.Name,
		&m.Email,
		&m.Type,
		&m.BasicSalary,
		&m.HousingAllowance,
		&m.TransportAllowance,
		&m.OtherAllowances,
		&m.NHFContribution,
		&m.PensionContribution,
		&m.LifeAssurance,
		&m.MortgageInterest,
		&m.RentPaid,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveContact inserts a new contact.
func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)

	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ContactID,
		m.BusinessID,
		m.Name,
		m.Email,
		m.Type,
		m.BasicSalary,
		m.HousingAllowance,
		m.TransportAllowance,
		m.OtherAllowances,
		m.NHFContribution,
		m.PensionContribution,
		m.LifeAssurance,
		m.MortgageInterest,
		m.RentPaid,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: contact %s already exists", apperrors.ErrDuplicate, m.ContactID)
		}
		return fmt.Errorf("failed to save contact %s: %w", m.ContactID, err)
	}
	return nil
}

// FindContactByID retrieves a contact by its ID.
func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`

	m, err := scanContact(r.pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact by ID %s: %w", contactID, err)
	}

	d := mapping.ToDomainContact(m)
	return &d, nil
}

// ListContacts retrieves all active contacts for a business.
func (r *PgxContactRepository) ListContacts(ctx context.Context, businessID string) ([]domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY name;
	`
	return r.queryContacts(ctx, query, businessID)
}

// ListEmployees retrieves active EMPLOYEE contacts only.
func (r *PgxContactRepository) ListEmployees(ctx context.Context, businessID string) ([]domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE business_id = $1 AND is_active = TRUE AND type = 'EMPLOYEE'
		ORDER BY name;
	`
	return r.queryContacts(ctx, query, businessID)
}

func (r *PgxContactRepository) queryContacts(ctx context.Context, query string, businessID string) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts for business %s: %w", businessID, err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row for business %s: %w", businessID, err)
		}
		contacts = append(contacts, mapping.ToDomainContact(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows for business %s: %w", businessID, rows.Err())
	}
	return contacts, nil
}
