package pgsql

import (
	"context"
	"database/sql"
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

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

const inventoryItemColumns = `item_id, business_id, sku, name, current_quantity, current_cost,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.BusinessID,
		&m.SKU,
		&m.Name,
		&m.CurrentQuantity,
		&m.CurrentCost,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveItem inserts a new inventory item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)

	query := `
		INSERT INTO inventory_items (` + inventoryItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.BusinessID,
		m.SKU,
		m.Name,
		m.CurrentQuantity,
		m.CurrentCost,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: SKU %s already exists for business %s", apperrors.ErrDuplicate, m.SKU, m.BusinessID)
		}
		return fmt.Errorf("failed to save inventory item %s: %w", m.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves an inventory item by its ID.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE item_id = $1;`

	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}

	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// ListItems retrieves all active inventory items for a business.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, businessID string) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY sku;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items for business %s: %w", businessID, err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row for business %s: %w", businessID, err)
		}
		items = append(items, mapping.ToDomainInventoryItem(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory item rows for business %s: %w", businessID, rows.Err())
	}
	return items, nil
}

// ApplyMovement appends the movement row and replaces the item's running
// quantity and cost in a single database transaction, so the item state and its
// history can never drift apart.
func (r *PgxInventoryRepository) ApplyMovement(ctx context.Context, item domain.InventoryItem, movement domain.InventoryMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	mItem := mapping.ToModelInventoryItem(item)
	updateQuery := `
		UPDATE inventory_items
		SET current_quantity = $2, current_cost = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		mItem.ItemID,
		mItem.CurrentQuantity,
		mItem.CurrentCost,
		mItem.LastUpdatedAt,
		mItem.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", mItem.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	mMove := mapping.ToModelInventoryMovement(movement)
	insertQuery := `
		INSERT INTO inventory_movements (movement_id, item_id, transaction_id, type, date, quantity,
			unit_cost, total_cost, running_quantity, running_cost, weighted_avg_cost, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	var txnID sql.NullString
	if mMove.TransactionID != "" {
		txnID = sql.NullString{String: mMove.TransactionID, Valid: true}
	}
	_, err = tx.Exec(ctx, insertQuery,
		mMove.MovementID,
		mMove.ItemID,
		txnID,
		mMove.Type,
		mMove.Date,
		mMove.Quantity,
		mMove.UnitCost,
		mMove.TotalCost,
		mMove.RunningQuantity,
		mMove.RunningCost,
		mMove.WeightedAvgCost,
		mMove.CreatedAt,
		mMove.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save inventory movement %s: %w", mMove.MovementID, err)
	}

	return r.Commit(ctx, tx)
}

// ListMovements retrieves the full movement history for an item, oldest first.
func (r *PgxInventoryRepository) ListMovements(ctx context.Context, itemID string) ([]domain.InventoryMovement, error) {
	query := `
		SELECT movement_id, item_id, transaction_id, type, date, quantity,
			unit_cost, total_cost, running_quantity, running_cost, weighted_avg_cost, created_at, created_by
		FROM inventory_movements
		WHERE item_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory movements for item %s: %w", itemID, err)
	}
	defer rows.Close()

	movements := []domain.InventoryMovement{}
	for rows.Next() {
		var m models.InventoryMovement
		var txnID sql.NullString
		err := rows.Scan(
			&m.MovementID,
			&m.ItemID,
			&txnID,
			&m.Type,
			&m.Date,
			&m.Quantity,
			&m.UnitCost,
			&m.TotalCost,
			&m.RunningQuantity,
			&m.RunningCost,
			&m.WeightedAvgCost,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory movement row for item %s: %w", itemID, err)
		}
		m.TransactionID = txnID.String
		movements = append(movements, mapping.ToDomainInventoryMovement(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory movement rows for item %s: %w", itemID, rows.Err())
	}
	return movements, nil
}
