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

// InventoryService maintains inventory items under weighted-average costing.
// Every stock change goes through the repository's ApplyMovement so the
// movement line and the new item state land atomically.
type InventoryService struct {
	BaseService
	inventoryRepo   portsrepo.InventoryRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(ir portsrepo.InventoryRepository, tr portsrepo.TransactionRepository, authorizer portssvc.BusinessAuthorizerSvc) *InventoryService {
	return &InventoryService{
		BaseService:     BaseService{BusinessAuthorizer: authorizer},
		inventoryRepo:   ir,
		transactionRepo: tr,
	}
}

var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

// CreateItem creates an inventory item with zero stock.
func (s *InventoryService) CreateItem(ctx context.Context, businessID string, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemID:          uuid.NewString(),
		BusinessID:      businessID,
		SKU:             req.SKU,
		Name:            req.Name,
		CurrentQuantity: decimal.Zero,
		CurrentCost:     decimal.Zero,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("business_id", businessID), slog.String("sku", req.SKU))
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.LogInfo(ctx, "Inventory item created", slog.String("item_id", item.ItemID), slog.String("sku", item.SKU))
	return &item, nil
}

// GetItemByID retrieves one inventory item.
func (s *InventoryService) GetItemByID(ctx context.Context, businessID string, itemID string, userID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find inventory item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to get inventory item %s: %w", itemID, err)
	}
	if item.BusinessID != businessID {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

// ListItems retrieves all inventory items for a business.
func (s *InventoryService) ListItems(ctx context.Context, businessID string, userID string) ([]domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	items, err := s.inventoryRepo.ListItems(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list inventory items for business %s: %w", businessID, err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

// SetOpeningBalance seeds an item's initial stock. It only applies to items
// with no stock history yet.
func (s *InventoryService) SetOpeningBalance(ctx context.Context, businessID string, itemID string, req dto.OpeningBalanceRequest, userID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(ctx, businessID, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !item.CurrentQuantity.IsZero() || !item.CurrentCost.IsZero() {
		return nil, fmt.Errorf("%w: item %s already has stock history", apperrors.ErrValidation, itemID)
	}
	if !req.Quantity.IsPositive() || req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance needs a positive quantity and a non-negative unit cost", apperrors.ErrValidation)
	}

	result, err := taxcalc.ApplyPurchase(item.CurrentQuantity, item.CurrentCost, req.Quantity, req.UnitCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.CurrentQuantity = result.NewQuantity
	item.CurrentCost = result.WeightedAvgCost
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID

	movement := domain.InventoryMovement{
		MovementID:      uuid.NewString(),
		ItemID:          itemID,
		Type:            domain.MovementOpeningBalance,
		Date:            req.Date,
		Quantity:        req.Quantity,
		UnitCost:        req.UnitCost.Round(2),
		TotalCost:       result.TotalCost,
		RunningQuantity: result.NewQuantity,
		RunningCost:     result.TotalCost,
		WeightedAvgCost: result.WeightedAvgCost,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	if err := s.inventoryRepo.ApplyMovement(ctx, *item, movement); err != nil {
		s.LogError(ctx, err, "Failed to apply opening balance", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to set opening balance for item %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "Opening balance set", slog.String("item_id", itemID), slog.String("quantity", req.Quantity.String()))
	return item, nil
}

// RecordPurchase books a stock purchase, re-averages the unit cost and writes
// an INVENTORY_PURCHASE transaction on the given account.
func (s *InventoryService) RecordPurchase(ctx context.Context, businessID string, itemID string, req dto.InventoryPurchaseRequest, userID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(ctx, businessID, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() || req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: purchase needs a positive quantity and a non-negative unit cost", apperrors.ErrValidation)
	}

	result, err := taxcalc.ApplyPurchase(item.CurrentQuantity, item.CurrentCost, req.Quantity, req.UnitCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.CurrentQuantity = result.NewQuantity
	item.CurrentCost = result.WeightedAvgCost
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID

	purchaseCost := req.Quantity.Mul(req.UnitCost).Round(2)
	txnID := uuid.NewString()
	movement := domain.InventoryMovement{
		MovementID:      uuid.NewString(),
		ItemID:          itemID,
		TransactionID:   txnID,
		Type:            domain.MovementPurchase,
		Date:            req.Date,
		Quantity:        req.Quantity,
		UnitCost:        req.UnitCost.Round(2),
		TotalCost:       purchaseCost,
		RunningQuantity: result.NewQuantity,
		RunningCost:     result.NewQuantity.Mul(result.WeightedAvgCost).Round(2),
		WeightedAvgCost: result.WeightedAvgCost,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	if err := s.inventoryRepo.ApplyMovement(ctx, *item, movement); err != nil {
		s.LogError(ctx, err, "Failed to apply purchase movement", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to record purchase for item %s: %w", itemID, err)
	}

	txn := domain.Transaction{
		TransactionID: txnID,
		BusinessID:    businessID,
		AccountID:     req.AccountID,
		Type:          domain.InventoryPurchase,
		Date:          req.Date,
		Amount:        purchaseCost,
		Description:   fmt.Sprintf("Purchase of %s x %s", req.Quantity.String(), item.Name),
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to record purchase transaction", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to record purchase transaction for item %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "Inventory purchase recorded", slog.String("item_id", itemID), slog.String("quantity", req.Quantity.String()))
	return item, nil
}

// RecordSale books a stock sale. Revenue is the sale price; cost of goods sold
// comes from the weighted average cost, which the sale leaves unchanged.
// Selling more than is on hand fails with ErrInsufficientInventory.
func (s *InventoryService) RecordSale(ctx context.Context, businessID string, itemID string, req dto.InventorySaleRequest, userID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleMember); err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(ctx, businessID, itemID, userID)
	if err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() || req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: sale needs a positive quantity and a non-negative unit price", apperrors.ErrValidation)
	}

	result, err := taxcalc.ApplySale(item.CurrentQuantity, item.CurrentCost, req.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.CurrentQuantity = result.NewQuantity
	item.LastUpdatedAt = now
	item.LastUpdatedBy = userID

	revenue := req.Quantity.Mul(req.UnitPrice).Round(2)
	saleTxnID := uuid.NewString()
	movement := domain.InventoryMovement{
		MovementID:      uuid.NewString(),
		ItemID:          itemID,
		TransactionID:   saleTxnID,
		Type:            domain.MovementSale,
		Date:            req.Date,
		Quantity:        req.Quantity.Neg(),
		UnitCost:        result.UnitCost,
		TotalCost:       result.COGS,
		RunningQuantity: result.NewQuantity,
		RunningCost:     result.RunningCost,
		WeightedAvgCost: result.UnitCost,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	if err := s.inventoryRepo.ApplyMovement(ctx, *item, movement); err != nil {
		s.LogError(ctx, err, "Failed to apply sale movement", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to record sale for item %s: %w", itemID, err)
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	saleTxn := domain.Transaction{
		TransactionID: saleTxnID,
		BusinessID:    businessID,
		AccountID:     req.RevenueAccountID,
		Type:          domain.InventorySale,
		Date:          req.Date,
		Amount:        revenue,
		Description:   fmt.Sprintf("Sale of %s x %s", req.Quantity.String(), item.Name),
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		AuditFields:   audit,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, saleTxn); err != nil {
		s.LogError(ctx, err, "Failed to record sale transaction", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to record sale transaction for item %s: %w", itemID, err)
	}

	cogsTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		AccountID:     req.COGSAccountID,
		Type:          domain.Payment,
		Date:          req.Date,
		Amount:        result.COGS,
		Description:   fmt.Sprintf("Cost of goods sold for %s", item.Name),
		VATAmount:     decimal.Zero,
		WHTAmount:     decimal.Zero,
		AuditFields:   audit,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, cogsTxn); err != nil {
		s.LogError(ctx, err, "Failed to record COGS transaction", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to record COGS transaction for item %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "Inventory sale recorded",
		slog.String("item_id", itemID),
		slog.String("revenue", revenue.String()),
		slog.String("cogs", result.COGS.String()))
	return item, nil
}

// ListMovements retrieves the append-only movement history for an item.
func (s *InventoryService) ListMovements(ctx context.Context, businessID string, itemID string, userID string) ([]domain.InventoryMovement, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	// Ownership check before exposing history
	if _, err := s.GetItemByID(ctx, businessID, itemID, userID); err != nil {
		return nil, err
	}

	movements, err := s.inventoryRepo.ListMovements(ctx, itemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory movements", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to list movements for item %s: %w", itemID, err)
	}
	if movements == nil {
		return []domain.InventoryMovement{}, nil
	}
	return movements, nil
}
