package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem.
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:          d.ItemID,
		BusinessID:      d.BusinessID,
		SKU:             d.SKU,
		Name:            d.Name,
		CurrentQuantity: d.CurrentQuantity,
		CurrentCost:     d.CurrentCost,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem.
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:          m.ItemID,
		BusinessID:      m.BusinessID,
		SKU:             m.SKU,
		Name:            m.Name,
		CurrentQuantity: m.CurrentQuantity,
		CurrentCost:     m.CurrentCost,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInventoryMovement converts a domain movement to a model movement row.
func ToModelInventoryMovement(d domain.InventoryMovement) models.InventoryMovement {
	return models.InventoryMovement{
		MovementID:      d.MovementID,
		ItemID:          d.ItemID,
		TransactionID:   d.TransactionID,
		Type:            string(d.Type),
		Date:            d.Date,
		Quantity:        d.Quantity,
		UnitCost:        d.UnitCost,
		TotalCost:       d.TotalCost,
		RunningQuantity: d.RunningQuantity,
		RunningCost:     d.RunningCost,
		WeightedAvgCost: d.WeightedAvgCost,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainInventoryMovement converts a model movement row to a domain movement.
func ToDomainInventoryMovement(m models.InventoryMovement) domain.InventoryMovement {
	return domain.InventoryMovement{
		MovementID:      m.MovementID,
		ItemID:          m.ItemID,
		TransactionID:   m.TransactionID,
		Type:            domain.MovementType(m.Type),
		Date:            m.Date,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		TotalCost:       m.TotalCost,
		RunningQuantity: m.RunningQuantity,
		RunningCost:     m.RunningCost,
		WeightedAvgCost: m.WeightedAvgCost,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}
