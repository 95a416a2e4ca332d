package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		AccountID:     d.AccountID,
		ContactID:     d.ContactID,
		FixedAssetID:  d.FixedAssetID,
		Type:          string(d.Type),
		Date:          d.Date,
		Amount:        d.Amount,
		Description:   d.Description,
		VATAmount:     d.VATAmount,
		WHTAmount:     d.WHTAmount,
		WHTType:       string(d.WHTType),
		IsSalary:      d.IsSalary,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		AccountID:     m.AccountID,
		ContactID:     m.ContactID,
		FixedAssetID:  m.FixedAssetID,
		Type:          domain.TransactionType(m.Type),
		Date:          m.Date,
		Amount:        m.Amount,
		Description:   m.Description,
		VATAmount:     m.VATAmount,
		WHTAmount:     m.WHTAmount,
		WHTType:       domain.WHTType(m.WHTType),
		IsSalary:      m.IsSalary,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
