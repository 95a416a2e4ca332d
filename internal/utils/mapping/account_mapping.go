package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelChartAccount converts a domain ChartAccount to a model ChartAccount.
func ToModelChartAccount(d domain.ChartAccount) models.ChartAccount {
	return models.ChartAccount{
		AccountID:        d.AccountID,
		BusinessID:       d.BusinessID,
		Code:             d.Code,
		Name:             d.Name,
		AccountType:      models.AccountType(d.AccountType),
		IsDisallowable:   d.IsDisallowable,
		IsNonTaxable:     d.IsNonTaxable,
		IsRevenue:        d.IsRevenue,
		IsRent:           d.IsRent,
		IsDisposalProfit: d.IsDisposalProfit,
		IsDisposalLoss:   d.IsDisposalLoss,
		Balance:          d.Balance,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartAccount converts a model ChartAccount to a domain ChartAccount.
func ToDomainChartAccount(m models.ChartAccount) domain.ChartAccount {
	return domain.ChartAccount{
		AccountID:        m.AccountID,
		BusinessID:       m.BusinessID,
		Code:             m.Code,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		IsDisallowable:   m.IsDisallowable,
		IsNonTaxable:     m.IsNonTaxable,
		IsRevenue:        m.IsRevenue,
		IsRent:           m.IsRent,
		IsDisposalProfit: m.IsDisposalProfit,
		IsDisposalLoss:   m.IsDisposalLoss,
		Balance:          m.Balance,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
