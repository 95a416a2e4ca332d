package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business.
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		BusinessType: string(d.BusinessType),
		RCNumber:     d.RCNumber,
		TIN:          d.TIN,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business.
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		BusinessType: domain.BusinessType(m.BusinessType),
		RCNumber:     m.RCNumber,
		TIN:          m.TIN,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBusinessSettings converts domain settings to a model settings row.
func ToModelBusinessSettings(d domain.BusinessSettings) models.BusinessSettings {
	return models.BusinessSettings{
		SettingsID:                  d.SettingsID,
		BusinessID:                  d.BusinessID,
		DefaultVATRate:              d.DefaultVATRate,
		DefaultWHTRate:              d.DefaultWHTRate,
		CITRate:                     d.CITRate,
		DefaultDepreciationRate:     d.DefaultDepreciationRate,
		DefaultCapitalAllowanceRate: d.DefaultCapitalAllowanceRate,
		LossReliefBf:                d.LossReliefBf,
		CapitalAllowanceBf:          d.CapitalAllowanceBf,
		ChargeableLossBf:            d.ChargeableLossBf,
		VATEnabled:                  d.VATEnabled,
		WHTEnabled:                  d.WHTEnabled,
		CITEnabled:                  d.CITEnabled,
		PITEnabled:                  d.PITEnabled,
		PAYEEnabled:                 d.PAYEEnabled,
		FinancialYearStart:          d.FinancialYearStart,
		FinancialYearEnd:            d.FinancialYearEnd,
		AuditFields:                 ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusinessSettings converts a model settings row to domain settings.
func ToDomainBusinessSettings(m models.BusinessSettings) domain.BusinessSettings {
	return domain.BusinessSettings{
		SettingsID:                  m.SettingsID,
		BusinessID:                  m.BusinessID,
		DefaultVATRate:              m.DefaultVATRate,
		DefaultWHTRate:              m.DefaultWHTRate,
		CITRate:                     m.CITRate,
		DefaultDepreciationRate:     m.DefaultDepreciationRate,
		DefaultCapitalAllowanceRate: m.DefaultCapitalAllowanceRate,
		LossReliefBf:                m.LossReliefBf,
		CapitalAllowanceBf:          m.CapitalAllowanceBf,
		ChargeableLossBf:            m.ChargeableLossBf,
		VATEnabled:                  m.VATEnabled,
		WHTEnabled:                  m.WHTEnabled,
		CITEnabled:                  m.CITEnabled,
		PITEnabled:                  m.PITEnabled,
		PAYEEnabled:                 m.PAYEEnabled,
		FinancialYearStart:          m.FinancialYearStart,
		FinancialYearEnd:            m.FinancialYearEnd,
		AuditFields:                 ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBusinessUser converts a domain membership to a model membership row.
func ToModelBusinessUser(d domain.BusinessUser) models.BusinessUser {
	return models.BusinessUser{
		UserID:     d.UserID,
		BusinessID: d.BusinessID,
		Role:       string(d.Role),
		JoinedAt:   d.JoinedAt,
	}
}

// ToDomainBusinessUser converts a model membership row to a domain membership.
func ToDomainBusinessUser(m models.BusinessUser) domain.BusinessUser {
	return domain.BusinessUser{
		UserID:     m.UserID,
		BusinessID: m.BusinessID,
		Role:       domain.BusinessUserRole(m.Role),
		JoinedAt:   m.JoinedAt,
	}
}
