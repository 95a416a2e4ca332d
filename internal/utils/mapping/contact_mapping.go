package mapping

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/models"
)

// ToModelContact converts a domain Contact to a model Contact.
func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:           d.ContactID,
		BusinessID:          d.BusinessID,
		Name:                d.Name,
		Email:               d.Email,
		Type:                string(d.Type),
		BasicSalary:         d.BasicSalary,
		HousingAllowance:    d.HousingAllowance,
		TransportAllowance:  d.TransportAllowance,
		OtherAllowances:     d.OtherAllowances,
		NHFContribution:     d.NHFContribution,
		PensionContribution: d.PensionContribution,
		LifeAssurance:       d.LifeAssurance,
		MortgageInterest:    d.MortgageInterest,
		RentPaid:            d.RentPaid,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContact converts a model Contact to a domain Contact.
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:           m.ContactID,
		BusinessID:          m.BusinessID,
		Name:                m.Name,
		Email:               m.Email,
		Type:                domain.ContactType(m.Type),
		BasicSalary:         m.BasicSalary,
		HousingAllowance:    m.HousingAllowance,
		TransportAllowance:  m.TransportAllowance,
		OtherAllowances:     m.OtherAllowances,
		NHFContribution:     m.NHFContribution,
		PensionContribution: m.PensionContribution,
		LifeAssurance:       m.LifeAssurance,
		MortgageInterest:    m.MortgageInterest,
		RentPaid:            m.RentPaid,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContactSlice converts a slice of model Contacts.
func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}
