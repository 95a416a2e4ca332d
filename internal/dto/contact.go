package dto

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContactRequest defines the data needed to create a contact.
// Salary and relief fields only matter for EMPLOYEE contacts and are
// monthly figures.
type CreateContactRequest struct {
	Name                string             `json:"name" binding:"required"`
	Email               string             `json:"email" binding:"omitempty,email"`
	Type                domain.ContactType `json:"type" binding:"required,oneof=EMPLOYEE CUSTOMER SUPPLIER"`
	BasicSalary         decimal.Decimal    `json:"basicSalary"`
	HousingAllowance    decimal.Decimal    `json:"housingAllowance"`
	TransportAllowance  decimal.Decimal    `json:"transportAllowance"`
	OtherAllowances     decimal.Decimal    `json:"otherAllowances"`
	NHFContribution     decimal.Decimal    `json:"nhfContribution"`
	PensionContribution decimal.Decimal    `json:"pensionContribution"`
	LifeAssurance       decimal.Decimal    `json:"lifeAssurance"`
	MortgageInterest    decimal.Decimal    `json:"mortgageInterest"`
	RentPaid            decimal.Decimal    `json:"rentPaid"`
}

// ListContactsResponse wraps the list of contacts.
type ListContactsResponse struct {
	Contacts []domain.Contact `json:"contacts"`
}
