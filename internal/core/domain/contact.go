package domain

import "github.com/shopspring/decimal"

// ContactType distinguishes employees (PAYE subjects) from customers/suppliers.
type ContactType string

const (
	ContactEmployee ContactType = "EMPLOYEE"
	ContactCustomer ContactType = "CUSTOMER"
	ContactSupplier ContactType = "SUPPLIER"
)

// Contact holds the statutory-relief inputs used by the PAYE calculator for
// employees. Amounts are monthly figures; annual computations scale them by 12.
type Contact struct {
	ContactID           string          `json:"contactID"`  // Primary Key (UUID)
	BusinessID          string          `json:"businessID"` // FK -> businesses.business_id
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Type                ContactType     `json:"type"`
	BasicSalary         decimal.Decimal `json:"basicSalary"`
	HousingAllowance    decimal.Decimal `json:"housingAllowance"`
	TransportAllowance  decimal.Decimal `json:"transportAllowance"`
	OtherAllowances     decimal.Decimal `json:"otherAllowances"`
	NHFContribution     decimal.Decimal `json:"nhfContribution"`
	PensionContribution decimal.Decimal `json:"pensionContribution"`
	LifeAssurance       decimal.Decimal `json:"lifeAssurance"`
	MortgageInterest    decimal.Decimal `json:"mortgageInterest"`
	RentPaid            decimal.Decimal `json:"rentPaid"`
	IsActive            bool            `json:"isActive"`
	AuditFields
}

// GrossSalary is the sum of basic salary and all allowances for one month.
func (c Contact) GrossSalary() decimal.Decimal {
	return c.BasicSalary.
		Add(c.HousingAllowance).
		Add(c.TransportAllowance).
		Add(c.OtherAllowances)
}
