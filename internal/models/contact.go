package models

import "github.com/shopspring/decimal"

// Contact represents a contact row. Salary and relief columns are monthly
// figures and only meaningful for EMPLOYEE contacts.
type Contact struct {
	ContactID           string          `db:"contact_id"`
	BusinessID          string          `db:"business_id"`
	Name                string          `db:"name"`
	Email               string          `db:"email"`
	Type                string          `db:"type"`
	BasicSalary         decimal.Decimal `db:"basic_salary"`
	HousingAllowance    decimal.Decimal `db:"housing_allowance"`
	TransportAllowance  decimal.Decimal `db:"transport_allowance"`
	OtherAllowances     decimal.Decimal `db:"other_allowances"`
	NHFContribution     decimal.Decimal `db:"nhf_contribution"`
	PensionContribution decimal.Decimal `db:"pension_contribution"`
	LifeAssurance       decimal.Decimal `db:"life_assurance"`
	MortgageInterest    decimal.Decimal `db:"mortgage_interest"`
	RentPaid            decimal.Decimal `db:"rent_paid"`
	IsActive            bool            `db:"is_active"`
	AuditFields
}
