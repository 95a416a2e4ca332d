package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessType gates which income tax regime applies.
type BusinessType string

const (
	// Company businesses are assessed under CIT.
	Company BusinessType = "COMPANY"
	// SoleProprietor businesses are assessed under PIT via the PAYE bands.
	SoleProprietor BusinessType = "SOLE_PROPRIETOR"
)

// Business is a tenant. All ledger data hangs off a business.
type Business struct {
	BusinessID   string       `json:"businessID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	BusinessType BusinessType `json:"businessType"`
	RCNumber     string       `json:"rcNumber"` // CAC registration number
	TIN          string       `json:"tin"`      // Tax identification number
	IsActive     bool         `json:"isActive"`
	AuditFields
}

// BusinessSettings carries per-business tax rates, toggles, and the carry-forward
// balances. The carry-forwards are cumulative state: each period's tax run reads
// them and returns updated values for the caller to persist alongside the report.
type BusinessSettings struct {
	SettingsID                  string          `json:"settingsID"` // Primary Key (UUID)
	BusinessID                  string          `json:"businessID"` // Unique FK -> businesses.business_id
	DefaultVATRate              decimal.Decimal `json:"defaultVatRate"`
	DefaultWHTRate              decimal.Decimal `json:"defaultWhtRate"`
	CITRate                     decimal.Decimal `json:"citRate"`
	DefaultDepreciationRate     decimal.Decimal `json:"defaultDepreciationRate"`
	DefaultCapitalAllowanceRate decimal.Decimal `json:"defaultCapitalAllowanceRate"`
	LossReliefBf                decimal.Decimal `json:"lossReliefBf"`
	CapitalAllowanceBf          decimal.Decimal `json:"capitalAllowanceBf"`
	ChargeableLossBf            decimal.Decimal `json:"chargeableLossBf"`
	VATEnabled                  bool            `json:"vatEnabled"`
	WHTEnabled                  bool            `json:"whtEnabled"`
	CITEnabled                  bool            `json:"citEnabled"`
	PITEnabled                  bool            `json:"pitEnabled"`
	PAYEEnabled                 bool            `json:"payeEnabled"`
	FinancialYearStart          *time.Time      `json:"financialYearStart,omitempty"`
	FinancialYearEnd            *time.Time      `json:"financialYearEnd,omitempty"`
	AuditFields
}

// CarryForwards is the versioned carry-forward state returned by a period's tax
// computation for the caller to commit atomically with the period itself.
type CarryForwards struct {
	LossReliefBf       decimal.Decimal `json:"lossReliefBf"`
	CapitalAllowanceBf decimal.Decimal `json:"capitalAllowanceBf"`
	ChargeableLossBf   decimal.Decimal `json:"chargeableLossBf"`
	WHTReceivableBf    decimal.Decimal `json:"whtReceivableBf"`
}
