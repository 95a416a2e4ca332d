package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business represents a tenant row.
type Business struct {
	BusinessID   string `db:"business_id"`
	Name         string `db:"name"`
	BusinessType string `db:"business_type"`
	RCNumber     string `db:"rc_number"`
	TIN          string `db:"tin"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// BusinessSettings represents the per-business tax settings row, including the
// carry-forward balances updated at each accepted year end.
type BusinessSettings struct {
	SettingsID                  string          `db:"settings_id"`
	BusinessID                  string          `db:"business_id"`
	DefaultVATRate              decimal.Decimal `db:"default_vat_rate"`
	DefaultWHTRate              decimal.Decimal `db:"default_wht_rate"`
	CITRate                     decimal.Decimal `db:"cit_rate"`
	DefaultDepreciationRate     decimal.Decimal `db:"default_depreciation_rate"`
	DefaultCapitalAllowanceRate decimal.Decimal `db:"default_capital_allowance_rate"`
	LossReliefBf                decimal.Decimal `db:"loss_relief_bf"`
	CapitalAllowanceBf          decimal.Decimal `db:"capital_allowance_bf"`
	ChargeableLossBf            decimal.Decimal `db:"chargeable_loss_bf"`
	VATEnabled                  bool            `db:"vat_enabled"`
	WHTEnabled                  bool            `db:"wht_enabled"`
	CITEnabled                  bool            `db:"cit_enabled"`
	PITEnabled                  bool            `db:"pit_enabled"`
	PAYEEnabled                 bool            `db:"paye_enabled"`
	FinancialYearStart          *time.Time      `db:"financial_year_start"`
	FinancialYearEnd            *time.Time      `db:"financial_year_end"`
	AuditFields
}

// BusinessUser represents the membership of a user in a business.
type BusinessUser struct {
	UserID     string    `db:"user_id"`
	BusinessID string    `db:"business_id"`
	Role       string    `db:"role"`
	JoinedAt   time.Time `db:"joined_at"`
}
