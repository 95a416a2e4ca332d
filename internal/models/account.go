package models

import "github.com/shopspring/decimal"

// AccountType defines the fundamental accounting type of a chart account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	COGS      AccountType = "COGS"
)

// ChartAccount represents a chart of accounts row.
type ChartAccount struct {
	AccountID        string          `db:"account_id"`
	BusinessID       string          `db:"business_id"`
	Code             string          `db:"code"`
	Name             string          `db:"name"`
	AccountType      AccountType     `db:"account_type"`
	IsDisallowable   bool            `db:"is_disallowable"`
	IsNonTaxable     bool            `db:"is_non_taxable"`
	IsRevenue        bool            `db:"is_revenue"`
	IsRent           bool            `db:"is_rent"`
	IsDisposalProfit bool            `db:"is_disposal_profit"`
	IsDisposalLoss   bool            `db:"is_disposal_loss"`
	Balance          decimal.Decimal `db:"balance"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}
