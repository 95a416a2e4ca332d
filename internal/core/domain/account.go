package domain

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

// ChartAccount classifies transactions for aggregation and tax treatment.
// The type decides which profit bucket a transaction lands in; the flags mark
// tax-relevant subsets (disallowable expenses, non-taxable income, disposal accounts).
type ChartAccount struct {
	AccountID        string          `json:"accountID"`  // Primary Key (UUID)
	BusinessID       string          `json:"businessID"` // FK -> businesses.business_id
	Code             string          `json:"code"`       // Unique per business
	Name             string          `json:"name"`
	AccountType      AccountType     `json:"accountType"`
	IsDisallowable   bool            `json:"isDisallowable"`   // Expense added back for tax
	IsNonTaxable     bool            `json:"isNonTaxable"`     // Revenue deducted for tax
	IsRevenue        bool            `json:"isRevenue"`        // Counts toward turnover
	IsRent           bool            `json:"isRent"`           // Rent expense, drives rent relief data
	IsDisposalProfit bool            `json:"isDisposalProfit"` // Receives FIXED disposal gains
	IsDisposalLoss   bool            `json:"isDisposalLoss"`   // Receives FIXED disposal losses
	Balance          decimal.Decimal `json:"balance"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}
