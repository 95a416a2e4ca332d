package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a ledger transaction row. VAT and WHT columns are
// written at insert time and never updated.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	BusinessID    string          `db:"business_id"`
	AccountID     string          `db:"account_id"`
	ContactID     string          `db:"contact_id"`
	FixedAssetID  string          `db:"fixed_asset_id"`
	Type          string          `db:"type"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	VATAmount     decimal.Decimal `db:"vat_amount"`
	WHTAmount     decimal.Decimal `db:"wht_amount"`
	WHTType       string          `db:"wht_type"`
	IsSalary      bool            `db:"is_salary"`
	AuditFields
}
