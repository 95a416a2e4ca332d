package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the kind of ledger event a transaction records.
type TransactionType string

const (
	Receipt           TransactionType = "RECEIPT"
	Payment           TransactionType = "PAYMENT"
	InventoryPurchase TransactionType = "INVENTORY_PURCHASE"
	InventorySale     TransactionType = "INVENTORY_SALE"
	FixedPurchase     TransactionType = "FIXED_PURCHASE"
	FixedDisposal     TransactionType = "FIXED_DISPOSAL"
	Depreciation      TransactionType = "DEPRECIATION"
	Salary            TransactionType = "SALARY"
)

// IsInflow reports whether the transaction type represents money coming in.
// Inflows accumulate VAT collected and WHT receivable; outflows the reverse.
func (t TransactionType) IsInflow() bool {
	return t == Receipt || t == InventorySale
}

// WHTType indicates which side of withholding tax a transaction sits on.
type WHTType string

const (
	WHTReceivable WHTType = "RECEIVABLE" // Withheld by the customer, recoverable against CIT
	WHTPayable    WHTType = "PAYABLE"    // Withheld from a supplier, owed to the tax authority
)

// WHTMode selects how a withholding tax amount is derived from a transaction amount.
type WHTMode string

const (
	WHTGross WHTMode = "GROSS" // Amount is pre-tax; WHT is taken out of it
	WHTNet   WHTMode = "NET"   // Amount is post-tax; gross must be backed out
)

// Transaction is a single dated ledger line, classified by its chart account.
// VAT and WHT amounts are derived once at creation time and never recomputed;
// the tax engine treats the row as read-only thereafter.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	BusinessID    string          `json:"businessID"`    // FK -> businesses.business_id
	AccountID     string          `json:"accountID"`     // FK -> chart_accounts.account_id
	ContactID     string          `json:"contactID"`     // Optional FK -> contacts.contact_id
	FixedAssetID  string          `json:"fixedAssetID"`  // Optional FK, set for fixed asset events
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	WHTAmount     decimal.Decimal `json:"whtAmount"`
	WHTType       WHTType         `json:"whtType,omitempty"`
	IsSalary      bool            `json:"isSalary"`
	AuditFields
}
