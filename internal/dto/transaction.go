package dto

import (
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// VAT and WHT are derived from the business settings at creation time;
// ApplyVAT/ApplyWHT opt the transaction into each tax, and WHTMode says
// whether Amount is gross or net of withholding.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	ContactID   string                 `json:"contactID"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=RECEIPT PAYMENT SALARY"`
	Date        time.Time              `json:"date" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	ApplyVAT    bool                   `json:"applyVat"`
	VATRate     *decimal.Decimal       `json:"vatRate"` // Overrides the business default when set
	ApplyWHT    bool                   `json:"applyWht"`
	WHTRate     *decimal.Decimal       `json:"whtRate"` // Overrides the business default when set
	WHTMode     domain.WHTMode         `json:"whtMode"` // GROSS when empty
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}
