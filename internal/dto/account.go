package dto

import (
	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart account.
// The tax flags decide how transactions on the account are bucketed when
// profit and adjustment reports are built.
type CreateAccountRequest struct {
	Code             string             `json:"code" binding:"required"`
	Name             string             `json:"name" binding:"required"`
	AccountType      domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE COGS"`
	IsDisallowable   bool               `json:"isDisallowable"`
	IsNonTaxable     bool               `json:"isNonTaxable"`
	IsRevenue        bool               `json:"isRevenue"`
	IsRent           bool               `json:"isRent"`
	IsDisposalProfit bool               `json:"isDisposalProfit"`
	IsDisposalLoss   bool               `json:"isDisposalLoss"`
}

// ListAccountsResponse wraps the list of chart accounts.
type ListAccountsResponse struct {
	Accounts []domain.ChartAccount `json:"accounts"`
}
