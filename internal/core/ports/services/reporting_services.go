package services

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// ReportingSvcFacade defines the interface for period reports built by
// bucketing transactions against the chart of accounts tax flags.
type ReportingSvcFacade interface {
	AccountingProfit(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.AccountingProfitReport, error)
	VATReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.VATReport, error)
	WHTReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.WHTReport, error)
}
