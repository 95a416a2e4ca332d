package services

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// TaxSvcFacade defines the interface for year-end tax computations.
// CIT applies to companies, PIT to sole proprietors. Calling the wrong
// one for a business fails with apperrors.ErrWrongTaxRegime before any
// figures are computed.
type TaxSvcFacade interface {
	CITReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.CITReport, error)
	PITReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.PITReport, error)
}
