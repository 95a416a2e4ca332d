package services

import (
	"context"
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/nairabooks/naira_books_app/internal/dto"
)

// PayrollSvcFacade defines the interface for contacts and PAYE
// computations over employee salary structures.
type PayrollSvcFacade interface {
	CreateContact(ctx context.Context, businessID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error)
	GetContactByID(ctx context.Context, businessID string, contactID string, userID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, businessID string, userID string) ([]domain.Contact, error)
	ListEmployees(ctx context.Context, businessID string, userID string) ([]domain.Contact, error)
	// EmployeePAYE computes PAYE for one employee. When annual is false the
	// salary is annualized, taxed through the bands and the result divided
	// back to a monthly figure.
	EmployeePAYE(ctx context.Context, businessID string, contactID string, annual bool, userID string) (*domain.PAYEResult, error)
	// PAYEReport aggregates PAYE across all employees with salary
	// transactions in the period.
	PAYEReport(ctx context.Context, businessID string, from time.Time, to time.Time, userID string) (*domain.PAYEReport, error)
}
