package repositories

import (
	"context"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
)

// ContactRepository defines persistence operations for contacts and employees.
type ContactRepository interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, businessID string) ([]domain.Contact, error)
	// ListEmployees returns active contacts of type EMPLOYEE only.
	ListEmployees(ctx context.Context, businessID string) ([]domain.Contact, error)
}
