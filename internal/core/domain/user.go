package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

// BusinessUserRole defines the roles a user can hold within a business.
type BusinessUserRole string

const (
	RoleOwner    BusinessUserRole = "OWNER"
	RoleMember   BusinessUserRole = "MEMBER"
	RoleReadOnly BusinessUserRole = "READONLY"
)

// BusinessUser represents the membership of a User in a Business.
type BusinessUser struct {
	UserID     string           `json:"userID"`     // FK -> users.user_id
	BusinessID string           `json:"businessID"` // FK -> businesses.business_id
	Role       BusinessUserRole `json:"role"`
	JoinedAt   time.Time        `json:"joinedAt"`
}
