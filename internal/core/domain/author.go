package domain

import "time"

// Role names known to the system. "User" is granted automatically on
// registration; "Admin" unlocks role assignment and account deletion.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Author models a registered principal who can own news items.
type Author struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
