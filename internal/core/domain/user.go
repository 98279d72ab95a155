package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// User models a registered account. The first account ever created is given
// RoleAdmin; every later account is a reader.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether u may manage posts. A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
