package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models an account in the shop.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidRole reports whether role is one of the known role constants.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
