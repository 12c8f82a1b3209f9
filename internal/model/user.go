package model

import "time"

// User represents an authentication identity (buyer or admin).
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role is the closed set of account roles.
type Role string

// Roles.
const (
	RoleAdmin     Role = "admin"
	RoleCollector Role = "collector"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleCollector
}
