package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleHost     UserRole = "host"
	RoleGuide    UserRole = "guide"
	RoleCustomer UserRole = "customer"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
