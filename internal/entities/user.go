package entities

import "github.com/aarondl/null/v8"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleTechnician UserRole = "technician"
	RoleEmployee   UserRole = "employee"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	AvatarURL string      `json:"avatarUrl" db:"avatar_url"`
	Role      UserRole    `json:"role" db:"role"`
	TeamID    null.String `json:"teamId,omitempty" db:"team_id"`
	// Empty for seeded development users; those accept any password.
	PasswordHash string `json:"-" db:"password_hash"`
}
