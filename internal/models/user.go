package models

import "time"

// Role is the fixed access level of a user. It never changes after creation.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent:
		return true
	}
	return false
}

// CanActForOthers reports whether the role may read or write another
// user's records. Agents always operate on their own data.
func (r Role) CanActForOthers() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents an office member: the admin, managers, or agents.
// Users are deactivated via IsActive rather than deleted; a hard delete
// cascades to every period-scoped record the user owns.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:128;not null" json:"full_name"`
	Role         Role      `gorm:"size:16;index;not null" json:"role"`
	// No column default: gorm would skip an explicit false on insert
	// and the row would silently come back active.
	IsActive bool `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
