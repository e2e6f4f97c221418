package models

import "time"

// AuditRecord is one row per authenticated mutating request.
type AuditRecord struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id"`
	RequestID string    `gorm:"size:36" json:"request_id"`
	Method    string    `gorm:"size:16" json:"method"`
	Path      string    `gorm:"size:255" json:"path"`
	Action    string    `gorm:"size:2048" json:"action"`
	IPAddress string    `gorm:"size:64" json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
