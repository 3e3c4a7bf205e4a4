package models

import "time"

// Authentication is the server-side allow-list entry for a refresh token.
// A token absent from this table is treated as revoked.
type Authentication struct {
	Token     string    `gorm:"primaryKey;type:text" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Authentication) TableName() string {
	return "authentications"
}
