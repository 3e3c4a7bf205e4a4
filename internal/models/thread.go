package models

import "time"

// Thread represents a top-level discussion post. Threads are never
// hard-deleted; IsDeleted hides them without breaking references.
type Thread struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	OwnerID   string    `gorm:"column:owner;size:50;not null;index" json:"owner"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
