package models

import "time"

// Comment represents a comment on a thread. When ReplyCommentID is set the
// comment is a reply to another comment; replies nest exactly one level.
type Comment struct {
	ID             string    `gorm:"primaryKey;size:50" json:"id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	OwnerID        string    `gorm:"column:owner;size:50;not null;index" json:"owner"`
	Owner          User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	ThreadID       string    `gorm:"size:50;not null;index" json:"thread_id"`
	Thread         Thread    `gorm:"foreignKey:ThreadID" json:"-"`
	ReplyCommentID *string   `gorm:"size:50;index" json:"reply_comment_id,omitempty"`
	Likes          int       `gorm:"not null;default:0" json:"likes"`
	IsDeleted      bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "thread_comments"
}
