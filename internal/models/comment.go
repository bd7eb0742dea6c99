package models

import (
	"time"
)

type Comment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;index" json:"post_id"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	// Reader-supplied identity; commenting does not require an account.
	Name  string `gorm:"size:80;not null" json:"name"`
	Email string `gorm:"size:254;not null" json:"email"`
	Body  string `gorm:"type:text;not null" json:"body"`
	// Active soft-hides a comment without deleting it. Toggled by
	// moderation outside this application, never by readers. No column
	// default on purpose: with one, GORM drops a false value from the
	// INSERT and the row comes back active. The comment form sets it.
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
