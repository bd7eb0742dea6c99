package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status controls a post's public visibility.
type Status string

const (
	StatusDraft     Status = "DF"
	StatusPublished Status = "PB"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Label returns the human-readable form used in templates.
func (s Status) Label() string {
	if s == StatusPublished {
		return "Published"
	}
	return "Draft"
}

type Post struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:250;not null" json:"title"`
	Slug  string `gorm:"size:250;not null;uniqueIndex:idx_posts_slug_publish_day" json:"slug"`
	// PublishDay mirrors Publish truncated to the date, so the "slug is
	// unique within its publish date" rule can live in a composite index.
	PublishDay string    `gorm:"size:10;not null;uniqueIndex:idx_posts_slug_publish_day" json:"-"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Publish    time.Time `gorm:"index:idx_posts_publish,sort:desc" json:"publish"`
	Status     Status    `gorm:"size:2;not null;default:'DF';index" json:"status"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments   []Comment `gorm:"constraint:OnDelete:CASCADE;" json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeSave defaults Publish to now on first save, keeps PublishDay in
// step with Publish, and rejects status values outside the closed set.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if p.Publish.IsZero() {
		p.Publish = time.Now()
	}
	p.PublishDay = p.Publish.Format("2006-01-02")
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if !p.Status.Valid() {
		return fmt.Errorf("post: invalid status %q", p.Status)
	}
	return nil
}
