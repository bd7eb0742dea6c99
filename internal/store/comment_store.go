package store

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// ActiveForPost returns a post's visible comments in conversation order,
// oldest first.
func (s *CommentStore) ActiveForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Where("post_id = ? AND active = ?", postID, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountForPost counts a post's visible comments.
func (s *CommentStore) CountForPost(postID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Comment{}).
		Where("post_id = ? AND active = ?", postID, true).
		Count(&total).Error
	return total, err
}

// Create persists a comment built by the comment form.
func (s *CommentStore) Create(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

// SetActive toggles the soft-hide flag; the moderation entry point.
func (s *CommentStore) SetActive(id uint, active bool) error {
	res := s.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
