package store

import (
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned whenever a public lookup matches no published
// post. Unknown ids and drafts are deliberately indistinguishable.
var ErrNotFound = errors.New("post not found")

// PostStore is the only sanctioned read path to post data. Public
// queries all compose on the published base query; nothing outside this
// package re-states the status filter.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// published is the base query behind every public accessor: only
// published rows, newest publish first.
func (s *PostStore) published() *gorm.DB {
	return s.db.Model(&models.Post{}).
		Where("status = ?", models.StatusPublished).
		Order("publish DESC")
}

// ListPublished returns one page of published posts plus the total
// published count for pagination. page is 1-based.
func (s *PostStore) ListPublished(page, perPage int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.published().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.published().
		Preload("Author").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// PublishedByAuthor returns the author's published posts, newest first.
func (s *PostStore) PublishedByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.published().Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

// GetPublished looks up a single post by id and published status in one
// query. Both "no such row" and "row exists but is a draft" come back as
// ErrNotFound so callers cannot probe for drafts.
func (s *PostStore) GetPublished(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").
		Where("id = ? AND status = ?", id, models.StatusPublished).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CountPublished returns the cardinality of the published view.
func (s *PostStore) CountPublished() (int64, error) {
	var total int64
	err := s.published().Count(&total).Error
	return total, err
}

// LatestPublished returns the n most recently published posts. n <= 0
// yields an empty slice.
func (s *PostStore) LatestPublished(n int) ([]models.Post, error) {
	if n <= 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := s.published().Limit(n).Find(&posts).Error
	return posts, err
}

// All returns every post regardless of status, for administrative use.
func (s *PostStore) All() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("publish DESC").Find(&posts).Error
	return posts, err
}

// Create persists a new post. Publish and PublishDay default in the
// model hook; status defaults to draft.
func (s *PostStore) Create(post *models.Post) error {
	return s.db.Create(post).Error
}

// SetPublished flips a draft to published. The publish timestamp is left
// alone: it is the editorial date, not the moment of the transition.
func (s *PostStore) SetPublished(id uint) error {
	res := s.db.Model(&models.Post{}).
		Where("id = ?", id).
		Update("status", models.StatusPublished)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes a post; owned comments go with it via the foreign
// key cascade.
func (s *PostStore) Delete(id uint) error {
	return s.db.Unscoped().Delete(&models.Post{}, id).Error
}
