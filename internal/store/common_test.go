package store

import (
	"fmt"
	"testing"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, g.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(g))
	return g
}

func newAuthor(t *testing.T, g *gorm.DB) models.User {
	t.Helper()

	author := models.User{
		Username: "alice",
		Email:    fmt.Sprintf("alice-%d@example.com", time.Now().UnixNano()),
		Password: "x",
	}
	require.NoError(t, g.Create(&author).Error)
	return author
}

func newPost(t *testing.T, g *gorm.DB, authorID uint, slug string, status models.Status, publish time.Time) models.Post {
	t.Helper()

	post := models.Post{
		Title:    "Post " + slug,
		Slug:     slug,
		Body:     "body of " + slug,
		Publish:  publish,
		Status:   status,
		AuthorID: authorID,
	}
	require.NoError(t, g.Create(&post).Error)
	return post
}
