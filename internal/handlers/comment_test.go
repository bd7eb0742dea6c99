package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentPersistsAndRedirects(t *testing.T) {
	app := newTestApp(t)
	post := app.createPost(t, "one", models.StatusPublished, time.Now())

	w := app.postForm(t, fmt.Sprintf("/posts/%d/comment", post.ID), url.Values{
		"name":  {"Ann"},
		"email": {"ann@example.com"},
		"body":  {"lovely"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, app.db.First(&comment).Error)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "Ann", comment.Name)
	assert.True(t, comment.Active)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCreateCommentValidationFailureRerendersDetail(t *testing.T) {
	app := newTestApp(t)
	post := app.createPost(t, "one", models.StatusPublished, time.Now())

	w := app.postForm(t, fmt.Sprintf("/posts/%d/comment", post.ID), url.Values{
		"name":  {""},
		"email": {"a@b.com"},
		"body":  {"hi"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	tmpl, data := page(t, w)
	assert.Equal(t, "post/detail.html", tmpl)
	assert.NotNil(t, data["CommentErrors"])
	assert.Contains(t, w.Body.String(), "this field is required")

	var total int64
	require.NoError(t, app.db.Model(&models.Comment{}).Count(&total).Error)
	assert.Zero(t, total, "invalid input must not reach storage")
}

func TestCreateCommentOnDraftIsNotFound(t *testing.T) {
	app := newTestApp(t)
	draft := app.createPost(t, "secret", models.StatusDraft, time.Now())

	w := app.postForm(t, fmt.Sprintf("/posts/%d/comment", draft.ID), url.Values{
		"name":  {"Ann"},
		"email": {"ann@example.com"},
		"body":  {"hi"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var total int64
	require.NoError(t, app.db.Model(&models.Comment{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestCreateCommentCannotSetSystemFields(t *testing.T) {
	app := newTestApp(t)
	post := app.createPost(t, "one", models.StatusPublished, time.Now())
	other := app.createPost(t, "other", models.StatusPublished, time.Now().Add(time.Hour))

	w := app.postForm(t, fmt.Sprintf("/posts/%d/comment", post.ID), url.Values{
		"name":    {"Ann"},
		"email":   {"ann@example.com"},
		"body":    {"hi"},
		"active":  {"false"},
		"post_id": {fmt.Sprint(other.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var comment models.Comment
	require.NoError(t, app.db.First(&comment).Error)
	assert.Equal(t, post.ID, comment.PostID, "post comes from the route, not the form")
	assert.True(t, comment.Active, "active comes from the system, not the form")
}
