package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"inkwell/internal/forms"
	"inkwell/internal/logger"
	"inkwell/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	post     *PostHandler
	comments *store.CommentStore
}

func NewCommentHandler(post *PostHandler, comments *store.CommentStore) *CommentHandler {
	return &CommentHandler{post: post, comments: comments}
}

// Create accepts a comment submission on a published post. Validation
// failures re-render the detail page with inline errors; success
// persists the comment and redirects back to the post.
func (h *CommentHandler) Create(c *gin.Context) {
	post, ok := h.post.lookup(c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		RenderError(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	form, err := forms.ParseCommentForm(c.Request.PostForm)
	if err != nil {
		var verr forms.ValidationError
		if errors.As(err, &verr) {
			h.post.renderDetail(c, post, http.StatusBadRequest, gin.H{
				"CommentErrors": verr,
				"CommentForm":   c.Request.PostForm,
			})
			return
		}
		RenderError(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	comment := form.Comment(post)
	if err := h.comments.Create(&comment); err != nil {
		logger.S.Errorf("saving comment on post %d: %v", post.ID, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	Flash(c, "Your comment has been added.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}
