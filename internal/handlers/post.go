package handlers

import (
	"errors"
	"html/template"
	"math"
	"net/http"

	"inkwell/internal/logger"
	"inkwell/internal/models"
	"inkwell/internal/store"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

const postsPerPage = 10

type PostHandler struct {
	posts    *store.PostStore
	comments *store.CommentStore
}

func NewPostHandler(posts *store.PostStore, comments *store.CommentStore) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

// List renders the published posts, newest publish first. An empty blog
// renders an empty list, never an error.
func (h *PostHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}

	posts, total, err := h.posts.ListPublished(page, postsPerPage)
	if err != nil {
		logger.S.Errorf("listing posts: %v", err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Title":       "Blog",
		"Posts":       posts,
		"CurrentPage": page,
		"TotalPages":  totalPages,
	})
}

// Detail renders a single published post with its visible comments.
// Drafts and unknown ids both come back as the same 404.
func (h *PostHandler) Detail(c *gin.Context) {
	post, ok := h.lookup(c)
	if !ok {
		return
	}
	h.renderDetail(c, post, http.StatusOK, nil)
}

// lookup resolves the :id route param to a published post, rendering the
// 404 page itself when there is none.
func (h *PostHandler) lookup(c *gin.Context) (*models.Post, bool) {
	id := utils.StringToUint(c.Param("id"))

	post, err := h.posts.GetPublished(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Post not found.")
		} else {
			logger.S.Errorf("loading post %d: %v", id, err)
			RenderError(c, http.StatusInternalServerError, "Something went wrong.")
		}
		return nil, false
	}
	return post, true
}

type renderedComment struct {
	models.Comment
	BodyHTML template.HTML
}

// renderDetail draws the detail page. extra lets the comment handler
// re-render it with inline form errors.
func (h *PostHandler) renderDetail(c *gin.Context, post *models.Post, code int, extra gin.H) {
	comments, err := h.comments.ActiveForPost(post.ID)
	if err != nil {
		logger.S.Errorf("loading comments for post %d: %v", post.ID, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			BodyHTML: utils.RenderMarkdown(com.Body),
		}
	}

	data := gin.H{
		"Title":        post.Title,
		"Post":         post,
		"PostBody":     utils.RenderMarkdown(post.Body),
		"Comments":     rendered,
		"CommentCount": len(rendered),
	}
	for k, v := range extra {
		data[k] = v
	}

	Render(c, code, "post/detail.html", data)
}
