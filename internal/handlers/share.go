package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"inkwell/internal/forms"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	post    *PostHandler
	mail    *services.MailService
	siteURL string
}

func NewShareHandler(post *PostHandler, mail *services.MailService, siteURL string) *ShareHandler {
	return &ShareHandler{
		post:    post,
		mail:    mail,
		siteURL: strings.TrimSuffix(siteURL, "/"),
	}
}

// Show renders the share-by-email form for a published post.
func (h *ShareHandler) Show(c *gin.Context) {
	post, ok := h.post.lookup(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "post/share.html", gin.H{
		"Title":       "Share " + post.Title,
		"Post":        post,
		"Unavailable": !h.mail.Enabled,
	})
}

// Share validates the submission and hands the send-off to the mail
// service. The handler itself does no I/O beyond the lookup.
func (h *ShareHandler) Share(c *gin.Context) {
	post, ok := h.post.lookup(c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		RenderError(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	form, err := forms.ParseEmailPostForm(c.Request.PostForm)
	if err != nil {
		var verr forms.ValidationError
		if errors.As(err, &verr) {
			Render(c, http.StatusBadRequest, "post/share.html", gin.H{
				"Title":  "Share " + post.Title,
				"Post":   post,
				"Errors": verr,
				"Form":   c.Request.PostForm,
			})
			return
		}
		RenderError(c, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	// Never claim success when no mail can go out.
	if !h.mail.Enabled {
		Render(c, http.StatusOK, "post/share.html", gin.H{
			"Title":       "Share " + post.Title,
			"Post":        post,
			"Unavailable": true,
			"Form":        c.Request.PostForm,
		})
		return
	}

	postURL := fmt.Sprintf("%s/posts/%d", h.siteURL, post.ID)
	h.mail.SendPostShare(form, post, postURL)

	Render(c, http.StatusOK, "post/share.html", gin.H{
		"Title": "Share " + post.Title,
		"Post":  post,
		"Sent":  true,
		"To":    form.To,
	})
}
