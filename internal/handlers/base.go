package handlers

import (
	"inkwell/internal/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject variables shared by every page.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Consume any pending flash message
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		if err := session.Save(); err != nil {
			logger.S.Errorf("saving session: %v", err)
		}
		obj["Flash"] = flashes[0]
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// Flash queues a one-shot message for the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logger.S.Errorf("saving session: %v", err)
	}
}
