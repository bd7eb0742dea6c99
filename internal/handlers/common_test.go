package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// templateStub replaces the multitemplate renderer in tests: the page
// comes back as JSON carrying the template name and its data, so tests
// can assert on what would have been rendered.
type templateStub struct{}

func (templateStub) Instance(name string, data any) render.Render {
	return render.JSON{Data: gin.H{"template": name, "data": data}}
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	author models.User
}

func newTestApp(t *testing.T) *testApp {
	return newTestAppWithConfig(t, config.AppConfig{})
}

func newTestAppWithConfig(t *testing.T, cfg config.AppConfig) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, g.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(g))

	author := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, g.Create(&author).Error)

	posts := store.NewPostStore(g)
	comments := store.NewCommentStore(g)

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test"))))
	r.HTMLRender = templateStub{}

	mail := services.NewMailService(cfg)

	postHandler := NewPostHandler(posts, comments)
	commentHandler := NewCommentHandler(postHandler, comments)
	shareHandler := NewShareHandler(postHandler, mail, "http://example.com")
	seoHandler := NewSEOHandler(posts, "http://example.com")

	r.GET("/", postHandler.List)
	r.GET("/posts/:id", postHandler.Detail)
	r.POST("/posts/:id/comment", commentHandler.Create)
	r.GET("/posts/:id/share", shareHandler.Show)
	r.POST("/posts/:id/share", shareHandler.Share)
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)
	r.GET("/feed", seoHandler.RSSFeed)

	return &testApp{router: r, db: g, author: author}
}

func (a *testApp) createPost(t *testing.T, slug string, status models.Status, publish time.Time) models.Post {
	t.Helper()
	post := models.Post{
		Title:    "Post " + slug,
		Slug:     slug,
		Body:     "body of " + slug,
		Publish:  publish,
		Status:   status,
		AuthorID: a.author.ID,
	}
	require.NoError(t, a.db.Create(&post).Error)
	return post
}

func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// page decodes the templateStub response body.
func page(t *testing.T, w *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()
	var body struct {
		Template string         `json:"template"`
		Data     map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Template, body.Data
}
