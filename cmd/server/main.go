package main

import (
	"html/template"
	"log"
	"path/filepath"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/handlers"
	"inkwell/internal/logger"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/store"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		panic(err)
	}
	defer logger.L.Sync()

	db.Init(cfg)

	posts := store.NewPostStore(db.DB)
	comments := store.NewCommentStore(db.DB)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Sessions back the one-shot flash messages on form submissions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inkwell_session", sessionStore))

	r.HTMLRender = loadTemplates("./web/templates", posts)
	r.Static("/static", "./web/static")

	mail := services.NewMailService(cfg)

	postHandler := handlers.NewPostHandler(posts, comments)
	commentHandler := handlers.NewCommentHandler(postHandler, comments)
	shareHandler := handlers.NewShareHandler(postHandler, mail, cfg.SiteURL)
	seoHandler := handlers.NewSEOHandler(posts, cfg.SiteURL)

	r.GET("/", postHandler.List)
	r.GET("/posts/:id", postHandler.Detail)
	r.POST("/posts/:id/comment", commentHandler.Create)
	r.GET("/posts/:id/share", shareHandler.Show)
	r.POST("/posts/:id/share", shareHandler.Share)

	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)
	r.GET("/feed", seoHandler.RSSFeed)

	logger.S.Infof("inkwell server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.S.Fatalf("server stopped: %v", err)
	}
}

// loadTemplates wires every view to the shared layout and registers the
// template helpers. totalPosts and latestPosts close over the post store
// so any layout can embed aggregate blocks without handler involvement.
func loadTemplates(templatesDir string, posts *store.PostStore) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(includes)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"totalPosts": func() int64 {
			n, err := posts.CountPublished()
			if err != nil {
				logger.S.Errorf("counting posts: %v", err)
				return 0
			}
			return n
		},
		"latestPosts": func(n int) []models.Post {
			latest, err := posts.LatestPublished(n)
			if err != nil {
				logger.S.Errorf("loading latest posts: %v", err)
				return nil
			}
			return latest
		},
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	r.AddFromFilesFuncs("post/list.html", funcMap, assemble(templatesDir+"/views/post/list.html")...)
	r.AddFromFilesFuncs("post/detail.html", funcMap, assemble(templatesDir+"/views/post/detail.html")...)
	r.AddFromFilesFuncs("post/share.html", funcMap, assemble(templatesDir+"/views/post/share.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
