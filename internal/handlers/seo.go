package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/logger"
	"inkwell/internal/store"

	"github.com/gin-gonic/gin"
)

// sitemapMax bounds how many posts the sitemap and feed walk.
const (
	sitemapMax = 5000
	feedMax    = 20
)

type SEOHandler struct {
	posts   *store.PostStore
	siteURL string
}

func NewSEOHandler(posts *store.PostStore, siteURL string) *SEOHandler {
	return &SEOHandler{posts: posts, siteURL: strings.TrimSuffix(siteURL, "/")}
}

// RobotsTxt returns the crawl policy, pointing crawlers at the sitemap.
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /posts/*/share

Sitemap: %s/sitemap.xml
`, h.siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// SitemapXML lists the home page and every published post.
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	posts, _, err := h.posts.ListPublished(1, sitemapMax)
	if err != nil {
		logger.S.Errorf("building sitemap: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)

	fmt.Fprintf(&b, `  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
`, h.siteURL, time.Now().Format("2006-01-02"))

	for _, post := range posts {
		fmt.Fprintf(&b, `  <url>
    <loc>%s/posts/%d</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.8</priority>
  </url>
`, h.siteURL, post.ID, post.UpdatedAt.Format("2006-01-02"))
	}

	b.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}

// RSSFeed serves an RSS 2.0 feed of the latest published posts.
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	posts, err := h.posts.LatestPublished(feedMax)
	if err != nil {
		logger.S.Errorf("building feed: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
`)
	fmt.Fprintf(&b, "  <title>Inkwell</title>\n  <link>%s/</link>\n  <description>Latest posts</description>\n", h.siteURL)

	for _, post := range posts {
		fmt.Fprintf(&b, `  <item>
    <title>%s</title>
    <link>%s/posts/%d</link>
    <guid>%s/posts/%d</guid>
    <pubDate>%s</pubDate>
  </item>
`, html.EscapeString(post.Title), h.siteURL, post.ID, h.siteURL, post.ID,
			post.Publish.Format(time.RFC1123Z))
	}

	b.WriteString("</channel>\n</rss>\n")

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}
