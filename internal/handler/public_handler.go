package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/threadcraft/internal/db"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML(), html.WithUnsafe()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type sectionView struct {
	ID        uint
	Content   template.HTML
	ImageURL  string
	VideoURL  string
	Position  int
	UpdatedAt time.Time
}

// ShowHome renders the public landing page: every section in display order.
func (a *API) ShowHome(c *gin.Context) {
	sections, err := a.sections.ListOrdered()
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "An error occurred while loading the page")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "ThreadCraft",
		"sections": a.sectionViews(sections),
		"year":     time.Now().Year(),
	})
}

func (a *API) sectionViews(sections []db.Section) []sectionView {
	views := make([]sectionView, 0, len(sections))
	for _, section := range sections {
		views = append(views, sectionView{
			ID:        section.ID,
			Content:   renderContent(section.Content),
			ImageURL:  a.assetURL(section.ImagePath),
			VideoURL:  a.assetURL(section.VideoPath),
			Position:  section.Position,
			UpdatedAt: section.UpdatedAt,
		})
	}
	return views
}

func (a *API) assetURL(name string) string {
	if name == "" {
		return ""
	}
	return path.Join(a.uploadURL, name)
}

// renderContent converts section text through the markdown engine and strips
// anything the sanitizer does not allow. Plain HTML snippets pass through the
// conversion unchanged.
func renderContent(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
