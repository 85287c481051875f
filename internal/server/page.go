package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"motionview/internal/gallery"
	"motionview/internal/query"
)

//go:embed templates/*.html
var templateFiles embed.FS

var funcMap = template.FuncMap{
	// glow is built from palette colors only, so it is safe CSS.
	"glow": func(color string) template.CSS {
		return template.CSS("box-shadow: 0 0 6px 2px " + color)
	},
	"sessionURL": sessionURL,
	"eventURL": func(session string, card gallery.Card) string {
		// event ids are opaque and may contain slashes, so they travel in the query
		q := url.Values{}
		q.Set("id", card.EventID)
		q.Set("snapshot", strconv.Itoa(card.SnapshotIndex))
		if session != "" {
			q.Set("s", session)
		}
		return "/event?" + q.Encode()
	},
	"selected": func(a, b string) bool { return a == b },
}

func parsePage() (*template.Template, error) {
	return template.New("gallery.html").Funcs(funcMap).ParseFS(templateFiles, "templates/gallery.html")
}

type pageData struct {
	Session    string
	Structured bool
	View       gallery.View
}

func (s *Server) renderPage(c *gin.Context, session string, v gallery.View) {
	data := pageData{
		Session:    session,
		Structured: v.QueryMode == query.ModeStructured,
		View:       v,
	}
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.WithError(err).Error("render page failed")
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func sessionURL(path, session string) string {
	if session == "" {
		return path
	}
	return path + "?s=" + url.QueryEscape(session)
}
