package viewer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"motionview/internal/color"
	"motionview/internal/config"
	"motionview/internal/gallery"
	"motionview/internal/media"
	"motionview/internal/query"
	"motionview/internal/search"
	"motionview/pkg/log"
)

// Viewer holds what page sessions share: the backend client, the media
// resolver and the metrics observer. Each session gets its own controller.
type Viewer struct {
	conf     *config.Config
	searcher gallery.Searcher
	media    media.Resolver
	observer gallery.Observer
	clock    query.Clock
	logger   *logrus.Entry
}

func NewViewer(conf *config.Config, observer gallery.Observer) (*Viewer, error) {
	resolver, err := media.New(conf.Media)
	if err != nil {
		return nil, fmt.Errorf("init media resolver: %w", err)
	}
	return &Viewer{
		conf:     conf,
		searcher: search.NewClient(conf.Backend.URL, conf.Backend.Timeout),
		media:    resolver,
		observer: observer,
		logger:   log.ComponentLogger("viewer"),
	}, nil
}

// WithSearcher replaces the backend client, e.g. with a fake in tests.
func (v *Viewer) WithSearcher(s gallery.Searcher) *Viewer {
	v.searcher = s
	return v
}

func (v *Viewer) WithClock(c query.Clock) *Viewer {
	v.clock = c
	return v
}

func (v *Viewer) Config() *config.Config {
	return v.conf
}

// NewSession builds a fresh controller with its own color memo.
func (v *Viewer) NewSession() (*gallery.Controller, error) {
	vc := v.conf.Viewer
	colors, err := color.New(vc.ColorMode, color.DefaultPalette(), nil)
	if err != nil {
		return nil, err
	}
	renderer := gallery.NewRenderer(
		gallery.Mode(vc.GalleryMode),
		gallery.MatchMode(vc.IconMatch),
		colors,
		v.media,
	)
	v.logger.Debugf("new session: query=%s color=%s gallery=%s", vc.QueryMode, vc.ColorMode, vc.GalleryMode)
	return gallery.NewController(gallery.Options{
		Builder:   query.NewBuilder(query.Mode(vc.QueryMode), v.clock),
		Searcher:  v.searcher,
		Renderer:  renderer,
		BadgeMode: gallery.BadgeMode(vc.BadgeMode),
		Observer:  v.observer,
	}), nil
}

// InitialInput is the search run when a page session starts. Structured
// mode has no quick-select, so the day is expanded into a start/end pair.
func (v *Viewer) InitialInput() (query.Input, bool) {
	day := v.conf.Viewer.InitialQuery
	if day == "" {
		return query.Input{}, false
	}
	if query.Mode(v.conf.Viewer.QueryMode) != query.ModeStructured {
		return query.Input{DateMode: day}, true
	}
	now := time.Now()
	if v.clock != nil {
		now = v.clock.Now()
	}
	if day == query.DateYesterday {
		now = now.AddDate(0, 0, -1)
	}
	d := now.Format("2006-01-02")
	return query.Input{Start: d + "T00:00", End: d + "T23:59"}, true
}
