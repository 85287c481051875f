package gallery

import (
	"motionview/internal/color"
	"motionview/internal/media"
	"motionview/internal/model"
)

type Mode string

const (
	// ModeExpand emits one card per snapshot.
	ModeExpand Mode = "expand"
	// ModeRepresentative emits one card per event using its middle snapshot.
	ModeRepresentative Mode = "representative"
)

type Icon struct {
	Class string `json:"class"`
	Token string `json:"token"`
}

type Card struct {
	EventID       string `json:"eventId"`
	Camera        string `json:"camera"`
	MotionStart   string `json:"motionStart"`
	SnapshotIndex int    `json:"snapshotIndex"`
	Snapshot      string `json:"snapshot"`
	ImageURL      string `json:"imageUrl"`
	Color         string `json:"color"`
	Icons         []Icon `json:"icons"`
}

type Renderer struct {
	mode      Mode
	iconMatch MatchMode
	colors    color.Assigner
	media     media.Resolver
}

func NewRenderer(mode Mode, iconMatch MatchMode, colors color.Assigner, resolver media.Resolver) *Renderer {
	if mode == "" {
		mode = ModeExpand
	}
	if iconMatch == "" {
		iconMatch = MatchExact
	}
	return &Renderer{
		mode:      mode,
		iconMatch: iconMatch,
		colors:    colors,
		media:     resolver,
	}
}

func (r *Renderer) Mode() Mode {
	return r.mode
}

// Render builds the cards for events in order. Events without snapshots
// produce no cards and are never given a color.
func (r *Renderer) Render(events []model.Event) []Card {
	var cards []Card
	for i := range events {
		ev := &events[i]
		if !ev.HasSnapshots() {
			continue
		}
		glow := r.colors.ColorFor(ev.ID)
		icons := r.icons(ev)

		if r.mode == ModeRepresentative {
			cards = append(cards, r.card(ev, ev.RepresentativeIndex(), glow, icons))
			continue
		}
		for idx := range ev.Snapshots {
			cards = append(cards, r.card(ev, idx, glow, icons))
		}
	}
	return cards
}

func (r *Renderer) card(ev *model.Event, idx int, glow string, icons []Icon) Card {
	return Card{
		EventID:       ev.ID,
		Camera:        ev.CameraName,
		MotionStart:   ev.DisplayStart(),
		SnapshotIndex: idx,
		Snapshot:      ev.Snapshots[idx],
		ImageURL:      r.media.ImageURL(ev.Snapshots[idx]),
		Color:         glow,
		Icons:         icons,
	}
}

func (r *Renderer) icons(ev *model.Event) []Icon {
	classes := DistinctClasses(ev.Objects)
	icons := make([]Icon, len(classes))
	for i, c := range classes {
		icons[i] = Icon{Class: c, Token: IconFor(c, r.iconMatch)}
	}
	return icons
}

func (r *Renderer) ImageURL(ref string) string {
	return r.media.ImageURL(ref)
}

func (r *Renderer) VideoURL(ref string) string {
	return r.media.VideoURL(ref)
}
