package gallery

import "motionview/internal/model"

// DetailLine is one label in the event info box. Name is empty for plain
// labels such as object badges.
type DetailLine struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
	Class string `json:"class"`
}

func (l DetailLine) Text() string {
	if l.Name == "" {
		return l.Value
	}
	return l.Name + ": " + l.Value
}

type DetailView struct {
	lines []DetailLine
}

// Populate replaces the content with the event's id, start time, camera
// and one badge per object class.
func (d *DetailView) Populate(ev *model.Event, mode BadgeMode) {
	d.lines = d.lines[:0]
	d.add("ID", ev.ID, "infoLabelEventID")
	d.add("T", ev.DisplayStart(), "infoLabelTime")
	d.add("Cam", ev.CameraName, "infoLabelCameraName")
	for _, s := range Aggregate(ev.Objects) {
		d.add("", s.Badge(mode), "infoLabelObject")
	}
}

func (d *DetailView) add(name, value, class string) {
	d.lines = append(d.lines, DetailLine{Name: name, Value: value, Class: class})
}

func (d *DetailView) Lines() []DetailLine {
	return append([]DetailLine(nil), d.lines...)
}

func (d *DetailView) Empty() bool {
	return len(d.lines) == 0
}
