package model

import (
	"strings"
	"time"
)

type Coords struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

type BBox struct {
	Min Coords `json:"Min"`
	Max Coords `json:"Max"`
}

// DetectedObject is one classified object seen during an event.
type DetectedObject struct {
	Class      string  `json:"Class" jsonschema:"description=Object class label such as car or person"`
	Confidence float64 `json:"Confidence" jsonschema:"minimum=0,maximum=1"`
	BBox       BBox    `json:"BBox,omitempty"`
	Center     Coords  `json:"Center,omitempty"`
	Area       int     `json:"Area,omitempty"`
	LastMoved  string  `json:"LastMoved,omitempty"`
}

// Event is one motion episode as returned by the archive search endpoint.
type Event struct {
	ID          string           `json:"ID" jsonschema:"required"`
	MotionStart string           `json:"MotionStart" jsonschema:"required,format=date-time"`
	MotionEnd   string           `json:"MotionEnd,omitempty" jsonschema:"format=date-time"`
	CameraName  string           `json:"CameraName"`
	Snapshots   []string         `json:"Snapshots" jsonschema:"description=Snapshot paths relative to the image base"`
	VideoFile   string           `json:"VideoFile" jsonschema:"description=Clip path relative to the video base"`
	Objects     []DetectedObject `json:"Objects"`
}

func (e *Event) HasSnapshots() bool {
	return len(e.Snapshots) > 0
}

// RepresentativeIndex is the middle snapshot index, or -1 when there are none.
func (e *Event) RepresentativeIndex() int {
	if len(e.Snapshots) == 0 {
		return -1
	}
	return len(e.Snapshots) / 2
}

func (e *Event) StartTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.MotionStart)
}

const DisplayTimeFormat = "02/01/06 15:04:05"

// DisplayStart renders MotionStart without sub-second or zone information.
// The wall clock is the one in MotionStart's own UTC offset (the camera's),
// not the viewer's local zone. Unparseable values are trimmed textually.
func (e *Event) DisplayStart() string {
	t, err := e.StartTime()
	if err == nil {
		return t.Format(DisplayTimeFormat)
	}
	s := e.MotionStart
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.Replace(s, "T", " ", 1)
}

type Tag struct {
	Tag  string `json:"tag"`
	Type string `json:"type" jsonschema:"enum=camera,enum=class"`
}

// SearchResponse is the body of GET /api. Data is a pointer so a body
// without the field can be told apart from an empty result.
type SearchResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error,omitempty"`
	TimeStart string   `json:"timeStart,omitempty" jsonschema:"format=date-time"`
	TimeEnd   string   `json:"timeEnd,omitempty" jsonschema:"format=date-time"`
	Tags      []Tag    `json:"tags,omitempty"`
	Data      *[]Event `json:"data" jsonschema:"required"`
}
