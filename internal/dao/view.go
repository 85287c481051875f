package dao

import (
	"motionview/internal/gallery"
	"motionview/internal/query"
)

type SessionRequest struct {
	Session string `form:"s"`
}

type SearchRequest struct {
	Session string `form:"s"`
	query.Input
}

type SelectRequest struct {
	Session  string `form:"s"`
	EventId  string `form:"id" binding:"required"`
	Snapshot int    `form:"snapshot" binding:"min=0"`
}

type SeekRequest struct {
	Position float64 `form:"t" binding:"min=0"`
}

type ViewResponse struct {
	Session string `json:"session"`
	gallery.View
}

func FromView(session string, v gallery.View) *ViewResponse {
	return &ViewResponse{Session: session, View: v}
}
