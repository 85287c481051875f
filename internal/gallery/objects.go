package gallery

import (
	"fmt"

	"motionview/internal/model"
)

type BadgeMode string

const (
	BadgeClass      BadgeMode = "class"
	BadgeCount      BadgeMode = "count"
	BadgeConfidence BadgeMode = "confidence"
)

// ClassSummary aggregates all objects of one class in an event.
type ClassSummary struct {
	Class         string  `json:"class"`
	Count         int     `json:"count"`
	MaxConfidence float64 `json:"maxConfidence"`
}

// Aggregate groups objects by class in first-seen order.
func Aggregate(objects []model.DetectedObject) []ClassSummary {
	var out []ClassSummary
	pos := make(map[string]int)
	for _, o := range objects {
		i, ok := pos[o.Class]
		if !ok {
			pos[o.Class] = len(out)
			out = append(out, ClassSummary{Class: o.Class, Count: 1, MaxConfidence: o.Confidence})
			continue
		}
		out[i].Count++
		if o.Confidence > out[i].MaxConfidence {
			out[i].MaxConfidence = o.Confidence
		}
	}
	return out
}

func DistinctClasses(objects []model.DetectedObject) []string {
	summaries := Aggregate(objects)
	classes := make([]string, len(summaries))
	for i, s := range summaries {
		classes[i] = s.Class
	}
	return classes
}

func (s ClassSummary) Badge(mode BadgeMode) string {
	switch mode {
	case BadgeCount:
		return fmt.Sprintf("%s (%d)", s.Class, s.Count)
	case BadgeConfidence:
		return fmt.Sprintf("%s (%d) %.1f%%", s.Class, s.Count, s.MaxConfidence*100)
	default:
		return s.Class
	}
}
