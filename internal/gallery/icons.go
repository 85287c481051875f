package gallery

import "strings"

type MatchMode string

const (
	MatchExact    MatchMode = "exact"
	MatchContains MatchMode = "contains"
)

const DefaultIcon = "fas fa-question"

// Order matters for substring matching: longer, more specific labels first.
var iconTable = []struct {
	class string
	icon  string
}{
	{"motorcycle", "fas fa-motorcycle"},
	{"bicycle", "fas fa-bicycle"},
	{"truck", "fas fa-truck"},
	{"bus", "fas fa-bus"},
	{"car", "fas fa-car"},
	{"person", "fas fa-user"},
	{"cat", "fas fa-cat"},
	{"dog", "fas fa-dog"},
	{"boat", "fas fa-ship"},
}

// IconFor maps an object class to an icon token.
func IconFor(class string, match MatchMode) string {
	c := strings.ToLower(strings.TrimSpace(class))
	if c == "" {
		return DefaultIcon
	}
	for _, e := range iconTable {
		if c == e.class {
			return e.icon
		}
	}
	if match == MatchContains {
		for _, e := range iconTable {
			if strings.Contains(c, e.class) {
				return e.icon
			}
		}
	}
	return DefaultIcon
}
