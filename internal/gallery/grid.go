package gallery

type Placeholder string

const (
	PlaceholderNone    Placeholder = ""
	PlaceholderLoading Placeholder = "loading"
	PlaceholderEmpty   Placeholder = "empty"
	PlaceholderError   Placeholder = "error"
	PlaceholderPrompt  Placeholder = "prompt"
)

const (
	MessageLoading = "Loading events..."
	MessageEmpty   = "No events found for this period."
	MessageError   = "Error fetching data."
	MessagePrompt  = "Enter a date range or keywords to search."
)

// Grid holds either a placeholder or cards, never both.
type Grid struct {
	Placeholder Placeholder `json:"placeholder,omitempty"`
	Message     string      `json:"message,omitempty"`
	Cards       []Card      `json:"cards"`
}

func placeholder(p Placeholder, msg string) Grid {
	return Grid{Placeholder: p, Message: msg}
}

func errorGrid(detail string) Grid {
	msg := MessageError
	if detail != "" {
		msg += " " + detail
	}
	return placeholder(PlaceholderError, msg)
}

func cardGrid(cards []Card) Grid {
	return Grid{Cards: cards}
}

func (g Grid) IsPlaceholder() bool {
	return g.Placeholder != PlaceholderNone
}
