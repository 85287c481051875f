package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Mode string

const (
	ModeFreeText   Mode = "freetext"
	ModeStructured Mode = "structured"
)

const (
	DateToday     = "today"
	DateYesterday = "yesterday"
	DateCustom    = "custom"
)

const (
	pickerDateLayout = "2006-01-02"
	backendLayout    = "2006-01-02 15:04"
)

var (
	// ErrNoQuery means there is nothing to search for; the caller should
	// prompt the operator instead of issuing a request.
	ErrNoQuery     = errors.New("no query criteria")
	ErrInvalidDate = errors.New("invalid date")
	ErrUnknownMode = errors.New("unknown date mode")
)

var datePhrase = regexp.MustCompile(`(?i)today|yesterday|from .* to .*`)

// Input is the raw state of the search controls.
type Input struct {
	Keywords string `form:"keywords" json:"keywords"`
	// DateMode is the quick-select value: today, yesterday, custom or empty.
	DateMode string `form:"quick" json:"quick"`
	Date     string `form:"date" json:"date"`
	Start    string `form:"start" json:"start"`
	End      string `form:"end" json:"end"`
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type Builder struct {
	mode  Mode
	clock Clock
}

func NewBuilder(mode Mode, clock Clock) *Builder {
	if clock == nil {
		clock = realClock{}
	}
	return &Builder{mode: mode, clock: clock}
}

func (b *Builder) Mode() Mode {
	return b.mode
}

func (b *Builder) Build(in Input) (Spec, error) {
	switch b.mode {
	case ModeStructured:
		return b.buildStructured(in)
	default:
		return b.buildFreeText(in)
	}
}

// StripDatePhrases removes typed date tokens so they are not sent twice.
func StripDatePhrases(keywords string) string {
	return strings.TrimSpace(datePhrase.ReplaceAllString(keywords, ""))
}

func (b *Builder) buildFreeText(in Input) (Spec, error) {
	var date string
	switch strings.ToLower(strings.TrimSpace(in.DateMode)) {
	case "":
	case DateToday:
		date = DateToday
	case DateYesterday:
		date = DateYesterday
	case DateCustom:
		picked := strings.TrimSpace(in.Date)
		if picked == "" {
			picked = b.clock.Now().Format(pickerDateLayout)
		} else if _, err := time.Parse(pickerDateLayout, picked); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
		}
		date = fmt.Sprintf("from %s 00:00 to %s 23:59", picked, picked)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, in.DateMode)
	}

	keywords := StripDatePhrases(in.Keywords)
	prompt := strings.TrimSpace(date + " " + keywords)
	if prompt == "" {
		return nil, ErrNoQuery
	}
	return FreeText{Prompt: prompt}, nil
}

func (b *Builder) buildStructured(in Input) (Spec, error) {
	start, err := toBackendTime(in.Start)
	if err != nil {
		return nil, err
	}
	end, err := toBackendTime(in.End)
	if err != nil {
		return nil, err
	}
	keywords := strings.TrimSpace(in.Keywords)
	if start == "" && end == "" && keywords == "" {
		return nil, ErrNoQuery
	}
	return Structured{Start: start, End: end, Keywords: keywords}, nil
}

// toBackendTime turns a datetime-local value into "YYYY-MM-DD HH:MM".
func toBackendTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	s = strings.Replace(s, "T", " ", 1)
	if len(s) > len(backendLayout) {
		s = s[:len(backendLayout)]
	}
	if _, err := time.Parse(backendLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return s, nil
}
