package query

import "net/url"

// Spec is the outbound query. It is either FreeText or Structured.
type Spec interface {
	Values() url.Values
	String() string
	isSpec()
}

// FreeText is a single prompt that embeds the date phrase and keywords.
type FreeText struct {
	Prompt string
}

func (f FreeText) Values() url.Values {
	v := url.Values{}
	v.Set("prompt", f.Prompt)
	return v
}

func (f FreeText) String() string { return f.Prompt }

func (FreeText) isSpec() {}

// Structured carries the range as "YYYY-MM-DD HH:MM" strings.
type Structured struct {
	Start    string
	End      string
	Keywords string
}

func (s Structured) Values() url.Values {
	v := url.Values{}
	if s.Start != "" {
		v.Set("start", s.Start)
	}
	if s.End != "" {
		v.Set("end", s.End)
	}
	if s.Keywords != "" {
		v.Set("q", s.Keywords)
	}
	return v
}

func (s Structured) String() string {
	return s.Start + " .. " + s.End + " " + s.Keywords
}

func (Structured) isSpec() {}
