package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newFreeText() *Builder {
	return NewBuilder(ModeFreeText, fixedClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestFreeText_DatePhrase(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{
			name: "today with keywords",
			in:   Input{DateMode: "today", Keywords: "car"},
			want: "today car",
		},
		{
			name: "yesterday only",
			in:   Input{DateMode: "yesterday"},
			want: "yesterday",
		},
		{
			name: "custom date",
			in:   Input{DateMode: "custom", Date: "2024-02-01", Keywords: "people frontdoor"},
			want: "from 2024-02-01 00:00 to 2024-02-01 23:59 people frontdoor",
		},
		{
			name: "custom without date uses clock",
			in:   Input{DateMode: "custom"},
			want: "from 2024-01-15 00:00 to 2024-01-15 23:59",
		},
		{
			name: "keywords only",
			in:   Input{Keywords: "  person  "},
			want: "person",
		},
	}

	b := newFreeText()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := b.Build(tt.in)
			require.NoError(t, err)
			require.IsType(t, FreeText{}, spec)
			assert.Equal(t, tt.want, spec.String())
			assert.Equal(t, tt.want, spec.Values().Get("prompt"))
		})
	}
}

func TestFreeText_StripsTypedDateTokens(t *testing.T) {
	b := newFreeText()

	spec, err := b.Build(Input{DateMode: "custom", Date: "2024-02-01", Keywords: "Today car"})
	require.NoError(t, err)
	assert.Equal(t, "from 2024-02-01 00:00 to 2024-02-01 23:59 car", spec.String())

	spec, err = b.Build(Input{DateMode: "yesterday", Keywords: "truck from monday to friday"})
	require.NoError(t, err)
	assert.Equal(t, "yesterday truck", spec.String())
}

func TestFreeText_NoQuery(t *testing.T) {
	b := newFreeText()

	_, err := b.Build(Input{})
	assert.ErrorIs(t, err, ErrNoQuery)

	_, err = b.Build(Input{Keywords: "today"})
	assert.ErrorIs(t, err, ErrNoQuery)
}

func TestFreeText_BadInput(t *testing.T) {
	b := newFreeText()

	_, err := b.Build(Input{DateMode: "custom", Date: "01/02/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = b.Build(Input{DateMode: "lastweek"})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestStructured(t *testing.T) {
	b := NewBuilder(ModeStructured, nil)

	spec, err := b.Build(Input{
		Start:    "2024-01-15T08:00",
		End:      "2024-01-15T18:30:59.999",
		Keywords: " car ",
	})
	require.NoError(t, err)
	require.Equal(t, Structured{Start: "2024-01-15 08:00", End: "2024-01-15 18:30", Keywords: "car"}, spec)

	v := spec.Values()
	assert.Equal(t, "2024-01-15 08:00", v.Get("start"))
	assert.Equal(t, "2024-01-15 18:30", v.Get("end"))
	assert.Equal(t, "car", v.Get("q"))
	assert.Equal(t, "end=2024-01-15+18%3A30&q=car&start=2024-01-15+08%3A00", v.Encode())
}

func TestStructured_KeywordsOnly(t *testing.T) {
	b := NewBuilder(ModeStructured, nil)

	spec, err := b.Build(Input{Keywords: "person"})
	require.NoError(t, err)
	assert.Equal(t, Structured{Keywords: "person"}, spec)
	assert.False(t, spec.Values().Has("start"))
}

func TestStructured_NoQuery(t *testing.T) {
	b := NewBuilder(ModeStructured, nil)

	_, err := b.Build(Input{Keywords: "   "})
	assert.ErrorIs(t, err, ErrNoQuery)
}

func TestStructured_InvalidDate(t *testing.T) {
	b := NewBuilder(ModeStructured, nil)

	_, err := b.Build(Input{Start: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
