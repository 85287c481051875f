package color

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"unicode/utf16"
)

const (
	ModeRandom = "random"
	ModeHash   = "hash"
)

// maxBucketTries bounds the anti-repeat bucket search.
const maxBucketTries = 10

var ErrEmptyPalette = errors.New("color: palette has an empty bucket or no buckets")

// Source yields uniform ints in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Assigner maps event ids to display colors. Repeated calls with the same
// id return the same assignment.
type Assigner interface {
	ColorFor(id string) string
	Assign(id string) Assignment
}

// New builds the assigner for mode. A nil src uses math/rand/v2.
func New(mode string, palette Palette, src Source) (Assigner, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	for _, b := range palette {
		if len(b.Entries) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyPalette, b.Name)
		}
	}
	switch mode {
	case ModeRandom, "":
		return NewRandomAssigner(palette, src), nil
	case ModeHash:
		return NewHashAssigner(palette), nil
	default:
		return nil, fmt.Errorf("color: unknown mode %q", mode)
	}
}

// RandomAssigner picks a random bucket that differs from the last two used
// buckets, then a random color inside it. Buckets are shuffled once at
// construction so first-seen order varies per session.
type RandomAssigner struct {
	palette Palette
	src     Source
	store   *Store
	lastTwo [2]int
}

func NewRandomAssigner(palette Palette, src Source) *RandomAssigner {
	if src == nil {
		src = globalSource{}
	}
	p := palette.Clone()
	for _, b := range p {
		shuffle(b.Entries, src)
	}
	return &RandomAssigner{
		palette: p,
		src:     src,
		store:   NewStore(),
		lastTwo: [2]int{-1, -1},
	}
}

// shuffle is a Fisher-Yates permutation driven by src.
func shuffle(entries []Entry, src Source) {
	for i := len(entries) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		entries[i], entries[j] = entries[j], entries[i]
	}
}

func (a *RandomAssigner) ColorFor(id string) string {
	return a.Assign(id).Color
}

func (a *RandomAssigner) Assign(id string) Assignment {
	// lastTwo is only touched inside create, which runs under the store lock.
	return a.store.getOrCreate(id, func() Assignment {
		bucket := a.pickBucket()
		a.lastTwo[0] = a.lastTwo[1]
		a.lastTwo[1] = bucket

		entries := a.palette[bucket].Entries
		idx := a.src.IntN(len(entries))
		return Assignment{
			Color:  entries[idx].Color,
			Label:  entries[idx].Label,
			Bucket: bucket,
			Index:  idx,
		}
	})
}

func (a *RandomAssigner) pickBucket() int {
	n := len(a.palette)
	for tries := 0; tries < maxBucketTries; tries++ {
		b := a.src.IntN(n)
		if b != a.lastTwo[0] && b != a.lastTwo[1] {
			return b
		}
	}
	// one past the earlier of the last two buckets
	return (a.lastTwo[0] + 1) % n
}

// LastTwo reports the two most recently used bucket indices, oldest first.
func (a *RandomAssigner) LastTwo() [2]int {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return a.lastTwo
}

func (a *RandomAssigner) Palette() Palette {
	return a.palette
}

// HashAssigner indexes the flattened palette with a 32-bit string hash.
// The same id maps to the same color in every session.
type HashAssigner struct {
	palette Palette
	flat    []Entry
	store   *Store
}

func NewHashAssigner(palette Palette) *HashAssigner {
	p := palette.Clone()
	return &HashAssigner{
		palette: p,
		flat:    p.Flatten(),
		store:   NewStore(),
	}
}

func (h *HashAssigner) ColorFor(id string) string {
	return h.Assign(id).Color
}

func (h *HashAssigner) Assign(id string) Assignment {
	return h.store.getOrCreate(id, func() Assignment {
		v := int64(StringHash(id))
		if v < 0 {
			v = -v
		}
		flat := int(v % int64(len(h.flat)))
		bucket, idx := h.locate(flat)
		return Assignment{
			Color:  h.flat[flat].Color,
			Label:  h.flat[flat].Label,
			Bucket: bucket,
			Index:  idx,
		}
	})
}

func (h *HashAssigner) locate(flat int) (int, int) {
	for b, bucket := range h.palette {
		if flat < len(bucket.Entries) {
			return b, flat
		}
		flat -= len(bucket.Entries)
	}
	return -1, -1
}

// StringHash is the classic hash = c + (hash<<5 - hash) recurrence over
// UTF-16 code units with 32-bit wraparound.
func StringHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = int32(c) + (h<<5 - h)
	}
	return h
}
