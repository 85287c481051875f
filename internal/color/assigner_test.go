package color

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	fn    func(n int) int
	calls int
}

func (s *stubSource) IntN(n int) int {
	s.calls++
	return s.fn(n)
}

// cycleSource returns 0, 1, 2, ... modulo n.
type cycleSource struct{ i int }

func (c *cycleSource) IntN(n int) int {
	v := c.i % n
	c.i++
	return v
}

func TestAssigners_Idempotent(t *testing.T) {
	for _, mode := range []string{ModeRandom, ModeHash} {
		t.Run(mode, func(t *testing.T) {
			a, err := New(mode, DefaultPalette(), rand.New(rand.NewPCG(7, 11)))
			require.NoError(t, err)

			first := make(map[string]string)
			for i := 0; i < 40; i++ {
				id := fmt.Sprintf("event-%d", i)
				first[id] = a.ColorFor(id)
				assert.NotEmpty(t, first[id])
			}
			for id, c := range first {
				assert.Equal(t, c, a.ColorFor(id), id)
				assert.Equal(t, c, a.Assign(id).Color, id)
			}
		})
	}
}

func TestRandomAssigner_NeverThreeInARow(t *testing.T) {
	a := NewRandomAssigner(DefaultPalette(), rand.New(rand.NewPCG(1, 2)))

	var buckets []int
	for i := 0; i < 200; i++ {
		buckets = append(buckets, a.Assign(fmt.Sprintf("id-%d", i)).Bucket)
	}
	for i := 2; i < len(buckets); i++ {
		same := buckets[i] == buckets[i-1] && buckets[i-1] == buckets[i-2]
		assert.False(t, same, "bucket %d chosen three times in a row at %d", buckets[i], i)
	}
}

func TestRandomAssigner_AvoidsLastTwoBuckets(t *testing.T) {
	a := NewRandomAssigner(DefaultPalette(), &cycleSource{})

	var buckets []int
	for i := 0; i < 12; i++ {
		buckets = append(buckets, a.Assign(fmt.Sprintf("id-%d", i)).Bucket)
	}
	for i := 1; i < len(buckets); i++ {
		assert.NotEqual(t, buckets[i], buckets[i-1])
		if i >= 2 {
			assert.NotEqual(t, buckets[i], buckets[i-2])
		}
	}
}

func TestRandomAssigner_FallbackAfterMaxTries(t *testing.T) {
	src := &stubSource{fn: func(n int) int { return 0 }}
	a := NewRandomAssigner(DefaultPalette(), src)

	assert.Equal(t, 0, a.Assign("a").Bucket)

	src.fn = func(n int) int { return 1 % n }
	assert.Equal(t, 1, a.Assign("b").Bucket)
	assert.Equal(t, [2]int{0, 1}, a.LastTwo())

	// Always offer the most recently used bucket.
	src.fn = func(n int) int {
		if n == len(a.Palette()) {
			return 1
		}
		return 0
	}
	src.calls = 0
	got := a.Assign("c")

	assert.Equal(t, (0+1)%3, got.Bucket)
	assert.Equal(t, maxBucketTries+1, src.calls, "bucket attempts plus one color pick")
	assert.Equal(t, [2]int{1, 1}, a.LastTwo())

	// Memoized: no further draws.
	src.calls = 0
	assert.Equal(t, got, a.Assign("c"))
	assert.Zero(t, src.calls)
}

func TestRandomAssigner_ShuffleDoesNotTouchInput(t *testing.T) {
	p := DefaultPalette()
	NewRandomAssigner(p, rand.New(rand.NewPCG(3, 4)))
	assert.Equal(t, DefaultPalette(), p)
}

func TestRandomAssigner_ColorBelongsToBucket(t *testing.T) {
	a := NewRandomAssigner(DefaultPalette(), rand.New(rand.NewPCG(5, 6)))
	for i := 0; i < 30; i++ {
		got := a.Assign(fmt.Sprintf("x%d", i))
		entry := a.Palette()[got.Bucket].Entries[got.Index]
		assert.Equal(t, entry.Color, got.Color)
	}
}

func TestStringHash(t *testing.T) {
	assert.Equal(t, int32(0), StringHash(""))
	assert.Equal(t, int32(96354), StringHash("abc"))
	assert.Equal(t, int32(1794106052), StringHash("hello world"))
	assert.Equal(t, int32(-2147483648), StringHash("polygenelubricants"))
}

func TestHashAssigner_Deterministic(t *testing.T) {
	ids := []string{"abc", "20240115-103000-front", "polygenelubricants", "ev-9"}

	a1 := NewHashAssigner(DefaultPalette())
	a2 := NewHashAssigner(DefaultPalette())
	for _, id := range ids {
		assert.Equal(t, a1.Assign(id), a2.Assign(id), id)
	}

	got := a1.Assign("abc")
	assert.Equal(t, Assignment{Color: "hsla(75, 100%, 55%, 0.9)", Label: "Light Yellow", Bucket: 1, Index: 0}, got)

	got = a1.Assign("polygenelubricants")
	assert.Equal(t, "Orange", got.Label)
	assert.Equal(t, 0, got.Bucket)
	assert.Equal(t, 2, got.Index)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(ModeRandom, Palette{}, nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = New(ModeHash, Palette{{Name: "none"}}, nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = New("rainbow", DefaultPalette(), nil)
	assert.Error(t, err)
}
