package server

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionview/internal/gallery"
	"motionview/internal/metrics"
)

func TestSessions_EvictsLeastRecentlyUsed(t *testing.T) {
	m := metrics.NewMetrics()
	factory := func() (*gallery.Controller, error) {
		return gallery.NewController(gallery.Options{}), nil
	}
	s, err := NewSessions(2, factory, m)
	require.NoError(t, err)

	a, ca, err := s.Create()
	require.NoError(t, err)
	b, _, err := s.Create()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	got, ok := s.Get(a)
	require.True(t, ok)
	assert.Same(t, ca, got)

	c, _, err := s.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, ok = s.Get(b)
	assert.False(t, ok, "b was least recently used")
	_, ok = s.Get(a)
	assert.True(t, ok)
	_, ok = s.Get(c)
	assert.True(t, ok)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Sessions))

	_, ok = s.Get("")
	assert.False(t, ok)
}

func TestSessions_InvalidSize(t *testing.T) {
	_, err := NewSessions(0, nil, nil)
	assert.Error(t, err)
}
