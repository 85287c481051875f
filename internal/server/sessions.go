package server

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"motionview/internal/gallery"
	"motionview/internal/metrics"
)

// Sessions maps page-session ids to their controllers. The least recently
// used session is dropped once the cache is full.
type Sessions struct {
	cache   *lru.Cache[string, *gallery.Controller]
	factory func() (*gallery.Controller, error)
	metrics *metrics.Metrics
}

func NewSessions(size int, factory func() (*gallery.Controller, error), m *metrics.Metrics) (*Sessions, error) {
	cache, err := lru.New[string, *gallery.Controller](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Sessions{cache: cache, factory: factory, metrics: m}, nil
}

func (s *Sessions) Get(id string) (*gallery.Controller, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// Create starts a new page session with fresh color and modal state.
func (s *Sessions) Create() (string, *gallery.Controller, error) {
	ctrl, err := s.factory()
	if err != nil {
		return "", nil, err
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	s.cache.Add(id, ctrl)
	s.updateGauge()
	return id, ctrl, nil
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}

func (s *Sessions) updateGauge() {
	if s.metrics != nil {
		s.metrics.Sessions.Set(float64(s.cache.Len()))
	}
}
