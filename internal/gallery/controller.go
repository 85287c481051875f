package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"motionview/internal/model"
	"motionview/internal/query"
	"motionview/internal/search"
	"motionview/pkg/log"
)

var (
	ErrUnknownEvent    = errors.New("event is not in the current grid")
	ErrUnknownSnapshot = errors.New("snapshot index out of range")
)

type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeEmpty   Outcome = "empty"
	OutcomeError   Outcome = "error"
	OutcomeNoQuery Outcome = "no_query"
	OutcomeStale   Outcome = "stale"
)

type Searcher interface {
	Search(ctx context.Context, spec query.Spec) (*search.Result, error)
}

// Observer receives query outcomes and card clicks, e.g. for metrics.
type Observer interface {
	ObserveQuery(outcome Outcome, elapsed time.Duration)
	ObserveClick()
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(Outcome, time.Duration) {}
func (noopObserver) ObserveClick()                       {}

// Ticket identifies one issued query. Only the latest ticket may render.
type Ticket uint64

type Options struct {
	Builder   *query.Builder
	Searcher  Searcher
	Renderer  *Renderer
	BadgeMode BadgeMode
	Observer  Observer
}

// Controller owns the state of one page session: the grid, the playback
// modal, the detail box and the color memo inside the renderer.
type Controller struct {
	mu sync.Mutex

	builder  *query.Builder
	searcher Searcher
	renderer *Renderer
	badge    BadgeMode
	observer Observer
	logger   *logrus.Entry

	seq    uint64
	input  query.Input
	spec   query.Spec
	grid   Grid
	events []model.Event
	byID   map[string]int
	result search.Result

	modal  Modal
	detail DetailView
}

func NewController(opts Options) *Controller {
	obs := opts.Observer
	if obs == nil {
		obs = noopObserver{}
	}
	return &Controller{
		builder:  opts.Builder,
		searcher: opts.Searcher,
		renderer: opts.Renderer,
		badge:    opts.BadgeMode,
		observer: obs,
		logger:   log.ComponentLogger("gallery"),
		grid:     placeholder(PlaceholderPrompt, MessagePrompt),
		byID:     make(map[string]int),
	}
}

// Search builds the query from in, moves the grid to loading, fetches and
// renders the response unless a newer query was issued meanwhile.
func (c *Controller) Search(ctx context.Context, in query.Input) Outcome {
	started := time.Now()

	spec, err := c.builder.Build(in)
	if err != nil {
		c.reject(in, err)
		outcome := OutcomeError
		if errors.Is(err, query.ErrNoQuery) {
			outcome = OutcomeNoQuery
		}
		c.observer.ObserveQuery(outcome, time.Since(started))
		return outcome
	}

	ticket := c.Begin(in, spec)
	res, err := c.searcher.Search(ctx, spec)
	outcome := c.Complete(ticket, res, err)
	c.observer.ObserveQuery(outcome, time.Since(started))
	return outcome
}

// reject supersedes any in-flight query and shows the builder failure.
func (c *Controller) reject(in query.Input, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.input = in
	c.spec = nil
	c.clearEvents()
	if errors.Is(err, query.ErrNoQuery) {
		c.grid = placeholder(PlaceholderPrompt, MessagePrompt)
		return
	}
	c.logger.WithError(err).Warn("cannot build query")
	c.grid = errorGrid(err.Error())
}

// Begin clears the grid to the loading placeholder and returns the ticket
// the response must present to be rendered.
func (c *Controller) Begin(in query.Input, spec query.Spec) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.input = in
	c.spec = spec
	c.clearEvents()
	c.grid = placeholder(PlaceholderLoading, MessageLoading)
	return Ticket(c.seq)
}

// Complete renders a response. Responses for superseded tickets are
// dropped and reported as OutcomeStale.
func (c *Controller) Complete(t Ticket, res *search.Result, err error) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if uint64(t) != c.seq {
		c.logger.Infof("dropping stale response for query %d, latest is %d", t, c.seq)
		return OutcomeStale
	}

	if err != nil {
		c.logger.WithError(err).Error("error fetching data")
		var serr *search.Error
		detail := ""
		if errors.As(err, &serr) && serr.Message != "" {
			detail = serr.Message
		}
		c.grid = errorGrid(detail)
		return OutcomeError
	}
	if res == nil {
		c.logger.Error("invalid data structure: nil result")
		c.grid = errorGrid("")
		return OutcomeError
	}

	c.result = search.Result{TimeStart: res.TimeStart, TimeEnd: res.TimeEnd, Tags: res.Tags}
	c.events = res.Events
	for i, ev := range c.events {
		if _, dup := c.byID[ev.ID]; !dup {
			c.byID[ev.ID] = i
		}
	}

	cards := c.renderer.Render(c.events)
	if len(cards) == 0 {
		c.grid = placeholder(PlaceholderEmpty, MessageEmpty)
		return OutcomeEmpty
	}
	c.grid = cardGrid(cards)
	return OutcomeOK
}

func (c *Controller) clearEvents() {
	c.events = nil
	c.byID = make(map[string]int)
	c.result = search.Result{}
}

// Select is a click on a card: it opens the player on the event's clip with
// the snapshot as poster and fills the detail box.
func (c *Controller) Select(eventID string, snapshot int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.byID[eventID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, eventID)
	}
	ev := &c.events[i]
	if snapshot < 0 || snapshot >= len(ev.Snapshots) {
		return fmt.Errorf("%w: %d", ErrUnknownSnapshot, snapshot)
	}

	c.modal.Open(c.renderer.VideoURL(ev.VideoFile), c.renderer.ImageURL(ev.Snapshots[snapshot]))
	c.detail.Populate(ev, c.badge)
	c.observer.ObserveClick()
	return nil
}

// CloseModal stops playback and hides the player. The detail box is kept.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal.Close()
}

func (c *Controller) Seek(pos float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal.Seek(pos)
}

// View is a copy of the session state for rendering.
type View struct {
	Seq       uint64       `json:"seq"`
	QueryMode query.Mode   `json:"queryMode"`
	Input     query.Input  `json:"input"`
	Query     string       `json:"query,omitempty"`
	TimeStart string       `json:"timeStart,omitempty"`
	TimeEnd   string       `json:"timeEnd,omitempty"`
	Tags      []model.Tag  `json:"tags,omitempty"`
	Grid      Grid         `json:"grid"`
	Modal     ModalState   `json:"modal"`
	Detail    []DetailLine `json:"detail"`
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Seq:       c.seq,
		QueryMode: c.builder.Mode(),
		Input:     c.input,
		TimeStart: c.result.TimeStart,
		TimeEnd:   c.result.TimeEnd,
		Tags:      append([]model.Tag(nil), c.result.Tags...),
		Grid: Grid{
			Placeholder: c.grid.Placeholder,
			Message:     c.grid.Message,
			Cards:       append([]Card(nil), c.grid.Cards...),
		},
		Modal:  c.modal.State(),
		Detail: c.detail.Lines(),
	}
	if c.spec != nil {
		v.Query = c.spec.String()
	}
	return v
}
