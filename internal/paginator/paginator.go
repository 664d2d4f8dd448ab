// Package paginator reveals a large in-memory list one page at a time.
//
// A Paginator starts with the first page visible. LoadMore returns a Bubble
// Tea command that waits out a simulated fetch latency and yields a LoadedMsg;
// feeding that message back through Apply appends the next page. While a load
// is in flight, or once every item is visible, LoadMore is a no-op, so any
// number of sentinel triggers can fire without double-appending.
//
// Close cancels an in-flight wait. A completion that arrives after Close is
// dropped, so a disposed view never sees its state mutate.
package paginator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultDelay is the simulated latency of one page fetch.
const DefaultDelay = time.Second

// ErrInvalidPageSize is returned by New for a page size below 1.
var ErrInvalidPageSize = errors.New("paginator: page size must be positive")

var nextID atomic.Uint64

// LoadedMsg reports the end of a LoadMore wait. Pass it to Apply.
type LoadedMsg struct {
	id       uint64
	offset   int
	Canceled bool // the wait was cut short; nothing is appended
}

// Paginator holds the full list and the size of its visible prefix.
type Paginator[T any] struct {
	mu        sync.Mutex
	id        uint64
	full      []T
	shown     int
	pageSize  int
	loading   bool
	exhausted bool
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc
	cfg    config
}

// State is a point-in-time copy of a paginator's observable fields.
type State[T any] struct {
	Visible   []T
	Total     int
	Loading   bool
	Exhausted bool
}

type config struct {
	delay  time.Duration
	name   string
	tracer trace.Tracer
	logger zerolog.Logger
}

// Option customizes a Paginator.
type Option func(*config)

// WithDelay sets the simulated fetch latency. Zero completes immediately.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithName labels spans and log lines, e.g. "leads".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger sets the logger for load events. Defaults to a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New shows the first pageSize items of full. The paginator is exhausted
// immediately when full fits in one page.
func New[T any](full []T, pageSize int, opts ...Option) (*Paginator[T], error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	cfg := config{
		delay:  DefaultDelay,
		name:   "list",
		tracer: otel.Tracer("linkbird/paginator"),
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Paginator[T]{
		id:        nextID.Add(1),
		full:      full,
		shown:     min(pageSize, len(full)),
		pageSize:  pageSize,
		exhausted: len(full) <= pageSize,
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
	}, nil
}

// LoadMore starts fetching the next page. It returns nil, changing nothing,
// when a load is already in flight, the list is exhausted, or the paginator
// is closed. The returned command blocks for the configured delay unless ctx
// or the paginator is cancelled first.
func (p *Paginator[T]) LoadMore(ctx context.Context) tea.Cmd {
	p.mu.Lock()
	if p.loading || p.exhausted || p.closed {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	offset := p.shown
	p.mu.Unlock()

	p.cfg.logger.Debug().Str("list", p.cfg.name).Int("offset", offset).Msg("load more")

	id, delay, own := p.id, p.cfg.delay, p.ctx
	return func() tea.Msg {
		_, span := p.cfg.tracer.Start(ctx, "paginator.load_more", trace.WithAttributes(
			attribute.String("linkbird.list", p.cfg.name),
			attribute.Int("linkbird.offset", offset),
			attribute.Int("linkbird.page_size", p.pageSize),
		))
		defer span.End()

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return LoadedMsg{id: id, offset: offset}
		case <-ctx.Done():
			span.SetStatus(codes.Error, ctx.Err().Error())
		case <-own.Done():
			span.SetStatus(codes.Error, "paginator closed")
		}
		return LoadedMsg{id: id, offset: offset, Canceled: true}
	}
}

// Apply completes a load started by LoadMore. It reports whether msg belonged
// to this paginator and changed its state. Messages from other paginators,
// stale offsets, and anything arriving after Close are ignored.
func (p *Paginator[T]) Apply(msg LoadedMsg) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if msg.id != p.id || p.closed || !p.loading || msg.offset != p.shown {
		return false
	}
	p.loading = false
	if msg.Canceled {
		return true
	}
	end := min(p.shown+p.pageSize, len(p.full))
	added := end - p.shown
	p.shown = end
	if added < p.pageSize || p.shown == len(p.full) {
		p.exhausted = true
	}
	p.cfg.logger.Debug().
		Str("list", p.cfg.name).
		Int("added", added).
		Int("visible", p.shown).
		Bool("exhausted", p.exhausted).
		Msg("page loaded")
	return true
}

// Close cancels any in-flight load and freezes the paginator.
func (p *Paginator[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.loading = false
	p.cancel()
}

// Visible returns the revealed prefix. The slice must not be modified.
func (p *Paginator[T]) Visible() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.full[:p.shown:p.shown]
}

// Len returns the number of visible items.
func (p *Paginator[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shown
}

// Total returns the size of the full list.
func (p *Paginator[T]) Total() int { return len(p.full) }

// PageSize returns the number of items revealed per load.
func (p *Paginator[T]) PageSize() int { return p.pageSize }

// Loading reports whether a load is in flight.
func (p *Paginator[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Exhausted reports whether every item is visible. It never reverts.
func (p *Paginator[T]) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exhausted
}

// Closed reports whether Close has been called.
func (p *Paginator[T]) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Snapshot returns all observable fields under one lock.
func (p *Paginator[T]) Snapshot() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return State[T]{
		Visible:   p.full[:p.shown:p.shown],
		Total:     len(p.full),
		Loading:   p.loading,
		Exhausted: p.exhausted,
	}
}
