package reconcile

import (
	"fmt"

	"ics-diff/core/calendar"

	"go.uber.org/zap"
)

// Engine diffs calendar documents. An Engine holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	cfg     Config
	adapter Adapter
	logger  *zap.Logger
}

// Option adjusts an Engine.
type Option func(*Engine)

// WithAdapter replaces the default CalendarAdapter.
// An injected CalendarAdapter's width is reported by Config.
func WithAdapter(a Adapter) Option {
	return func(e *Engine) {
		e.adapter = a
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine. Zero config fields take their defaults.
func New(cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:     cfg,
		adapter: NewCalendarAdapter(cfg.SequenceWidth),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if a, ok := e.adapter.(*CalendarAdapter); ok {
		e.cfg.SequenceWidth = a.SequenceWidth
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Diff compares the configured collections of two documents and returns the
// differences in collection order. A collection missing from either document
// is treated as empty. Malformed trees are rejected before any comparison.
func (e *Engine) Diff(left, right *calendar.Document) ([]DiffPair, error) {
	if err := validate("left", left); err != nil {
		return nil, err
	}
	if err := validate("right", right); err != nil {
		return nil, err
	}

	left = StripDocument(left, e.cfg)
	right = StripDocument(right, e.cfg)

	var out []DiffPair
	for _, kind := range e.cfg.Collections {
		l := e.sortItems(left.Collection(kind))
		r := e.sortItems(right.Collection(kind))
		pairs := e.align(l, r)

		e.logger.Debug("Aligned collection",
			zap.String("adapter", e.adapter.Name()),
			zap.String("kind", kind),
			zap.Int("left", len(l)),
			zap.Int("right", len(r)),
			zap.Int("pairs", len(pairs)),
		)
		out = append(out, pairs...)
	}
	return out, nil
}

func validate(side string, doc *calendar.Document) error {
	if doc == nil || doc.Root == nil {
		return nil
	}
	if err := doc.Root.Validate(); err != nil {
		return fmt.Errorf("%s document: %w", side, err)
	}
	return nil
}
