package diff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ics-diff/core/calendar"
	"ics-diff/core/reconcile"
	"ics-diff/core/report"
	"ics-diff/core/source"

	"go.uber.org/zap"
)

var (
	// ErrBadRequest marks errors caused by the request content.
	ErrBadRequest = errors.New("invalid diff request")
	// ErrHistoryDisabled is returned for history operations without a store.
	ErrHistoryDisabled = errors.New("report history is not configured")
)

// Request is the body of POST /diff. Each side is given either inline or as
// a reference.
type Request struct {
	// Left is inline iCalendar text.
	Left string `json:"left"`
	// Right is inline iCalendar text.
	Right string `json:"right"`
	// LeftRef is a source reference such as s3://bucket/key or git:HEAD:team.ics.
	LeftRef string `json:"left_ref"`
	// RightRef is a source reference.
	RightRef string `json:"right_ref"`
	// IgnoreDTStamp overrides the configured default when set.
	IgnoreDTStamp *bool `json:"ignore_dtstamp"`
	// Save stores the result in the report history.
	Save bool `json:"save"`
}

// Result is the response of POST /diff.
type Result struct {
	ReportID string               `json:"report_id,omitempty"`
	Stats    reconcile.Stats      `json:"stats"`
	Pairs    []reconcile.DiffPair `json:"pairs"`
}

// StoredReport is a history record with its decoded pairs.
type StoredReport struct {
	*report.Record
	Pairs []reconcile.DiffPair `json:"pairs"`
}

// Service runs diffs for the HTTP API.
type Service struct {
	loader   *source.Loader
	store    *report.Store
	cfg      reconcile.Config
	fileRefs bool
	logger   *zap.Logger
}

// NewService creates a Service. store may be nil when history is disabled.
func NewService(loader *source.Loader, store *report.Store, cfg reconcile.Config, fileRefs bool, logger *zap.Logger) *Service {
	return &Service{
		loader:   loader,
		store:    store,
		cfg:      cfg,
		fileRefs: fileRefs,
		logger:   logger,
	}
}

// Diff resolves both sides, compares them and optionally stores the result.
func (s *Service) Diff(ctx context.Context, req Request) (*Result, error) {
	left, leftLabel, err := s.resolve(ctx, "left", req.Left, req.LeftRef)
	if err != nil {
		return nil, err
	}
	right, rightLabel, err := s.resolve(ctx, "right", req.Right, req.RightRef)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if req.IgnoreDTStamp != nil {
		cfg.IgnoreDTStamp = *req.IgnoreDTStamp
	}

	pairs, err := reconcile.New(cfg, reconcile.WithLogger(s.logger)).Diff(left, right)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if pairs == nil {
		pairs = []reconcile.DiffPair{}
	}

	res := &Result{Stats: reconcile.Summarize(pairs), Pairs: pairs}

	if req.Save {
		if s.store == nil {
			return nil, ErrHistoryDisabled
		}
		rec, err := report.NewRecord(leftLabel, rightLabel, cfg.IgnoreDTStamp, pairs)
		if err != nil {
			return nil, err
		}
		if err := s.store.Save(ctx, rec); err != nil {
			return nil, err
		}
		res.ReportID = rec.ID
	}

	return res, nil
}

func (s *Service) resolve(ctx context.Context, side, inline, ref string) (*calendar.Document, string, error) {
	switch {
	case inline != "" && ref != "":
		return nil, "", fmt.Errorf("%w: %s and %s_ref are exclusive", ErrBadRequest, side, side)
	case inline != "":
		doc, err := calendar.Decode(strings.NewReader(inline))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrBadRequest, side, err)
		}
		return doc, "inline", nil
	case ref != "":
		parsed, err := source.Parse(ref)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		if parsed.Kind == source.KindStdin || (parsed.Kind == source.KindFile && !s.fileRefs) {
			return nil, "", fmt.Errorf("%w: %s references are not allowed over HTTP", ErrBadRequest, parsed.Kind)
		}
		doc, err := s.loader.Load(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		return doc, ref, nil
	default:
		return nil, "", fmt.Errorf("%w: %s calendar is missing", ErrBadRequest, side)
	}
}

// Reports lists stored reports, newest first.
func (s *Service) Reports(ctx context.Context, limit int) ([]report.Record, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.List(ctx, limit)
}

// Report returns one stored report.
func (s *Service) Report(ctx context.Context, id string) (*StoredReport, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pairs, err := rec.DiffPairs()
	if err != nil {
		return nil, err
	}
	return &StoredReport{Record: rec, Pairs: pairs}, nil
}
