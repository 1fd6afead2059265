package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"ics-diff/core/calendar"
	"ics-diff/core/storage"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cacheEntry is a decoded document and when it was loaded.
type cacheEntry struct {
	doc   *calendar.Document
	built time.Time
	ttl   time.Duration
}

// IsExpired returns true if the entry has outlived its TTL.
func (e *cacheEntry) IsExpired() bool {
	if e.ttl == 0 {
		return true
	}
	return time.Since(e.built) > e.ttl
}

// Loader fetches and decodes calendar references. It is safe for concurrent
// use.
type Loader struct {
	cfg    Config
	client storage.Client
	bucket string
	stdin  io.Reader
	logger *zap.Logger

	mu     sync.RWMutex
	caches map[string]*cacheEntry
	sf     singleflight.Group
}

// Option configures a Loader.
type Option func(*Loader)

// WithStorage enables s3:// references. bucket is used when a reference
// omits one.
func WithStorage(client storage.Client, bucket string) Option {
	return func(l *Loader) {
		l.client = client
		l.bucket = bucket
	}
}

// WithStdin replaces os.Stdin for the "-" reference.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(cfg Config, opts ...Option) *Loader {
	if cfg.GitRepo == "" {
		cfg.GitRepo = "."
	}
	l := &Loader{
		cfg:    cfg,
		stdin:  os.Stdin,
		logger: zap.NewNop(),
		caches: make(map[string]*cacheEntry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) ttl() time.Duration {
	return time.Duration(l.cfg.CacheTTLSeconds) * time.Second
}

// Load resolves raw and decodes it. Cached documents are returned as copies.
func (l *Loader) Load(ctx context.Context, raw string) (*calendar.Document, error) {
	ref, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if ref.Kind == KindStdin || l.ttl() == 0 {
		return l.fetch(ctx, ref)
	}

	// Fast path
	l.mu.RLock()
	entry, exists := l.caches[ref.Raw]
	l.mu.RUnlock()
	if exists && !entry.IsExpired() {
		l.logger.Debug("Source cache hit", zap.String("ref", ref.Raw))
		return entry.doc.Clone(), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Waiters share the fetch, so one caller going away must not cancel it
	flightCtx := context.WithoutCancel(ctx)
	result, err, _ := l.sf.Do(ref.Raw, func() (interface{}, error) {
		// Double-check inside the flight
		l.mu.RLock()
		entry, exists := l.caches[ref.Raw]
		l.mu.RUnlock()
		if exists && !entry.IsExpired() {
			return entry, nil
		}

		doc, err := l.fetch(flightCtx, ref)
		if err != nil {
			return nil, err
		}

		entry = &cacheEntry{doc: doc, built: time.Now(), ttl: l.ttl()}
		l.mu.Lock()
		l.caches[ref.Raw] = entry
		l.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result.(*cacheEntry).doc.Clone(), nil
}

// Invalidate drops the cached document for raw.
func (l *Loader) Invalidate(raw string) {
	l.mu.Lock()
	delete(l.caches, raw)
	l.mu.Unlock()
}

func (l *Loader) fetch(ctx context.Context, ref Ref) (*calendar.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := l.open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := calendar.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Raw, err)
	}

	l.logger.Debug("Loaded source",
		zap.String("ref", ref.Raw),
		zap.String("kind", string(ref.Kind)),
	)
	return doc, nil
}

func (l *Loader) open(ctx context.Context, ref Ref) (io.ReadCloser, error) {
	switch ref.Kind {
	case KindStdin:
		return io.NopCloser(l.stdin), nil

	case KindFile:
		f, err := os.Open(ref.Path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", ref.Path, err)
		}
		return f, nil

	case KindS3:
		if l.client == nil {
			return nil, fmt.Errorf("%w: %s needs object storage", ErrBackendUnavailable, ref.Raw)
		}
		bucket := ref.Bucket
		if bucket == "" {
			bucket = l.bucket
		}
		data, err := storage.ReadObject(ctx, l.client, bucket, ref.Key)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil

	case KindGit:
		return l.openGit(ref)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedRef, ref.Raw)
}

func (l *Loader) openGit(ref Ref) (io.ReadCloser, error) {
	repo, err := gogit.PlainOpenWithOptions(l.cfg.GitRepo, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: open repository %s: %v", ErrBackendUnavailable, ref.Raw, l.cfg.GitRepo, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref.Rev))
	if err != nil {
		return nil, fmt.Errorf("%s: resolve %s: %w", ref.Raw, ref.Rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("%s: commit %s: %w", ref.Raw, hash, err)
	}

	file, err := commit.File(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Raw, err)
	}

	return file.Reader()
}
