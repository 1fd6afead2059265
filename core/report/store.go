package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ics-diff/core/database"
	"ics-diff/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by Get for unknown report IDs.
var ErrNotFound = errors.New("report: not found")

// Record is one stored diff.
type Record struct {
	ID            string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	LeftSource    string    `gorm:"column:left_source;size:512" json:"left_source"`
	RightSource   string    `gorm:"column:right_source;size:512" json:"right_source"`
	IgnoreDTStamp bool      `gorm:"column:ignore_dtstamp" json:"ignore_dtstamp"`
	Pairs         int       `gorm:"column:pairs" json:"pairs"`
	LeftOnly      int       `gorm:"column:left_only" json:"left_only"`
	RightOnly     int       `gorm:"column:right_only" json:"right_only"`
	Changed       int       `gorm:"column:changed" json:"changed"`
	Body          string    `gorm:"column:body;type:text" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the GORM table name.
func (Record) TableName() string {
	return "diff_reports"
}

var recordColumns = []string{
	"id", "left_source", "right_source", "ignore_dtstamp",
	"pairs", "left_only", "right_only", "changed", "body", "created_at",
}

// NewRecord builds a record for a finished diff. The body is the canonical
// JSON of pairs.
func NewRecord(leftSource, rightSource string, ignoreDTStamp bool, pairs []reconcile.DiffPair) (*Record, error) {
	body, err := JSON(pairs)
	if err != nil {
		return nil, fmt.Errorf("encode pairs: %w", err)
	}
	s := reconcile.Summarize(pairs)
	return &Record{
		ID:            uuid.NewString(),
		LeftSource:    leftSource,
		RightSource:   rightSource,
		IgnoreDTStamp: ignoreDTStamp,
		Pairs:         s.Pairs,
		LeftOnly:      s.LeftOnly,
		RightOnly:     s.RightOnly,
		Changed:       s.Changed,
		Body:          string(body),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Stats returns the stored counts.
func (r *Record) Stats() reconcile.Stats {
	return reconcile.Stats{Pairs: r.Pairs, LeftOnly: r.LeftOnly, RightOnly: r.RightOnly, Changed: r.Changed}
}

// DiffPairs decodes the stored body.
func (r *Record) DiffPairs() ([]reconcile.DiffPair, error) {
	var pairs []reconcile.DiffPair
	if err := json.Unmarshal([]byte(r.Body), &pairs); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", r.ID, err)
	}
	return pairs, nil
}

// Store persists records through GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the table and checks the resulting schema.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate %s: %w", Record{}.TableName(), err)
	}

	missing, err := database.MissingColumns(db, Record{}.TableName(), recordColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", Record{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// Save inserts r.
func (s *Store) Save(ctx context.Context, r *Record) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// List returns the newest records first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	var records []Record
	q := s.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return records, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	var r Record
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return &r, nil
}
