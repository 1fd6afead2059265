package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"ics-diff/core/database"
	"ics-diff/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	s := NewStore(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func setupMockDB(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("a.ics", "b.ics", true, samplePairs())
	require.NoError(t, err)

	assert.Len(t, r.ID, 36)
	assert.Equal(t, reconcile.Stats{Pairs: 2, RightOnly: 1, Changed: 1}, r.Stats())
	assert.True(t, r.IgnoreDTStamp)

	pairs, err := r.DiffPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[1].Left)

	// the decoded pairs render exactly like the originals
	want, _ := TextString(samplePairs(), false)
	got, _ := TextString(pairs, false)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendering mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := setupSQLite(t)
	ctx := context.Background()

	older, err := NewRecord("a.ics", "b.ics", false, samplePairs())
	require.NoError(t, err)
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer, err := NewRecord("git:HEAD~1:a.ics", "git:HEAD:a.ics", true, nil)
	require.NoError(t, err)
	newer.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	list, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	list, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := s.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.Body, got.Body)
	assert.Equal(t, "b.ics", got.RightSource)

	_, err = s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Migrate_Idempotent(t *testing.T) {
	s := setupSQLite(t)
	assert.NoError(t, s.Migrate(context.Background()))
}

func TestStore_SaveError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `diff_reports`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	r, err := NewRecord("a.ics", "b.ics", false, nil)
	require.NoError(t, err)

	err = s.Save(context.Background(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `diff_reports`").WillReturnError(errors.New("connection reset"))

	_, err := s.Get(context.Background(), "id-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestStore_ListError(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `diff_reports` ORDER BY created_at desc").WillReturnError(errors.New("timeout"))

	_, err := s.List(context.Background(), 0)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
