package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE diff_reports (id TEXT PRIMARY KEY, left_source TEXT, pairs INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "diff_reports")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "integer", colMap["pairs"])

	// PRAGMA table_info returns an empty result for unknown tables
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE diff_reports (id TEXT, pairs INTEGER)").Error)

	missing, err := MissingColumns(db, "diff_reports", []string{"id", "PAIRS", "body"})
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, missing)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
		AddRow("Pairs", "BIGINT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `diff_reports`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "diff_reports")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
