// Package database handles database connections and schema inspection for the
// report history.
//
// It wraps GORM and selects the MySQL or SQLite dialector from configuration.
// SQLite is the default so a single binary can keep history without a server.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live schema so callers can check
// that a migration produced the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "diff_reports", []string{"id"})
package database
