// Package config provides configuration management for ics-diff.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults come from the `default` struct tags of each section, so every
// key is registered and can be overridden by its environment variable
// (diff.ignore_dtstamp is DIFF_IGNORE_DTSTAMP).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, body limit
//   - Storage: S3/MinIO credentials for s3:// sources
//   - Log: level and format
//   - Database: report history (sqlite or mysql)
//   - Diff: DTSTAMP handling, noise parameters, compared collections
//   - Source: git repository and cache TTL
//
// Command-line flags override the loaded values.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	engine := reconcile.New(cfg.Diff)
package config
