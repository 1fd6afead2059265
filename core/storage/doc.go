// Package storage provides access to calendars held in object storage.
//
// It wraps the MinIO Go client behind a small Client interface so s3://
// sources can be mocked in unit tests (see core/storage/mocks). Both AWS S3
// and self-hosted MinIO are supported.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	data, err := storage.ReadObject(ctx, client, "calendars", "team.ics")
package storage
