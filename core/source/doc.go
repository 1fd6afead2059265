// Package source resolves calendar references into decoded documents.
//
// A reference is one of:
//
//	path/to/file.ics      a local file
//	-                     standard input
//	s3://bucket/key       an object in S3 or MinIO (s3:///key uses the default bucket)
//	git:<rev>:<path>      a file as of a revision of the configured git repository
//
// # Caching
//
// Loader keeps decoded documents for CacheTTLSeconds. Concurrent loads of the
// same reference are collapsed with singleflight so a burst of API requests
// reads the backend once. A TTL of 0 disables caching; stdin is never cached.
//
// # Usage
//
//	l := source.NewLoader(cfg.Source, source.WithStorage(client, cfg.Storage.Bucket))
//	doc, err := l.Load(ctx, "git:HEAD~1:team.ics")
package source
