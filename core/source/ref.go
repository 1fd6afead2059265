package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedRef is returned for references no backend understands.
	ErrUnsupportedRef = errors.New("source: unsupported reference")
	// ErrBackendUnavailable is returned when a reference needs a backend that
	// is not configured.
	ErrBackendUnavailable = errors.New("source: backend not configured")
)

// Kind identifies the backend of a reference.
type Kind string

const (
	KindFile  Kind = "file"
	KindStdin Kind = "stdin"
	KindS3    Kind = "s3"
	KindGit   Kind = "git"
)

// Ref is a parsed calendar reference.
type Ref struct {
	Kind Kind
	// Raw is the reference as given.
	Raw string
	// Path is the file path for file refs and the in-tree path for git refs.
	Path string
	// Bucket and Key locate s3 refs. Bucket may be empty.
	Bucket string
	Key    string
	// Rev is the git revision, anything go-git can resolve (HEAD~1, a tag, a hash).
	Rev string
}

// String returns the reference as given.
func (r Ref) String() string {
	return r.Raw
}

// Parse classifies a reference.
func Parse(raw string) (Ref, error) {
	ref := Ref{Raw: raw}

	switch {
	case strings.TrimSpace(raw) == "":
		return Ref{}, fmt.Errorf("%w: empty", ErrUnsupportedRef)

	case raw == "-":
		ref.Kind = KindStdin

	case strings.HasPrefix(raw, "s3://"):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(raw, "s3://"), "/")
		if key == "" {
			return Ref{}, fmt.Errorf("%w: %s has no object key", ErrUnsupportedRef, raw)
		}
		ref.Kind, ref.Bucket, ref.Key = KindS3, bucket, key

	case strings.HasPrefix(raw, "git:"):
		rev, path, ok := strings.Cut(strings.TrimPrefix(raw, "git:"), ":")
		if !ok || rev == "" || path == "" {
			return Ref{}, fmt.Errorf("%w: %s, want git:<rev>:<path>", ErrUnsupportedRef, raw)
		}
		ref.Kind, ref.Rev, ref.Path = KindGit, rev, path

	case strings.Contains(raw, "://"):
		return Ref{}, fmt.Errorf("%w: %s", ErrUnsupportedRef, raw)

	default:
		ref.Kind, ref.Path = KindFile, raw
	}

	return ref, nil
}
