package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ref
	}{
		{"File", "cal/team.ics", Ref{Kind: KindFile, Raw: "cal/team.ics", Path: "cal/team.ics"}},
		{"Stdin", "-", Ref{Kind: KindStdin, Raw: "-"}},
		{"S3", "s3://calendars/2024/team.ics", Ref{Kind: KindS3, Raw: "s3://calendars/2024/team.ics", Bucket: "calendars", Key: "2024/team.ics"}},
		{"S3DefaultBucket", "s3:///team.ics", Ref{Kind: KindS3, Raw: "s3:///team.ics", Key: "team.ics"}},
		{"Git", "git:HEAD~1:team.ics", Ref{Kind: KindGit, Raw: "git:HEAD~1:team.ics", Rev: "HEAD~1", Path: "team.ics"}},
		{"GitPathWithColon", "git:v1.0:a:b.ics", Ref{Kind: KindGit, Raw: "git:v1.0:a:b.ics", Rev: "v1.0", Path: "a:b.ics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, raw := range []string{"", "  ", "https://example.com/cal.ics", "s3://calendars", "s3://calendars/", "git:HEAD", "git::team.ics", "git:HEAD:"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedRef))
		})
	}
}
