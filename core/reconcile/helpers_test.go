package reconcile

import (
	"strings"
	"testing"

	"ics-diff/core/calendar"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// parse wraps body in a VCALENDAR and decodes it.
func parse(t *testing.T, body string) *calendar.Document {
	t.Helper()
	src := "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//ics-diff//test//EN\n" + body + "END:VCALENDAR\n"
	doc, err := calendar.Decode(strings.NewReader(strings.ReplaceAll(src, "\n", "\r\n")))
	require.NoError(t, err)
	return doc
}

// item builds an item from NAME:payload lines.
func item(kind string, lines ...string) *calendar.Item {
	it := calendar.NewItem(kind)
	for _, l := range lines {
		name, payload, _ := strings.Cut(l, ":")
		it.Add(calendar.NewValue(name, payload))
	}
	return it
}

var itemCmp = cmp.Options{cmp.AllowUnexported(calendar.Item{}), cmpopts.EquateEmpty()}

func requirePairs(t *testing.T, want, got []DiffPair) {
	t.Helper()
	if diff := cmp.Diff(want, got, itemCmp); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
}
