package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ics-diff/core/calendar"
	"ics-diff/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(lines ...string) *calendar.Item {
	it := calendar.NewItem(calendar.KindEvent)
	for _, l := range lines {
		name, payload, _ := strings.Cut(l, ":")
		it.Add(calendar.NewValue(name, payload))
	}
	return it
}

func samplePairs() []reconcile.DiffPair {
	alarm := calendar.NewItem("VALARM")
	alarm.Add(calendar.NewValue("TRIGGER", "-PT15M"))
	changed := event("UID:E1", "SUMMARY:Lunch")
	changed.AddItem(alarm)

	return []reconcile.DiffPair{
		{Left: changed, Right: event("UID:E1", "SUMMARY:Dinner")},
		{Right: event("UID:E2")},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, samplePairs(), false))

	want := `<<<<<<<<<<<<<<<
VEVENT
  UID: E1
  SUMMARY: Lunch
  VALARM
    TRIGGER: -PT15M
===============
VEVENT
  UID: E1
  SUMMARY: Dinner
>>>>>>>>>>>>>>>

<<<<<<<<<<<<<<<
===============
VEVENT
  UID: E2
>>>>>>>>>>>>>>>

`
	assert.Equal(t, want, buf.String())
}

func TestText_Empty(t *testing.T) {
	s, err := TextString(nil, true)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestText_ParamsAndColor(t *testing.T) {
	ev := calendar.NewItem(calendar.KindEvent)
	ev.Add(calendar.NewValue("DTSTART", "20240105T100000").WithParam("TZID", "Europe/Paris"))
	ev.Add(calendar.NewValue("CATEGORIES", "a").WithParam("X-ORDER", "1", "2"))

	s, err := TextString([]reconcile.DiffPair{{Left: ev}}, true)
	require.NoError(t, err)
	assert.Contains(t, s, "\x1b[31mDTSTART;TZID=Europe/Paris: 20240105T100000\x1b[0m")
	assert.Contains(t, s, "CATEGORIES;X-ORDER=1,2: a")
	assert.Contains(t, s, "\x1b[37m"+leftMarker+"\x1b[0m")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestText_WriteError(t *testing.T) {
	err := Text(failingWriter{}, samplePairs(), false)
	assert.EqualError(t, err, "closed pipe")
}

func TestPrettyItem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrettyItem(&buf, event("UID:E1")))
	assert.Equal(t, "VEVENT\n  UID: E1\n", buf.String())
}

func TestJSON(t *testing.T) {
	data, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = JSON([]reconcile.DiffPair{{Right: event("UID:E2")}})
	require.NoError(t, err)
	// canonical form sorts keys and drops whitespace
	assert.Equal(t,
		`[{"left":null,"right":{"fields":[{"kind":"scalar","name":"UID","values":[{"value":"E2"}]}],"name":"VEVENT"}}]`,
		string(data))

	again, err := JSON([]reconcile.DiffPair{{Right: event("UID:E2")}})
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name  string
		stats reconcile.Stats
		want  string
	}{
		{"None", reconcile.Stats{}, "0 differences. 0 left only. 0 right only. 0 changed.\n"},
		{"One", reconcile.Stats{Pairs: 1, Changed: 1}, "1 difference. 0 left only. 0 right only. 1 changed.\n"},
		{"Mixed", reconcile.Stats{Pairs: 3, LeftOnly: 1, RightOnly: 1, Changed: 1}, "3 differences. 1 left only. 1 right only. 1 changed.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStats(tt.stats, false))
		})
	}

	colored := FormatStats(reconcile.Stats{Pairs: 2, LeftOnly: 2}, true)
	assert.Contains(t, colored, "\x1b[31m2 left only.\x1b[0m")
}
