package reconcile

import (
	"testing"

	"ics-diff/core/calendar"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisyEvent() *calendar.Item {
	ev := calendar.NewItem(calendar.KindEvent)
	ev.Add(calendar.NewValue(calendar.FieldUID, "E1"))
	ev.Add(calendar.NewValue(calendar.FieldDTStamp, "20240101T000000Z"))
	ev.Add(calendar.NewValue("DTSTART", "20240105T100000").
		WithParam("TZID", "Europe/Paris").
		WithParam(DefaultNoiseParam, "Paris"))

	alarm := calendar.NewItem("VALARM")
	alarm.Add(calendar.NewValue(calendar.FieldDTStamp, "20240101T000000Z"))
	alarm.Add(calendar.NewValue("TRIGGER", "-PT15M").WithParam(DefaultNoiseParam, "x"))
	ev.AddItem(alarm)
	return ev
}

func TestStrip_RemovesNoise(t *testing.T) {
	out := Strip(noisyEvent(), Config{})

	start, ok := out.First("DTSTART")
	require.True(t, ok)
	assert.False(t, start.HasParam(DefaultNoiseParam))
	assert.True(t, start.HasParam("TZID"))

	assert.True(t, out.Has(calendar.FieldDTStamp), "DTSTAMP kept unless ignored")

	alarm := out.Children("VALARM")[0]
	trigger, _ := alarm.First("TRIGGER")
	assert.False(t, trigger.HasParam(DefaultNoiseParam), "nested items are stripped")
}

func TestStrip_IgnoreDTStamp(t *testing.T) {
	out := Strip(noisyEvent(), Config{IgnoreDTStamp: true})
	assert.False(t, out.Has(calendar.FieldDTStamp))
	assert.False(t, out.Children("VALARM")[0].Has(calendar.FieldDTStamp))
}

func TestStrip_DoesNotMutateInput(t *testing.T) {
	in := noisyEvent()
	before := in.Clone()

	_ = Strip(in, Config{IgnoreDTStamp: true})

	if diff := cmp.Diff(before, in, itemCmp); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

func TestStrip_Idempotent(t *testing.T) {
	cfg := Config{IgnoreDTStamp: true}
	once := Strip(noisyEvent(), cfg)
	twice := Strip(once, cfg)

	if diff := cmp.Diff(once, twice, itemCmp); diff != "" {
		t.Fatalf("second strip changed the tree (-once +twice):\n%s", diff)
	}
}

func TestStrip_Nil(t *testing.T) {
	assert.Nil(t, Strip(nil, Config{}))
	assert.Nil(t, StripDocument(nil, Config{}))
}

func TestStrip_EmptyNoiseList(t *testing.T) {
	out := Strip(noisyEvent(), Config{NoiseParams: []string{}})
	start, _ := out.First("DTSTART")
	assert.True(t, start.HasParam(DefaultNoiseParam), "explicit empty list strips nothing")
}
