package reconcile

import (
	"strings"

	"ics-diff/core/calendar"
	"ics-diff/core/utils"
)

// NoRecurrenceID sorts before every real RECURRENCE-ID in a key.
const NoRecurrenceID = "0000-00-00"

// SortKey builds the composite key of an item: UID (empty when absent),
// SEQUENCE zero-padded to width (0 when absent) and the canonical
// RECURRENCE-ID (NoRecurrenceID when absent). The components are fixed-width
// or canonical so plain string comparison orders keys correctly.
func SortKey(item *calendar.Item, width int) string {
	var b strings.Builder
	if uid, ok := item.First(calendar.FieldUID); ok {
		b.WriteString(uid.Payload)
	}

	seq := 0
	if v, ok := item.First(calendar.FieldSequence); ok {
		seq = utils.ToInt(v.Payload)
	}
	b.WriteString(utils.PadInt(seq, width))

	b.WriteString(recurrenceKey(item))
	return b.String()
}

func recurrenceKey(item *calendar.Item) string {
	v, ok := item.First(calendar.FieldRecurrenceID)
	if !ok {
		return NoRecurrenceID
	}
	t, dateOnly, err := v.Time()
	if err != nil {
		// unparsable values still have to key consistently on both sides
		return v.Payload
	}
	if dateOnly {
		return t.Format("2006-01-02")
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
