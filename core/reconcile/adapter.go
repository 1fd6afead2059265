package reconcile

import "ics-diff/core/calendar"

// Adapter supplies the model-specific capabilities the engine needs: building
// empty synthetic items and deriving sort keys.
type Adapter interface {
	// Name returns the adapter name, used in logs.
	Name() string

	// NewItem returns an empty item of the given kind. The reconciler uses it
	// to build the synthetic items that carry differing fields.
	NewItem(kind string) *calendar.Item

	// SortKey returns the composite key used to order items and to decide
	// whether two items denote the same thing.
	SortKey(item *calendar.Item) string
}

// CalendarAdapter is the iCalendar adapter: keys follow UID, SEQUENCE and
// RECURRENCE-ID.
type CalendarAdapter struct {
	// SequenceWidth is the zero-padding width of SEQUENCE.
	SequenceWidth int
}

// NewCalendarAdapter creates a CalendarAdapter. A non-positive width selects
// DefaultSequenceWidth.
func NewCalendarAdapter(sequenceWidth int) *CalendarAdapter {
	if sequenceWidth <= 0 {
		sequenceWidth = DefaultSequenceWidth
	}
	return &CalendarAdapter{SequenceWidth: sequenceWidth}
}

// Name returns "icalendar".
func (a *CalendarAdapter) Name() string {
	return "icalendar"
}

// NewItem returns an empty item.
func (a *CalendarAdapter) NewItem(kind string) *calendar.Item {
	return calendar.NewItem(kind)
}

// SortKey implements Adapter.
func (a *CalendarAdapter) SortKey(item *calendar.Item) string {
	return SortKey(item, a.SequenceWidth)
}
