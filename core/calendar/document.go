package calendar

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emersion/go-ical"
)

// Well-known kind and field names.
const (
	KindCalendar = ical.CompCalendar
	KindEvent    = ical.CompEvent
	KindToDo     = ical.CompToDo

	FieldUID          = ical.PropUID
	FieldSequence     = ical.PropSequence
	FieldRecurrenceID = ical.PropRecurrenceID
	FieldDTStamp      = ical.PropDateTimeStamp
)

// Document is a decoded calendar.
type Document struct {
	Root *Item
}

// NewDocument creates a document around root.
func NewDocument(root *Item) *Document {
	return &Document{Root: root}
}

// Collection returns the top-level items of the given kind. A missing
// collection is empty, not an error.
func (d *Document) Collection(kind string) []*Item {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Children(kind)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{Root: d.Root.Clone()}
}

// Decode reads the first calendar from r.
func Decode(r io.Reader) (*Document, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("calendar: no VCALENDAR found")
	}
	if err != nil {
		return nil, fmt.Errorf("calendar: decode: %w", err)
	}
	return NewDocument(FromComponent(cal.Component)), nil
}

// FromComponent converts a go-ical component tree into an Item tree.
func FromComponent(c *ical.Component) *Item {
	item := NewItem(strings.ToUpper(c.Name))

	names := make([]string, 0, len(c.Props))
	for name := range c.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, p := range c.Props[name] {
			item.Add(fromProp(strings.ToUpper(name), p))
		}
	}
	for _, child := range c.Children {
		item.AddItem(FromComponent(child))
	}
	return item
}

func fromProp(name string, p ical.Prop) Value {
	v := Value{Name: name, Payload: p.Value}
	if len(p.Params) == 0 {
		return v
	}
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.Params = append(v.Params, Param{Name: strings.ToUpper(k), Values: append([]string(nil), p.Params[k]...)})
	}
	return v
}
