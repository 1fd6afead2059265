package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyField is returned by Validate when a field holds no entries.
	ErrEmptyField = errors.New("calendar: field has no entries")
	// ErrMixedField is returned by Validate when a field mixes values and items.
	ErrMixedField = errors.New("calendar: field mixes values and sub-items")
	// ErrFieldKind is returned by Validate when a field has no valid kind tag.
	ErrFieldKind = errors.New("calendar: field has an unknown kind")
)

// FieldKind tags which variant a Field holds.
type FieldKind uint8

const (
	// ScalarField holds Values.
	ScalarField FieldKind = iota + 1
	// ItemField holds nested Items.
	ItemField
)

func (k FieldKind) String() string {
	switch k {
	case ScalarField:
		return "scalar"
	case ItemField:
		return "items"
	default:
		return "unknown"
	}
}

// Field is every entry stored under one name on an Item.
type Field struct {
	Name   string
	Kind   FieldKind
	Values []Value
	Items  []*Item
}

// Len returns the number of entries in the field.
func (f Field) Len() int {
	if f.Kind == ItemField {
		return len(f.Items)
	}
	return len(f.Values)
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := Field{Name: f.Name, Kind: f.Kind}
	if f.Values != nil {
		out.Values = make([]Value, len(f.Values))
		for i, v := range f.Values {
			out.Values[i] = v.Clone()
		}
	}
	if f.Items != nil {
		out.Items = make([]*Item, len(f.Items))
		for i, it := range f.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// Item is a node in a calendar tree: a VEVENT, a VTODO, a VALARM and so on.
type Item struct {
	Name   string
	fields []Field
}

// NewItem creates an empty item of the given kind.
func NewItem(name string) *Item {
	return &Item{Name: name}
}

// Fields returns the item's fields in order. The slice must not be modified.
func (it *Item) Fields() []Field {
	return it.fields
}

func (it *Item) index(name string) int {
	for i := range it.fields {
		if it.fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Field returns the named field.
func (it *Item) Field(name string) (Field, bool) {
	if i := it.index(name); i >= 0 {
		return it.fields[i], true
	}
	return Field{}, false
}

// Has reports whether the named field is present.
func (it *Item) Has(name string) bool {
	return it.index(name) >= 0
}

// First returns the first value of a scalar field.
func (it *Item) First(name string) (Value, bool) {
	f, ok := it.Field(name)
	if !ok || f.Kind != ScalarField || len(f.Values) == 0 {
		return Value{}, false
	}
	return f.Values[0], true
}

// Add appends a value to the scalar field named v.Name, creating it when
// absent.
func (it *Item) Add(v Value) {
	if i := it.index(v.Name); i >= 0 {
		it.fields[i].Values = append(it.fields[i].Values, v)
		return
	}
	it.fields = append(it.fields, Field{Name: v.Name, Kind: ScalarField, Values: []Value{v}})
}

// AddItem appends a child to the item field named child.Name.
func (it *Item) AddItem(child *Item) {
	if i := it.index(child.Name); i >= 0 {
		it.fields[i].Items = append(it.fields[i].Items, child)
		return
	}
	it.fields = append(it.fields, Field{Name: child.Name, Kind: ItemField, Items: []*Item{child}})
}

// Set stores f, replacing any field with the same name in place.
func (it *Item) Set(f Field) {
	if i := it.index(f.Name); i >= 0 {
		it.fields[i] = f
		return
	}
	it.fields = append(it.fields, f)
}

// Remove deletes the named field and reports whether it existed.
func (it *Item) Remove(name string) bool {
	i := it.index(name)
	if i < 0 {
		return false
	}
	it.fields = append(it.fields[:i], it.fields[i+1:]...)
	return true
}

// Children returns the items held under name, or nil.
func (it *Item) Children(name string) []*Item {
	f, ok := it.Field(name)
	if !ok || f.Kind != ItemField {
		return nil
	}
	return f.Items
}

// Clone returns a deep copy of the tree rooted at it.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	out := &Item{Name: it.Name}
	if it.fields != nil {
		out.fields = make([]Field, len(it.fields))
		for i, f := range it.fields {
			out.fields[i] = f.Clone()
		}
	}
	return out
}

// Validate checks the structural invariants of the tree: every field holds at
// least one entry and only entries of its own kind.
func (it *Item) Validate() error {
	for _, f := range it.fields {
		switch {
		case f.Kind != ScalarField && f.Kind != ItemField:
			return fmt.Errorf("%w: %s.%s", ErrFieldKind, it.Name, f.Name)
		case len(f.Values) > 0 && len(f.Items) > 0:
			return fmt.Errorf("%w: %s.%s", ErrMixedField, it.Name, f.Name)
		case f.Kind == ScalarField && len(f.Items) > 0, f.Kind == ItemField && len(f.Values) > 0:
			return fmt.Errorf("%w: %s.%s is tagged %s", ErrMixedField, it.Name, f.Name, f.Kind)
		case f.Len() == 0:
			return fmt.Errorf("%w: %s.%s", ErrEmptyField, it.Name, f.Name)
		}
		for _, child := range f.Items {
			if child == nil {
				return fmt.Errorf("%w: %s.%s holds a nil item", ErrEmptyField, it.Name, f.Name)
			}
			if err := child.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
