package calendar

import (
	"encoding/json"
	"fmt"
)

type itemJSON struct {
	Name   string      `json:"name"`
	Fields []fieldJSON `json:"fields"`
}

type fieldJSON struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Values []valueJSON `json:"values,omitempty"`
	Items  []*Item     `json:"items,omitempty"`
}

type valueJSON struct {
	Value  string  `json:"value"`
	Params []Param `json:"params,omitempty"`
}

// MarshalJSON encodes the tree with fields in order. Value names are implied
// by their field.
func (it *Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{Name: it.Name, Fields: make([]fieldJSON, 0, len(it.fields))}
	for _, f := range it.fields {
		fj := fieldJSON{Name: f.Name, Kind: f.Kind.String(), Items: f.Items}
		for _, v := range f.Values {
			fj.Values = append(fj.Values, valueJSON{Value: v.Payload, Params: v.Params})
		}
		out.Fields = append(out.Fields, fj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tree written by MarshalJSON.
func (it *Item) UnmarshalJSON(data []byte) error {
	var in itemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*it = Item{Name: in.Name}
	for _, fj := range in.Fields {
		f := Field{Name: fj.Name}
		switch fj.Kind {
		case ScalarField.String():
			f.Kind = ScalarField
			for _, vj := range fj.Values {
				f.Values = append(f.Values, Value{Name: fj.Name, Payload: vj.Value, Params: vj.Params})
			}
		case ItemField.String():
			f.Kind = ItemField
			f.Items = fj.Items
		default:
			return fmt.Errorf("calendar: field %s has unknown kind %q", fj.Name, fj.Kind)
		}
		it.fields = append(it.fields, f)
	}
	return nil
}
