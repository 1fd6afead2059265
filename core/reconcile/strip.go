package reconcile

import "ics-diff/core/calendar"

// Strip returns a copy of the tree rooted at item with the configured noise
// parameters removed from every value and, when cfg.IgnoreDTStamp is set,
// DTSTAMP removed from every item. The input is not modified.
func Strip(item *calendar.Item, cfg Config) *calendar.Item {
	if item == nil {
		return nil
	}
	cfg = cfg.withDefaults()
	return strip(item, cfg)
}

func strip(item *calendar.Item, cfg Config) *calendar.Item {
	out := calendar.NewItem(item.Name)
	for _, f := range item.Fields() {
		if cfg.IgnoreDTStamp && f.Name == calendar.FieldDTStamp {
			continue
		}

		switch f.Kind {
		case calendar.ItemField:
			items := make([]*calendar.Item, len(f.Items))
			for i, child := range f.Items {
				items[i] = strip(child, cfg)
			}
			out.Set(calendar.Field{Name: f.Name, Kind: f.Kind, Items: items})
		default:
			values := make([]calendar.Value, len(f.Values))
			for i, v := range f.Values {
				values[i] = v.WithoutParams(cfg.NoiseParams...)
			}
			out.Set(calendar.Field{Name: f.Name, Kind: f.Kind, Values: values})
		}
	}
	return out
}

// StripDocument applies Strip to a whole document.
func StripDocument(doc *calendar.Document, cfg Config) *calendar.Document {
	if doc == nil {
		return nil
	}
	return calendar.NewDocument(Strip(doc.Root, cfg))
}
