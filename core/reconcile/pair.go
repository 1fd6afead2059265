package reconcile

import "ics-diff/core/calendar"

// fieldDiff records what one field name looks like on each side. A zero
// Field (Len 0) means the side contributes nothing.
type fieldDiff struct {
	left, right calendar.Field
}

// reconcile compares two items that share a sort key. It returns false when
// they are identical; otherwise it returns two synthetic items holding the UID
// and the differing fields of each side.
func (e *Engine) reconcile(left, right *calendar.Item) (DiffPair, bool) {
	var diffs []fieldDiff

	for _, lf := range left.Fields() {
		rf, ok := right.Field(lf.Name)
		switch {
		case !ok:
			diffs = append(diffs, fieldDiff{left: lf})
		case lf.Kind != rf.Kind:
			diffs = append(diffs, fieldDiff{left: lf, right: rf})
		case lf.Kind == calendar.ItemField:
			if pairs := e.align(e.sortItems(lf.Items), e.sortItems(rf.Items)); len(pairs) > 0 {
				diffs = append(diffs, splitPairs(lf.Name, pairs))
			}
		case !calendar.EqualValues(lf.Values, rf.Values):
			diffs = append(diffs, fieldDiff{left: lf, right: rf})
		}
	}

	for _, rf := range right.Fields() {
		if !left.Has(rf.Name) {
			diffs = append(diffs, fieldDiff{right: rf})
		}
	}

	if len(diffs) == 0 {
		return DiffPair{}, false
	}

	l := e.adapter.NewItem(left.Name)
	r := e.adapter.NewItem(left.Name)

	// the UID is carried even though it is equal so both halves can be
	// correlated by a reader
	if uid, ok := left.First(calendar.FieldUID); ok {
		l.Add(calendar.NewValue(uid.Name, uid.Payload))
		r.Add(calendar.NewValue(uid.Name, uid.Payload))
	}

	for _, d := range diffs {
		if d.left.Len() > 0 {
			l.Set(d.left.Clone())
		}
		if d.right.Len() > 0 {
			r.Set(d.right.Clone())
		}
	}

	return DiffPair{Left: l, Right: r}, true
}

// splitPairs turns aligned sub-item pairs into one field per side, dropping
// absent partners.
func splitPairs(name string, pairs []DiffPair) fieldDiff {
	d := fieldDiff{
		left:  calendar.Field{Name: name, Kind: calendar.ItemField},
		right: calendar.Field{Name: name, Kind: calendar.ItemField},
	}
	for _, p := range pairs {
		if p.Left != nil {
			d.left.Items = append(d.left.Items, p.Left)
		}
		if p.Right != nil {
			d.right.Items = append(d.right.Items, p.Right)
		}
	}
	return d
}
