package reconcile

import (
	"sort"

	"ics-diff/core/calendar"
)

// keyedItem caches an item's sort key for the duration of one alignment.
type keyedItem struct {
	key  string
	item *calendar.Item
}

// sortItems returns a stably sorted, keyed copy of items. Items with equal
// keys keep their input order.
func (e *Engine) sortItems(items []*calendar.Item) []keyedItem {
	keyed := e.keyItems(items)
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key < keyed[j].key
	})
	return keyed
}

func (e *Engine) keyItems(items []*calendar.Item) []keyedItem {
	keyed := make([]keyedItem, len(items))
	for i, it := range items {
		keyed[i] = keyedItem{key: e.adapter.SortKey(it), item: it}
	}
	return keyed
}

// Align merges two lists that are already sorted ascending by sort key.
// Unmatched items are emitted with a nil partner; items with equal keys are
// reconciled and emitted only when they differ. Duplicate keys are matched
// first-come first-served.
func (e *Engine) Align(left, right []*calendar.Item) []DiffPair {
	return e.align(e.keyItems(left), e.keyItems(right))
}

func (e *Engine) align(left, right []keyedItem) []DiffPair {
	var out []DiffPair
	r := 0

	for i, l := range left {
		for r < len(right) && right[r].key < l.key {
			out = append(out, DiffPair{Right: right[r].item})
			r++
		}

		if r >= len(right) {
			for _, rest := range left[i:] {
				out = append(out, DiffPair{Left: rest.item})
			}
			return out
		}

		if right[r].key == l.key {
			if pair, differs := e.reconcile(l.item, right[r].item); differs {
				out = append(out, pair)
			}
			r++
			continue
		}

		// right[r] sorts after l: l has no partner
		out = append(out, DiffPair{Left: l.item})
	}

	for ; r < len(right); r++ {
		out = append(out, DiffPair{Right: right[r].item})
	}
	return out
}
