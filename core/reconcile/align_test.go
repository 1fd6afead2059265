package reconcile

import (
	"testing"

	"ics-diff/core/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign_EdgeCases(t *testing.T) {
	e := New(Config{})
	e1 := item(calendar.KindEvent, "UID:E1")
	e2 := item(calendar.KindEvent, "UID:E2")
	e3 := item(calendar.KindEvent, "UID:E3")

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, e.Align(nil, nil))
	})

	t.Run("left empty", func(t *testing.T) {
		requirePairs(t, []DiffPair{{Right: e1}, {Right: e2}}, e.Align(nil, []*calendar.Item{e1, e2}))
	})

	t.Run("right empty", func(t *testing.T) {
		requirePairs(t, []DiffPair{{Left: e1}, {Left: e2}}, e.Align([]*calendar.Item{e1, e2}, nil))
	})

	t.Run("interleaved", func(t *testing.T) {
		got := e.Align([]*calendar.Item{e1, e3}, []*calendar.Item{e2})
		requirePairs(t, []DiffPair{{Left: e1}, {Right: e2}, {Left: e3}}, got)
	})

	t.Run("equal matches suppressed", func(t *testing.T) {
		got := e.Align([]*calendar.Item{e1, e2}, []*calendar.Item{e1.Clone(), e2.Clone()})
		assert.Empty(t, got)
	})
}

func TestAlign_DuplicateKeys(t *testing.T) {
	e := New(Config{})
	a := item(calendar.KindEvent, "UID:E1", "SUMMARY:A")
	b := item(calendar.KindEvent, "UID:E1", "SUMMARY:B")

	// first left matches first right; the second left has no partner left
	got := e.Align([]*calendar.Item{a, b}, []*calendar.Item{a.Clone()})
	requirePairs(t, []DiffPair{{Left: b}}, got)

	got = e.Align([]*calendar.Item{a}, []*calendar.Item{b, a.Clone()})
	require.Len(t, got, 2)
	assert.Equal(t, PairChanged, got[0].Kind())
	assert.Equal(t, PairRightOnly, got[1].Kind())
}

func TestReconcile_CategoryMismatch(t *testing.T) {
	e := New(Config{})
	left := item(calendar.KindEvent, "UID:E1", "X-THING:scalar")
	right := item(calendar.KindEvent, "UID:E1")
	right.Set(calendar.Field{Name: "X-THING", Kind: calendar.ItemField, Items: []*calendar.Item{item("X-THING", "A:1")}})

	pair, differs := e.reconcile(left, right)
	require.True(t, differs)

	lf, ok := pair.Left.Field("X-THING")
	require.True(t, ok)
	assert.Equal(t, calendar.ScalarField, lf.Kind)

	rf, ok := pair.Right.Field("X-THING")
	require.True(t, ok)
	assert.Equal(t, calendar.ItemField, rf.Kind)
	assert.Len(t, rf.Items, 1)
}

func TestReconcile_SyntheticItemsAreCopies(t *testing.T) {
	e := New(Config{})
	left := item(calendar.KindEvent, "UID:E1", "SUMMARY:Lunch")
	right := item(calendar.KindEvent, "UID:E1", "SUMMARY:Dinner")

	pair, differs := e.reconcile(left, right)
	require.True(t, differs)
	assert.NotSame(t, left, pair.Left)

	pair.Left.Set(calendar.Field{Name: "SUMMARY", Kind: calendar.ScalarField, Values: []calendar.Value{calendar.NewValue("SUMMARY", "changed")}})
	summary, _ := left.First("SUMMARY")
	assert.Equal(t, "Lunch", summary.Payload)
}
