// Package reconcile is the calendar differencing engine.
//
// It compares the top-level collections (VEVENT and VTODO by default) of two
// calendar documents and reports the minimal set of differences as DiffPairs:
// items present on one side only, and pairs of synthetic items carrying just
// the fields that differ for items present on both sides.
//
// # Architecture
//
// The engine consists of five small components:
//
// 1. Key builder: SortKey derives a composite string key (UID, zero-padded
//    SEQUENCE, canonical RECURRENCE-ID) used both to order a collection and to
//    decide whether two items denote the same thing.
//
// 2. Aligner: a greedy single-pass merge over two key-sorted lists, emitting
//    unmatched items and reconciling items whose keys are equal.
//
// 3. Pair reconciler: compares two same-key items field by field, recursing
//    into sub-components through the aligner.
//
// 4. Stripper: a copy-on-strip pass that removes noise parameters and,
//    optionally, DTSTAMP before comparison.
//
// 5. Engine: runs the above over every configured collection kind.
//
// Model-specific behavior (building synthetic items and deriving keys) is
// supplied through the Adapter interface rather than looked up globally.
//
// # Usage Example
//
//	engine := reconcile.New(reconcile.Config{IgnoreDTStamp: true},
//	    reconcile.WithLogger(logg))
//	pairs, err := engine.Diff(leftDoc, rightDoc)
//
// # Limitations
//
// Duplicate keys are matched first-come first-served in sorted order. This is
// not an optimal bipartite matching.
package reconcile
