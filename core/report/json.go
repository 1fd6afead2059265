package report

import (
	"ics-diff/core/reconcile"

	"github.com/openbindings/openbindings-go/canonicaljson"
)

// JSON encodes pairs as canonical JSON. An empty diff encodes as [].
func JSON(pairs []reconcile.DiffPair) ([]byte, error) {
	if pairs == nil {
		pairs = []reconcile.DiffPair{}
	}
	return canonicaljson.Marshal(pairs)
}
