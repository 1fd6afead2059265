package report

import (
	"bytes"
	"fmt"

	"ics-diff/core/reconcile"
)

// FormatStats returns a one-line summary such as
// "3 differences. 1 left only. 1 right only. 1 changed."
func FormatStats(s reconcile.Stats, color bool) string {
	p := newPalette(color)
	buf := &bytes.Buffer{}

	word := "differences"
	if s.Pairs == 1 {
		word = "difference"
	}
	pairsColor := p.neutral
	if s.Pairs > 0 {
		pairsColor = p.update
	}
	fmt.Fprintf(buf, "%s%d %s.%s", pairsColor, s.Pairs, word, p.close)
	fmt.Fprintf(buf, " %s%d left only.%s", p.delete, s.LeftOnly, p.close)
	fmt.Fprintf(buf, " %s%d right only.%s", p.insert, s.RightOnly, p.close)
	fmt.Fprintf(buf, " %s%d changed.%s", p.update, s.Changed, p.close)
	buf.WriteRune('\n')

	return buf.String()
}
