package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"ics-diff/core/calendar"
	"ics-diff/core/reconcile"
)

const (
	leftMarker  = "<<<<<<<<<<<<<<<"
	sepMarker   = "==============="
	rightMarker = ">>>>>>>>>>>>>>>"
)

// palette holds ANSI escapes; the zero value prints no colour.
type palette struct {
	neutral, insert, delete, update, close string
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{
		neutral: "\x1b[37m",
		insert:  "\x1b[32m",
		delete:  "\x1b[31m",
		update:  "\x1b[34m",
		close:   "\x1b[0m",
	}
}

// Text writes one marker block per pair. An absent side leaves its half of
// the block empty. Left content is coloured as removed, right as added.
func Text(w io.Writer, pairs []reconcile.DiffPair, color bool) error {
	p := newPalette(color)
	buf := &bytes.Buffer{}

	for _, pair := range pairs {
		fmt.Fprintf(buf, "%s%s%s\n", p.neutral, leftMarker, p.close)
		writeItem(buf, pair.Left, 0, p.delete, p.close)
		fmt.Fprintf(buf, "%s%s%s\n", p.neutral, sepMarker, p.close)
		writeItem(buf, pair.Right, 0, p.insert, p.close)
		fmt.Fprintf(buf, "%s%s%s\n\n", p.neutral, rightMarker, p.close)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// TextString is Text into a string.
func TextString(pairs []reconcile.DiffPair, color bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := Text(buf, pairs, color); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrettyItem writes a single item tree without markers.
func PrettyItem(w io.Writer, item *calendar.Item) error {
	buf := &bytes.Buffer{}
	writeItem(buf, item, 0, "", "")
	_, err := w.Write(buf.Bytes())
	return err
}

func writeItem(buf *bytes.Buffer, item *calendar.Item, indent int, open, close string) {
	if item == nil {
		return
	}
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%s%s%s%s\n", pad, open, item.Name, close)

	for _, f := range item.Fields() {
		if f.Kind == calendar.ItemField {
			for _, child := range f.Items {
				writeItem(buf, child, indent+1, open, close)
			}
			continue
		}
		for _, v := range f.Values {
			fmt.Fprintf(buf, "%s  %s%s%s\n", pad, open, contentLine(v), close)
		}
	}
}

// contentLine renders NAME;PARAM=A,B: payload.
func contentLine(v calendar.Value) string {
	var b strings.Builder
	b.WriteString(v.Name)
	for _, p := range v.Params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(strings.Join(p.Values, ","))
	}
	b.WriteString(": ")
	b.WriteString(v.Payload)
	return b.String()
}
