package reconcile

import (
	"strings"

	"ics-diff/core/calendar"
)

// DefaultNoiseParam is the bookkeeping parameter stripped before comparison.
const DefaultNoiseParam = "X-VOBJ-ORIGINAL-TZID"

// DefaultSequenceWidth is the zero-padding width of SEQUENCE in sort keys.
const DefaultSequenceWidth = 5

// Config controls a diff run.
type Config struct {
	// IgnoreDTStamp drops DTSTAMP from both trees before comparison.
	IgnoreDTStamp bool `mapstructure:"ignore_dtstamp" default:"false"`
	// SequenceWidth is the zero-padding width used for SEQUENCE in sort keys.
	SequenceWidth int `mapstructure:"sequence_width" default:"5"`
	// NoiseParams are parameter names removed from every value.
	NoiseParams []string `mapstructure:"noise_params" default:"X-VOBJ-ORIGINAL-TZID"`
	// Collections are the top-level kinds compared, in output order.
	Collections []string `mapstructure:"collections" default:"VEVENT,VTODO"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.SequenceWidth <= 0 {
		c.SequenceWidth = DefaultSequenceWidth
	}
	if c.NoiseParams == nil {
		c.NoiseParams = []string{DefaultNoiseParam}
	}
	if len(c.Collections) == 0 {
		c.Collections = []string{calendar.KindEvent, calendar.KindToDo}
	}
	kinds := make([]string, 0, len(c.Collections))
	for _, k := range c.Collections {
		if k = strings.ToUpper(strings.TrimSpace(k)); k != "" {
			kinds = append(kinds, k)
		}
	}
	c.Collections = kinds
	return c
}

// PairKind classifies a DiffPair.
type PairKind string

const (
	// PairLeftOnly means the item exists only in the left document.
	PairLeftOnly PairKind = "left_only"
	// PairRightOnly means the item exists only in the right document.
	PairRightOnly PairKind = "right_only"
	// PairChanged means both documents hold the item with differing fields.
	PairChanged PairKind = "changed"
)

// DiffPair is one reported difference. A nil side means the item did not
// exist there.
type DiffPair struct {
	Left  *calendar.Item `json:"left"`
	Right *calendar.Item `json:"right"`
}

// Kind classifies the pair.
func (p DiffPair) Kind() PairKind {
	switch {
	case p.Left != nil && p.Right != nil:
		return PairChanged
	case p.Left != nil:
		return PairLeftOnly
	default:
		return PairRightOnly
	}
}

// Swap returns the mirror image of the pair.
func (p DiffPair) Swap() DiffPair {
	return DiffPair{Left: p.Right, Right: p.Left}
}

// Stats provides aggregate counts for a diff.
type Stats struct {
	// Pairs is the total number of reported pairs.
	Pairs int `json:"pairs"`
	// LeftOnly counts items found only in the left document.
	LeftOnly int `json:"left_only"`
	// RightOnly counts items found only in the right document.
	RightOnly int `json:"right_only"`
	// Changed counts items present on both sides with differing fields.
	Changed int `json:"changed"`
}

// Summarize counts pairs by kind.
func Summarize(pairs []DiffPair) Stats {
	s := Stats{Pairs: len(pairs)}
	for _, p := range pairs {
		switch p.Kind() {
		case PairChanged:
			s.Changed++
		case PairLeftOnly:
			s.LeftOnly++
		case PairRightOnly:
			s.RightOnly++
		}
	}
	return s
}
