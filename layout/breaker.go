package layout

import "github.com/go-text/typesetting/segmenter"

// LineMode selects how a text element breaks its lines.
type LineMode uint8

const (
	// LineSingle keeps all text on one line.
	LineSingle LineMode = iota
	// LineWrap wraps text at Unicode line break opportunities.
	LineWrap
)

// String returns the string representation of the line mode.
func (m LineMode) String() string {
	switch m {
	case LineSingle:
		return "Single"
	case LineWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// Breaker decides candidate break points in a text run.
type Breaker uint8

const (
	// BreakerNone never breaks.
	BreakerNone Breaker = iota
	// BreakerUnicode breaks at UAX #14 opportunities.
	BreakerUnicode
)

// BreakerFor returns the line breaker used by a line mode.
func BreakerFor(m LineMode) Breaker {
	if m == LineWrap {
		return BreakerUnicode
	}
	return BreakerNone
}

// Break is a line break opportunity before the rune at Offset.
type Break struct {
	Offset    int
	Mandatory bool
}

// Breaks returns the break opportunities of text in ascending order.
// The end of text is not reported unless the text ends with a mandatory break.
func (b Breaker) Breaks(text []rune) []Break {
	if b != BreakerUnicode || len(text) == 0 {
		return nil
	}

	var seg segmenter.Segmenter
	seg.Init(text)
	iter := seg.LineIterator()

	var breaks []Break
	for iter.Next() {
		line := iter.Line()
		end := line.Offset + len(line.Text)
		if end >= len(text) {
			// Every text ends with a break; only a trailing newline starts a line.
			if isHardBreak(text[len(text)-1]) {
				breaks = append(breaks, Break{Offset: len(text), Mandatory: true})
			}
			break
		}
		breaks = append(breaks, Break{Offset: end, Mandatory: line.IsMandatoryBreak})
	}
	return breaks
}

// isHardBreak reports whether r is a UAX #14 mandatory break character.
func isHardBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
