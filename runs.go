package uitext

import (
	"github.com/gogpu/uitext/layout"
)

// SelectedRange returns the byte range of the selection in text.
// Grapheme indices outside the text are clamped to it. ok is false when
// no grapheme is selected.
func SelectedRange(ed Editing, text string) (start, end int, ok bool) {
	if ed.HighlightVector == 0 {
		return 0, 0, false
	}
	offsets := layout.GraphemeOffsets(text)
	lo, hi := orderedRange(ed, len(offsets))

	start, end = byteAt(offsets, lo, len(text)), byteAt(offsets, hi, len(text))
	if start == end {
		return 0, 0, false
	}
	return start, end, true
}

// HighlightedRange returns the half-open range of highlighted glyphs,
// clamped to count.
func HighlightedRange(ed Editing, count int) (start, end int) {
	return orderedRange(ed, count)
}

// orderedRange orders cursor and anchor and clamps both to [0, n].
func orderedRange(ed Editing, n int) (lo, hi int) {
	a := ed.CursorPosition
	b := ed.CursorPosition + ed.HighlightVector
	if a > b {
		a, b = b, a
	}
	return clampInt(a, 0, n), clampInt(b, 0, n)
}

func byteAt(offsets []int, i, textLen int) int {
	if i < len(offsets) {
		return offsets[i]
	}
	return textLen
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// SplitRuns splits the content of t into colored runs.
//
// Without editing state the content is a single run of base. With a
// selection it is split into the text before, inside and after the
// selection, the selection colored selected. Password content is replaced
// by bullets, one per grapheme, split the same way.
func SplitRuns(t Text, ed *Editing, base, selected [4]float32) []layout.Run {
	if t.Password {
		return passwordRuns(t.Content, ed, base, selected)
	}
	if ed != nil {
		if start, end, ok := SelectedRange(*ed, t.Content); ok {
			return []layout.Run{
				{Text: t.Content[:start], Color: base},
				{Text: t.Content[start:end], Color: selected},
				{Text: t.Content[end:], Color: base},
			}
		}
	}
	return []layout.Run{{Text: t.Content, Color: base}}
}

func passwordRuns(content string, ed *Editing, base, selected [4]float32) []layout.Run {
	total := layout.GraphemeCount(content)
	if ed == nil {
		return maskRuns(nil, total, base)
	}

	lo, hi := orderedRange(*ed, total)
	runs := maskRuns(nil, lo, base)
	runs = maskRuns(runs, hi-lo, selected)
	return maskRuns(runs, total-hi, base)
}

func maskRuns(dst []layout.Run, graphemes int, c [4]float32) []layout.Run {
	for _, s := range layout.PasswordSections(graphemes) {
		dst = append(dst, layout.Run{Text: s, Color: c})
	}
	return dst
}
