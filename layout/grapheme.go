package layout

import "github.com/go-text/typesetting/segmenter"

// GraphemeOffsets returns the byte offset of every grapheme cluster in s,
// in order. len(GraphemeOffsets(s)) is the grapheme count of s.
func GraphemeOffsets(s string) []int {
	if s == "" {
		return nil
	}

	// An invalid byte decodes to one U+FFFD of width 1.
	runes := make([]rune, 0, len(s))
	byteAt := make([]int, 0, len(s))
	for off, r := range s {
		runes = append(runes, r)
		byteAt = append(byteAt, off)
	}

	var seg segmenter.Segmenter
	seg.Init(runes)
	iter := seg.GraphemeIterator()

	offsets := make([]int, 0, len(runes))
	for iter.Next() {
		offsets = append(offsets, byteAt[iter.Grapheme().Offset])
	}
	return offsets
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return len(GraphemeOffsets(s))
}
