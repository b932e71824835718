package uitext

import (
	"strings"
	"testing"

	"github.com/gogpu/uitext/layout"
)

var (
	testBase     = [4]float32{0, 0, 0, 1}
	testSelected = [4]float32{1, 1, 1, 1}
)

func TestSelectedRange(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor, hv int
		start, end int
		ok         bool
	}{
		{"no selection", "hello", 2, 0, 0, 0, false},
		{"forward", "hello", 1, 2, 1, 3, true},
		{"backward", "hello", 3, -2, 1, 3, true},
		{"to end", "hello", 3, 5, 3, 5, true},
		{"past start", "hello", 1, -4, 0, 1, true},
		{"fully out of range", "hello", 7, 2, 0, 0, false},
		{"multibyte", "a\u00e9b", 1, 1, 1, 3, true},
		{"combining", "ae\u0301b", 1, 1, 1, 4, true},
		{"empty text", "", 0, 3, 0, 0, false},
		{"invalid utf8", "\xffab", 1, 1, 1, 2, true},
		{"invalid utf8 to end", "\xffab", 0, 9, 0, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := SelectedRange(Editing{CursorPosition: tt.cursor, HighlightVector: tt.hv}, tt.text)
			if ok != tt.ok || start != tt.start || end != tt.end {
				t.Errorf("SelectedRange(%d, %d, %q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.cursor, tt.hv, tt.text, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

func TestHighlightedRange(t *testing.T) {
	tests := []struct {
		cursor, hv, count int
		start, end        int
	}{
		{1, 1, 2, 1, 2},
		{3, -2, 5, 1, 3},
		{2, 0, 5, 2, 2},
		{4, 10, 5, 4, 5},
		{1, -5, 5, 0, 1},
		{9, 2, 5, 5, 5},
	}
	for _, tt := range tests {
		start, end := HighlightedRange(Editing{CursorPosition: tt.cursor, HighlightVector: tt.hv}, tt.count)
		if start != tt.start || end != tt.end {
			t.Errorf("HighlightedRange(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tt.cursor, tt.hv, tt.count, start, end, tt.start, tt.end)
		}
	}
}

func TestSplitRuns_Plain(t *testing.T) {
	runs := SplitRuns(Text{Content: "hello"}, nil, testBase, testSelected)
	if len(runs) != 1 || runs[0].Text != "hello" || runs[0].Color != testBase {
		t.Errorf("SplitRuns() = %+v, want one base run", runs)
	}
}

func TestSplitRuns_Selection(t *testing.T) {
	ed := &Editing{CursorPosition: 1, HighlightVector: 1}
	runs := SplitRuns(Text{Content: "AB"}, ed, testBase, testSelected)

	want := []layout.Run{
		{Text: "A", Color: testBase},
		{Text: "B", Color: testSelected},
		{Text: "", Color: testBase},
	}
	if len(runs) != len(want) {
		t.Fatalf("SplitRuns() = %+v, want %+v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestSplitRuns_InvalidUTF8(t *testing.T) {
	ed := &Editing{CursorPosition: 1, HighlightVector: 1}
	runs := SplitRuns(Text{Content: "\xffab"}, ed, testBase, testSelected)

	want := []string{"\xff", "a", "b"}
	if len(runs) != len(want) {
		t.Fatalf("SplitRuns() = %+v, want %q", runs, want)
	}
	for i := range want {
		if runs[i].Text != want[i] {
			t.Errorf("run %d text = %q, want %q", i, runs[i].Text, want[i])
		}
	}
}

func TestSplitRuns_EmptySelectionCollapses(t *testing.T) {
	for _, ed := range []*Editing{
		{CursorPosition: 2, HighlightVector: 0},
		{CursorPosition: 9, HighlightVector: 3},
	} {
		runs := SplitRuns(Text{Content: "abc"}, ed, testBase, testSelected)
		if len(runs) != 1 || runs[0].Text != "abc" {
			t.Errorf("SplitRuns(%+v) = %+v, want one run", *ed, runs)
		}
	}
}

func runGraphemes(runs []layout.Run, c [4]float32) int {
	n := 0
	for _, r := range runs {
		if r.Color == c {
			n += layout.GraphemeCount(r.Text)
		}
	}
	return n
}

func TestSplitRuns_Password(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		ed            *Editing
		base, selLen  int
		wantRunsTotal int
	}{
		{"empty", "", nil, 0, 0, 0},
		{"short", "h\u00e9llo", nil, 5, 0, 5},
		{"one token", strings.Repeat("x", 16), nil, 16, 0, 16},
		{"token plus one", strings.Repeat("x", 17), nil, 17, 0, 17},
		{"selection", "secret", &Editing{CursorPosition: 1, HighlightVector: 2}, 4, 2, 6},
		{"backward selection", "secret", &Editing{CursorPosition: 5, HighlightVector: -3}, 3, 3, 6},
		{"anchor before start", "secret", &Editing{CursorPosition: 1, HighlightVector: -4}, 5, 1, 6},
		{"cursor past end", "secret", &Editing{CursorPosition: 10, HighlightVector: -6}, 4, 2, 6},
		{"no selection", "secret", &Editing{CursorPosition: 3}, 6, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := SplitRuns(Text{Content: tt.content, Password: true}, tt.ed, testBase, testSelected)
			for _, r := range runs {
				if strings.Trim(r.Text, "•") != "" {
					t.Fatalf("run %q leaks content", r.Text)
				}
			}
			if got := runGraphemes(runs, testBase); got != tt.base {
				t.Errorf("base graphemes = %d, want %d", got, tt.base)
			}
			if got := runGraphemes(runs, testSelected); got != tt.selLen {
				t.Errorf("selected graphemes = %d, want %d", got, tt.selLen)
			}
			total := 0
			for _, r := range runs {
				total += layout.GraphemeCount(r.Text)
			}
			if total != tt.wantRunsTotal {
				t.Errorf("total graphemes = %d, want %d", total, tt.wantRunsTotal)
			}
		})
	}
}
