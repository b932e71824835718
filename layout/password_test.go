package layout

import (
	"strings"
	"testing"
)

func TestPasswordSections(t *testing.T) {
	tests := []struct {
		n        int
		sections int
		last     int // graphemes in the remainder
	}{
		{0, 1, 0},
		{1, 1, 1},
		{15, 1, 15},
		{16, 2, 0},
		{17, 2, 1},
		{40, 3, 8},
		{-3, 1, 0},
	}

	for _, tt := range tests {
		got := PasswordSections(tt.n)
		if len(got) != tt.sections {
			t.Errorf("PasswordSections(%d) has %d sections, want %d", tt.n, len(got), tt.sections)
			continue
		}
		if c := GraphemeCount(got[len(got)-1]); c != tt.last {
			t.Errorf("PasswordSections(%d) remainder has %d graphemes, want %d", tt.n, c, tt.last)
		}
		for _, s := range got[:len(got)-1] {
			if s != MaskToken {
				t.Errorf("PasswordSections(%d) full section = %q, want the mask token", tt.n, s)
			}
		}
	}
}

func TestPasswordSectionsGraphemeTotal(t *testing.T) {
	for n := 0; n <= 50; n++ {
		joined := strings.Join(PasswordSections(n), "")
		if got := GraphemeCount(joined); got != n {
			t.Errorf("PasswordSections(%d) renders %d graphemes", n, got)
		}
	}
}

func TestMaskTokenIsSingleGraphemeBullets(t *testing.T) {
	offsets := GraphemeOffsets(MaskToken)
	if len(offsets) != maskTokenGraphemes {
		t.Fatalf("MaskToken has %d graphemes, want %d", len(offsets), maskTokenGraphemes)
	}
	for i, off := range offsets {
		if off != i*maskBulletBytes {
			t.Errorf("grapheme %d at byte %d, want %d", i, off, i*maskBulletBytes)
		}
	}
}
