package font

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadGoRegular(t testing.TB) *Font {
	t.Helper()
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular) error = %v", err)
	}
	return f
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Parse(nil) error = %v, want %v", err, ErrEmptyFontData)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	if err == nil {
		t.Error("Parse(garbage) should fail")
	}
}

func TestFontName(t *testing.T) {
	f := loadGoRegular(t)
	if f.Name() == "" {
		t.Error("Name() is empty for Go Regular")
	}
	if f.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %v, want > 0", f.UnitsPerEm())
	}
}

func TestScaledHeight(t *testing.T) {
	f := loadGoRegular(t)

	for _, size := range []float32{8, 16, 32, 55.5} {
		s := f.Scaled(size)
		if !near(s.Height(), size, 1e-3) {
			t.Errorf("Scaled(%v).Height() = %v, want %v", size, s.Height(), size)
		}
		if s.Ascent() <= 0 {
			t.Errorf("Scaled(%v).Ascent() = %v, want > 0", size, s.Ascent())
		}
		if s.Descent() >= 0 {
			t.Errorf("Scaled(%v).Descent() = %v, want < 0", size, s.Descent())
		}
		if s.Size() != size {
			t.Errorf("Size() = %v, want %v", s.Size(), size)
		}
	}
}

func TestGlyphID(t *testing.T) {
	s := loadGoRegular(t).Scaled(16)

	a := s.GlyphID('A')
	if a == 0 {
		t.Fatal("GlyphID('A') = 0, want a mapped glyph")
	}
	if b := s.GlyphID('B'); b == a {
		t.Errorf("GlyphID('B') = GlyphID('A') = %d", b)
	}
	if got := s.GlyphID('\U0010FFFD'); got != 0 {
		t.Errorf("GlyphID(unmapped) = %d, want 0", got)
	}
	if got := loadGoRegular(t).Scaled(48).GlyphID('A'); got != a {
		t.Errorf("GlyphID depends on size: %d vs %d", got, a)
	}
}

func TestAdvanceScalesLinearly(t *testing.T) {
	f := loadGoRegular(t)
	small := f.Scaled(16)
	large := f.Scaled(32)

	for _, r := range "AW i." {
		id := small.GlyphID(r)
		a16 := small.Advance(id)
		a32 := large.Advance(id)
		if a16 <= 0 {
			t.Errorf("Advance(%q) = %v, want > 0", r, a16)
		}
		if !near(a32, 2*a16, 1e-3) {
			t.Errorf("Advance(%q) at 32px = %v, want %v", r, a32, 2*a16)
		}
	}
}

func TestRasterize(t *testing.T) {
	s := loadGoRegular(t).Scaled(32)

	mask, err := s.Rasterize(s.GlyphID('A'))
	if err != nil {
		t.Fatalf("Rasterize('A') error = %v", err)
	}
	if mask == nil {
		t.Fatal("Rasterize('A') = nil")
	}
	b := mask.Bounds()
	if b.Empty() {
		t.Fatal("Rasterize('A') bounds are empty")
	}
	if b.Min.Y >= 0 {
		t.Errorf("glyph top = %d, want above the baseline (< 0)", b.Min.Y)
	}
	if float32(b.Dy()) > s.Height()+2 {
		t.Errorf("glyph height %d exceeds line height %v", b.Dy(), s.Height())
	}

	var covered int
	for _, p := range mask.Pix {
		if p != 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("Rasterize('A') produced no coverage")
	}
}

func TestRasterizeSpace(t *testing.T) {
	s := loadGoRegular(t).Scaled(32)

	mask, err := s.Rasterize(s.GlyphID(' '))
	if err != nil {
		t.Fatalf("Rasterize(' ') error = %v", err)
	}
	if mask != nil {
		t.Errorf("Rasterize(' ') = %v, want nil", mask.Bounds())
	}
}

func TestKernIsFinite(t *testing.T) {
	s := loadGoRegular(t).Scaled(32)
	k := s.Kern(s.GlyphID('A'), s.GlyphID('V'))
	if math.IsNaN(float64(k)) || math.IsInf(float64(k), 0) {
		t.Errorf("Kern(A, V) = %v", k)
	}
	if math.Abs(float64(k)) > 32 {
		t.Errorf("Kern(A, V) = %v, implausibly large", k)
	}
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
