package atlas

import (
	"image"
	"testing"
)

func TestShelfPacker_Basic(t *testing.T) {
	p := newShelfPacker(100, 100, 2)

	r, ok := p.pack(20, 20)
	if !ok || r != image.Rect(0, 0, 20, 20) {
		t.Errorf("first pack = %v, %v, want (0,0)-(20,20)", r, ok)
	}
	r, ok = p.pack(20, 20)
	if !ok || r.Min != image.Pt(22, 0) {
		t.Errorf("second pack = %v, %v, want min (22,0)", r, ok)
	}
}

func TestShelfPacker_NewShelf(t *testing.T) {
	p := newShelfPacker(50, 100, 0)

	p.pack(30, 10)
	r, ok := p.pack(30, 10)
	if !ok {
		t.Fatal("pack failed")
	}
	if r.Min != image.Pt(0, 10) {
		t.Errorf("pack on new shelf = %v, want min (0,10)", r.Min)
	}
}

func TestShelfPacker_GrowLastShelf(t *testing.T) {
	p := newShelfPacker(100, 100, 0)

	p.pack(10, 10)
	r, ok := p.pack(10, 30)
	if !ok || r.Min != image.Pt(10, 0) {
		t.Errorf("taller pack = %v, %v, want same shelf", r, ok)
	}
	r, _ = p.pack(90, 5)
	if r.Min.Y != 30 {
		t.Errorf("next shelf y = %d, want 30", r.Min.Y)
	}
}

func TestShelfPacker_Full(t *testing.T) {
	p := newShelfPacker(20, 20, 0)

	count := 0
	for {
		if _, ok := p.pack(10, 10); !ok {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("packed %d rectangles, want 4", count)
	}
	if u := p.utilization(); u != 1 {
		t.Errorf("utilization = %f, want 1", u)
	}
}

func TestShelfPacker_TooLarge(t *testing.T) {
	p := newShelfPacker(16, 16, 1)
	if _, ok := p.pack(17, 1); ok {
		t.Error("pack wider than texture succeeded")
	}
	if _, ok := p.pack(1, 17); ok {
		t.Error("pack taller than texture succeeded")
	}
	if _, ok := p.pack(16, 16); !ok {
		t.Error("pack of exact texture size failed")
	}
}

func TestShelfPacker_Reset(t *testing.T) {
	p := newShelfPacker(20, 20, 0)
	p.pack(20, 20)
	p.reset(40, 40)

	if p.utilization() != 0 {
		t.Errorf("utilization after reset = %f, want 0", p.utilization())
	}
	r, ok := p.pack(40, 40)
	if !ok || r != image.Rect(0, 0, 40, 40) {
		t.Errorf("pack after reset = %v, %v", r, ok)
	}
}
