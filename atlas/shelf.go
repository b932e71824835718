package atlas

import "image"

// shelfPacker implements shelf-based rectangle packing.
//
// Rectangles are placed left-to-right in horizontal shelves. A shelf is as
// tall as the tallest rectangle placed on it; when no shelf has room a new
// one is opened below the last. Only the last shelf may grow taller.
type shelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf represents a horizontal strip of the texture.
type shelf struct {
	y      int // top edge
	height int // tallest rectangle so far
	x      int // next free column
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// pack reserves a w×h rectangle and returns its location.
func (p *shelfPacker) pack(w, h int) (image.Rectangle, bool) {
	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+w > p.width {
			continue
		}
		if h > s.height {
			last := i == len(p.shelves)-1
			if !last || s.y+h > p.height {
				continue
			}
			s.height = h
		}
		r := image.Rect(s.x, s.y, s.x+w, s.y+h)
		s.x += w + p.padding
		p.usedArea += w * h
		return r, true
	}

	y := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height + p.padding
	}
	if w > p.width || y+h > p.height {
		return image.Rectangle{}, false
	}

	p.shelves = append(p.shelves, shelf{y: y, height: h, x: w + p.padding})
	p.usedArea += w * h
	return image.Rect(0, y, w, y+h), true
}

// reset clears all allocations, keeping capacity.
func (p *shelfPacker) reset(width, height int) {
	p.width, p.height = width, height
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}

// utilization returns the fraction of the texture area in use.
func (p *shelfPacker) utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}
