package font

import (
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// Rasterize renders the coverage of a glyph.
//
// The returned mask's bounds are pixel offsets from the pen position on the
// baseline, with Y increasing downward. Glyphs without an outline (spaces,
// control glyphs) return a nil mask and no error.
func (s Scaled) Rasterize(id GlyphID) (*image.Alpha, error) {
	buf := s.font.buffer()
	defer s.font.release(buf)

	segments, err := s.font.outlines.LoadGlyph(buf, sfnt.GlyphIndex(id), s.ppem(), nil)
	if err != nil {
		return nil, &GlyphError{Glyph: id, Err: err}
	}
	if len(segments) == 0 {
		return nil, nil
	}

	b := segments.Bounds()
	bounds := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if bounds.Empty() {
		return nil, nil
	}

	// Rasterize in a zero-origin frame, then move the mask to glyph space.
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(fixedToFloat32(a[0].X)-ox, fixedToFloat32(a[0].Y)-oy)
		case sfnt.SegmentOpLineTo:
			z.LineTo(fixedToFloat32(a[0].X)-ox, fixedToFloat32(a[0].Y)-oy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(
				fixedToFloat32(a[0].X)-ox, fixedToFloat32(a[0].Y)-oy,
				fixedToFloat32(a[1].X)-ox, fixedToFloat32(a[1].Y)-oy,
			)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(
				fixedToFloat32(a[0].X)-ox, fixedToFloat32(a[0].Y)-oy,
				fixedToFloat32(a[1].X)-ox, fixedToFloat32(a[1].Y)-oy,
				fixedToFloat32(a[2].X)-ox, fixedToFloat32(a[2].Y)-oy,
			)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = bounds

	return mask, nil
}
