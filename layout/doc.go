// Package layout positions the glyphs of UI text sections.
//
// A Section is one layout request: one or more colored runs that are laid
// out as a single logical text stream against shared bounds and alignment.
// The runs keep their own index so that colors can be carried forward to
// the final geometry.
//
// Layout works in screen space with Y increasing downward. Callers that use
// a Y-up coordinate system negate the section position before layout and
// negate glyph Y when they store it.
//
// Line breaking is selected by LineMode: LineSingle never breaks (text may
// overflow the bounds horizontally) and LineWrap breaks at UAX #14 line
// break opportunities, which never split a grapheme cluster.
package layout
