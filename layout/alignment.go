package layout

// HAlign is the horizontal alignment of laid out lines relative to the
// section position.
type HAlign uint8

const (
	// HAlignLeft starts lines at the section position.
	HAlignLeft HAlign = iota
	// HAlignCenter centers lines on the section position.
	HAlignCenter
	// HAlignRight ends lines at the section position.
	HAlignRight
)

// VAlign is the vertical alignment of the laid out block relative to the
// section position.
type VAlign uint8

const (
	// VAlignTop puts the top of the first line at the section position.
	VAlignTop VAlign = iota
	// VAlignCenter centers the block on the section position.
	VAlignCenter
	// VAlignBottom puts the bottom of the last line at the section position.
	VAlignBottom
)

// Alignment anchors text inside its element bounds.
// The zero value is AlignMiddle.
type Alignment uint8

const (
	AlignMiddle Alignment = iota
	AlignTopLeft
	AlignTopMiddle
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomMiddle
	AlignBottomRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignMiddle:
		return "Middle"
	case AlignTopLeft:
		return "TopLeft"
	case AlignTopMiddle:
		return "TopMiddle"
	case AlignTopRight:
		return "TopRight"
	case AlignMiddleLeft:
		return "MiddleLeft"
	case AlignMiddleRight:
		return "MiddleRight"
	case AlignBottomLeft:
		return "BottomLeft"
	case AlignBottomMiddle:
		return "BottomMiddle"
	case AlignBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// NormalizedOffset returns the anchor point relative to the element center,
// as a fraction of the element size in [-0.5, 0.5]. Y points up.
func (a Alignment) NormalizedOffset() (x, y float32) {
	switch a {
	case AlignTopLeft:
		return -0.5, 0.5
	case AlignTopMiddle:
		return 0, 0.5
	case AlignTopRight:
		return 0.5, 0.5
	case AlignMiddleLeft:
		return -0.5, 0
	case AlignMiddleRight:
		return 0.5, 0
	case AlignBottomLeft:
		return -0.5, -0.5
	case AlignBottomMiddle:
		return 0, -0.5
	case AlignBottomRight:
		return 0.5, -0.5
	default:
		return 0, 0
	}
}

// HorizontalAlign returns the line alignment matching the anchor.
func (a Alignment) HorizontalAlign() HAlign {
	switch a {
	case AlignTopLeft, AlignMiddleLeft, AlignBottomLeft:
		return HAlignLeft
	case AlignTopRight, AlignMiddleRight, AlignBottomRight:
		return HAlignRight
	default:
		return HAlignCenter
	}
}

// VerticalAlign returns the block alignment matching the anchor.
func (a Alignment) VerticalAlign() VAlign {
	switch a {
	case AlignTopLeft, AlignTopMiddle, AlignTopRight:
		return VAlignTop
	case AlignBottomLeft, AlignBottomMiddle, AlignBottomRight:
		return VAlignBottom
	default:
		return VAlignCenter
	}
}
