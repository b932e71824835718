package uitext

import (
	"github.com/gogpu/uitext/atlas"
	"github.com/gogpu/uitext/font"
	"github.com/gogpu/uitext/layout"
)

// Transform places an element. X, Y is the element centre in pixels with
// Y increasing upward; Width, Height are the text bounds.
type Transform struct {
	X, Y          float32
	Width, Height float32
}

// Text is the text content of an element.
type Text struct {
	Content string
	Font    font.Handle

	// Size is the pixel height of the line box.
	Size float32

	Color    Color
	LineMode layout.LineMode
	Align    layout.Alignment

	// Password renders every grapheme as a bullet.
	Password bool
}

// Editing is the cursor and selection state of an editable element.
//
// CursorPosition is a grapheme index. HighlightVector is the signed
// distance from the cursor to the selection anchor; zero means nothing
// is selected.
type Editing struct {
	CursorPosition          int
	HighlightVector         int
	SelectedTextColor       Color
	SelectedBackgroundColor Color
}

// Element is one text element of a cycle.
type Element struct {
	ID        uint64
	Transform Transform
	Text      Text
	Editing   *Editing

	// Tint multiplies all colors of the element when set.
	Tint *Color

	// Hidden and HiddenPropagate exclude the element from layout.
	Hidden          bool
	HiddenPropagate bool
}

func (e *Element) hidden() bool {
	return e.Hidden || e.HiddenPropagate
}

// CachedGlyph is the retained position of one character, Y up.
type CachedGlyph struct {
	X, Y    float32
	Advance float32
}

// Vertex is one textured quad. Position is the quad centre.
//
// Glyph quads sample coverage from the atlas with ColorBias (1, 1, 1, 0);
// selection quads use ColorBias 0 and the full texture box.
type Vertex struct {
	Position   [2]float32
	Dimensions [2]float32
	TexCoords  [4]float32 // min x, min y, max x, max y
	Color      [4]float32
	ColorBias  [4]float32
}

// EditingGeometry is the derived geometry of an editable element.
type EditingGeometry struct {
	SelectionVertices []Vertex
	CursorPosition    [2]float32

	// Height is the line height; SpaceWidth the advance of ' '.
	Height     float32
	SpaceWidth float32
}

// Update is the result of one cycle for one element.
type Update struct {
	ID uint64

	// Skipped is set for hidden elements, whose glyph cache is untouched.
	Skipped bool

	// CachedGlyphs replaces the element's glyph cache unless Skipped.
	CachedGlyphs []CachedGlyph

	// VerticesReplaced is set on draw frames. Vertices then replaces the
	// element's vertex list and its selection vertices are reset.
	VerticesReplaced bool
	Vertices         []Vertex

	// Editing is set for laid-out elements with editing state.
	Editing *EditingGeometry
}

// Frame is the result of one cycle.
type Frame struct {
	Action atlas.ActionKind

	// Updates holds one update per element, in element order.
	Updates []Update
}

// Glyphs is the render state a caller keeps per element.
type Glyphs struct {
	CachedGlyphs      []CachedGlyph
	Vertices          []Vertex
	SelectionVertices []Vertex
	CursorPosition    [2]float32
	Height            float32
	SpaceWidth        float32
}

// Apply persists an update.
func (g *Glyphs) Apply(u Update) {
	if !u.Skipped {
		g.CachedGlyphs = u.CachedGlyphs
	}
	if u.VerticesReplaced {
		g.Vertices = u.Vertices
		g.SelectionVertices = nil
	}
	if u.Editing != nil {
		g.SelectionVertices = u.Editing.SelectionVertices
		g.CursorPosition = u.Editing.CursorPosition
		g.Height = u.Editing.Height
		g.SpaceWidth = u.Editing.SpaceWidth
	}
}
