// Package uitext lays out UI text and caches its glyphs in a shared
// texture atlas.
//
// # Overview
//
// A [Pass] owns one glyph atlas and its texture. Each update cycle the
// caller hands it the visible text elements in a stable order; the pass
// splits their content into colored runs, lays them out, resolves the
// glyphs against the atlas and returns one [Update] per element:
//
//	lib := font.NewLibrary()
//	h := lib.Add(f)
//
//	pass, err := uitext.New(lib, texture.NewMemoryFactory())
//	if err != nil {
//	    return err
//	}
//
//	frame, err := pass.Process([]uitext.Element{{
//	    ID:        1,
//	    Transform: uitext.Transform{X: 0, Y: 0, Width: 200, Height: 40},
//	    Text: uitext.Text{
//	        Content: "Hello",
//	        Font:    h,
//	        Size:    24,
//	        Color:   uitext.White,
//	    },
//	}})
//	for i, u := range frame.Updates {
//	    glyphs[i].Apply(u)
//	}
//
// # Draw and Redraw
//
// When glyphs were rasterized or any glyph moved, the frame action is
// [atlas.ActionDraw] and every element receives its full vertex list.
// Otherwise the action is [atlas.ActionRedraw]: vertex lists stay as they
// are and only cursor and selection geometry is refreshed.
//
// # Coordinate System
//
// Element positions are the element's centre with Y increasing upward.
// Layout runs with Y increasing downward and every emitted position is
// flipped back, so vertices, cached glyphs and cursors are all Y up.
//
// # Colors
//
// Element colors are sRGB. Vertices carry linear RGBA, multiplied by the
// element tint when one is set.
package uitext
