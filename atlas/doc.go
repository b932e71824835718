// Package atlas implements the glyph atlas cache shared by all text
// elements of a pass.
//
// A [Cache] packs rasterized glyph masks into one single-channel texture.
// Sections are staged with [Cache.Queue] and resolved with [Cache.Resolve],
// which rasterizes glyphs seen for the first time, uploads their pixels and
// emits one vertex per visible glyph:
//
//	c.Queue(section)
//	action, err := c.Resolve(upload, emit)
//	var small *atlas.TextureTooSmallError
//	if errors.As(err, &small) {
//	    // recreate the texture, then
//	    c.Resize(small.Width, small.Height)
//	    // and resolve again
//	}
//
// Entries are never evicted individually. Resize is the only invalidation
// path: it drops every entry and repacks on the next resolve.
//
// A Cache is not safe for concurrent use. It is owned by a single pass.
package atlas
