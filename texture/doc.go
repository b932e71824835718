// Package texture defines the texture service the text pass draws glyphs
// into, and a CPU implementation of it.
//
// The pass only needs two operations: create a texture from a [Descriptor]
// and upload a block of pixels into a sub-rectangle of it. GPU backends
// implement [Factory] on top of their device; [MemoryFactory] keeps pixels
// in an [image.Alpha] for tests, tools and software renderers.
package texture
