// Package lay implements a reader for sprite layout (.lay) files.
//
// A lay file describes how a composited sprite is assembled: a table of
// sprites, each with a compositing role (base layer, sub layer, a layer
// depending on a sub layer, or a transparent overlay), and a table of chunks
// placing source tiles in the composed image. The whole file may be
// zlib-compressed; this is detected from its first four bytes.
//
// The reader only decodes and validates. Pixel data is not touched; use the
// resulting Layout together with the tile images to render.
package lay
