// Package datafiles carries small sample lay files, used as a last-resort
// source by paths.Open and as fixtures in examples.
//
// sample.lay is a raw layout with one sprite of each type; sample_z.lay is
// the same layout zlib-compressed.
package datafiles

import "embed"

//go:embed *.lay
var FS embed.FS
