package lay

// This file contains read-only helpers for consumers of a Layout.

import (
	"cmp"
	"image"
	"slices"

	"github.com/bradfitz/iter"
	"github.com/pkg/errors"
)

// Sub returns the index of the sub sprite with the passed id.
func (l *Layout) Sub(id uint8) (int, bool) {
	i, ok := l.SubMap[id]
	return i, ok
}

// Parent returns the index of the sprite that sprite i is composited on top
// of: the base for a sub sprite, the referenced sub sprite for a dependent
// one. Base and overlay sprites have no parent, and neither do sprites whose
// dependency is missing from the layout.
func (l *Layout) Parent(i int) (int, bool) {
	if i < 0 || i >= len(l.Sprites) {
		return NoBase, false
	}
	s := l.Sprites[i]
	switch s.Type {
	case Sub:
		if l.BaseDep == NoBase {
			return NoBase, false
		}
		return l.BaseDep, true
	case Dependent:
		return l.Sub(s.DependsOn)
	}
	return NoBase, false
}

// SpriteChunks returns the chunks belonging to sprite i.
//
// The parser does not check chunk ranges, so this is where a range reaching
// past the chunk table is reported.
func (l *Layout) SpriteChunks(i int) ([]Chunk, error) {
	if i < 0 || i >= len(l.Sprites) {
		return nil, errors.Wrapf(ErrNoSuchSprite, "sprite %d of %d", i, len(l.Sprites))
	}
	s := l.Sprites[i]
	if s.ChunkOffset < 0 || s.ChunkCount < 0 || s.ChunkOffset > len(l.Chunks) || s.ChunkCount > len(l.Chunks)-s.ChunkOffset {
		return nil, errors.Wrapf(ErrChunkRange, "sprite %d: chunks %d+%d, have %d", i, s.ChunkOffset, s.ChunkCount, len(l.Chunks))
	}
	end := s.ChunkOffset + s.ChunkCount
	return l.Chunks[s.ChunkOffset:end:end], nil
}

// CompositeOrder returns sprite indices in drawing order: the base, sub
// sprites, dependent sprites, then overlays. File order is kept within each
// group.
func (l *Layout) CompositeOrder() []int {
	order := make([]int, 0, len(l.Sprites))
	for i := range iter.N(len(l.Sprites)) {
		order = append(order, i)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(l.Sprites[a].Type, l.Sprites[b].Type)
	})
	return order
}

// Canvas returns the rectangle of the composed image.
func (l *Layout) Canvas() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// Origin returns where the image origin lies on the canvas. A chunk is drawn
// at Origin().Add(chunk.Img()).
func (l *Layout) Origin() image.Point {
	return l.Min.Mul(-1)
}
