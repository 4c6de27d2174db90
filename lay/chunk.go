package lay

import (
	"encoding/binary"
	"image"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Chunk places one source tile in the composed image.
type Chunk struct {
	ImgX, ImgY     int32 // Offset in the composed image.
	ChunkX, ChunkY int32 // Offset of the tile in the source image.
}

// Img returns the placement offset of the chunk in the composed image.
func (c Chunk) Img() image.Point {
	return image.Pt(int(c.ImgX), int(c.ImgY))
}

// Src returns the offset of the tile in the source image.
func (c Chunk) Src() image.Point {
	return image.Pt(int(c.ChunkX), int(c.ChunkY))
}

var chunkFields = [4]string{"img_x", "img_y", "chunk_x", "chunk_y"}

// toInt32 converts a stored coordinate. Only finite integral values are
// accepted; those beyond the int32 range saturate.
func toInt32(f float32) (int32, error) {
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrUnsuitableFloat, "%v", f)
	}
	if _, frac := math32.Modf(f); frac != 0 {
		return 0, errors.Wrapf(ErrFractionalFloat, "%v", f)
	}
	switch {
	case f <= math.MinInt32:
		return math.MinInt32, nil
	case f >= math.MaxInt32:
		return math.MaxInt32, nil
	}
	return int32(f), nil
}

// bounds is the running bounding box of chunk placements. Its zero value
// already contains the origin.
type bounds struct {
	Min, Max image.Point
}

func (b *bounds) add(p image.Point) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// readChunks reads count chunk records and accumulates the bounding box of
// their placements.
func readChunks(r io.Reader, count uint32) ([]Chunk, bounds, error) {
	chunks := make([]Chunk, 0, prealloc(count))
	var box bounds

	for i := uint32(0); i < count; i++ {
		var raw [4]float32
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, bounds{}, readFailure("chunks", errors.Wrapf(err, "reading chunk %d of %d", i, count))
		}

		var v [4]int32
		for j, f := range raw {
			n, err := toInt32(f)
			if err != nil {
				return nil, bounds{}, formatFailure("chunks", errors.Wrapf(err, "chunk %d: %s", i, chunkFields[j]))
			}
			v[j] = n
		}

		c := Chunk{ImgX: v[0], ImgY: v[1], ChunkX: v[2], ChunkY: v[3]}
		box.add(c.Img())
		chunks = append(chunks, c)
	}
	return chunks, box, nil
}
