package lay

// This file contains the entry points of the package and the assembly of
// the final Layout.

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-sglay/paths"
)

const (
	// SpritePadding is added to both canvas dimensions, leaving room for
	// the tile placed at the maximum offset.
	SpritePadding = 32

	// NoBase is the BaseDep of a layout whose first sprite is not a base.
	NoBase = -1

	// maxPrealloc caps how many records are allocated up front from the
	// unvalidated header counts.
	maxPrealloc = 4096
)

type header struct {
	SpriteCount uint32
	ChunkCount  uint32
}

// Layout is a parsed lay file. It is built once per parse and not modified
// afterwards; a Layout may be shared between goroutines as long as nobody
// writes to it.
type Layout struct {
	// Sprites in file order.
	Sprites []Sprite
	// SubMap maps the id of each sub sprite to its index in Sprites.
	SubMap map[uint8]int
	// Chunks in file order.
	Chunks []Chunk
	// BaseDep is the index of the base sprite, or NoBase.
	BaseDep int

	// Width and Height of the canvas needed for the composed image.
	Width, Height int
	// Min and Max are the extremes of all chunk placements, and of the
	// origin.
	Min, Max image.Point
}

// Parse reads a lay file from r, which must be positioned at the start of
// the file. Compressed files are detected and inflated.
func Parse(r io.ReadSeeker) (*Layout, error) {
	c, err := DetectContainer(r)
	if err != nil {
		return nil, err
	}
	return parseContainer(bufio.NewReader(r), c)
}

// ParseReader is like Parse for sources that cannot seek. The container
// prefix is peeked through a buffer instead.
func ParseReader(r io.Reader) (*Layout, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(prefixSize)
	if err != nil {
		if err == io.EOF && len(prefix) > 0 {
			err = io.ErrUnexpectedEOF
		}
		return nil, &Error{Kind: KindIO, Stage: "detect", Err: errors.Wrap(err, "reading container prefix")}
	}

	c := ClassifyPrefix(binary.LittleEndian.Uint32(prefix))
	infof("lay: %s lay", c)
	return parseContainer(br, c)
}

// ParseFile opens and parses the lay file at path.
func ParseFile(path string) (*Layout, error) {
	f, err := paths.NoFindOpen(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Stage: "open", Err: errors.Wrapf(err, "opening %q", path)}
	}
	defer f.Close()
	return Parse(f)
}

// ParseNamed locates a lay file by name the way paths.Open does, and parses
// it.
func ParseNamed(fileName string) (*Layout, error) {
	f, err := paths.Open(fileName)
	if err != nil {
		return nil, &Error{Kind: KindIO, Stage: "open", Err: errors.Wrapf(err, "locating %q", fileName)}
	}
	defer f.Close()
	return Parse(f)
}

func parseContainer(r io.Reader, c Container) (*Layout, error) {
	s, err := openStream(r, c)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return decode(s)
}

// decode reads header, sprites and chunks from the decoded stream.
func decode(r io.Reader) (*Layout, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, readFailure("header", errors.Wrap(err, "reading lay header"))
	}
	glog.V(1).Infof("lay: header: %d sprites, %d chunks", h.SpriteCount, h.ChunkCount)

	st, err := readSprites(r, h.SpriteCount)
	if err != nil {
		return nil, err
	}
	chunks, box, err := readChunks(r, h.ChunkCount)
	if err != nil {
		return nil, err
	}
	return assemble(st, chunks, box), nil
}

func assemble(st *spriteTable, chunks []Chunk, box bounds) *Layout {
	return &Layout{
		Sprites: st.sprites,
		SubMap:  st.subMap,
		Chunks:  chunks,
		BaseDep: st.baseDep,
		Width:   box.Max.X + abs(box.Min.X) + SpritePadding,
		Height:  box.Max.Y + abs(box.Min.Y) + SpritePadding,
		Min:     box.Min,
		Max:     box.Max,
	}
}

func prealloc(count uint32) int {
	return int(min(count, maxPrealloc))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
