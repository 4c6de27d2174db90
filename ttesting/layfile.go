package ttesting

// This file contains a builder for lay file bytes, used to feed the lay
// reader in tests.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// SpriteRecord is the on-disk form of a sprite.
type SpriteRecord struct {
	ID, Aux, Flags, Tag     uint8
	ChunkOffset, ChunkCount uint32
}

// ChunkRecord is the on-disk form of a chunk: img_x, img_y, chunk_x, chunk_y.
type ChunkRecord [4]float32

// LayFile assembles a lay file.
type LayFile struct {
	Sprites []SpriteRecord
	Chunks  []ChunkRecord

	counts *[2]uint32
}

// WithCounts makes the header claim the passed record counts, regardless of
// how many records follow.
func (f *LayFile) WithCounts(sprites, chunks uint32) *LayFile {
	f.counts = &[2]uint32{sprites, chunks}
	return f
}

// Bytes returns the raw file.
func (f *LayFile) Bytes() []byte {
	counts := [2]uint32{uint32(len(f.Sprites)), uint32(len(f.Chunks))}
	if f.counts != nil {
		counts = *f.counts
	}

	buf := &bytes.Buffer{}
	must(binary.Write(buf, binary.LittleEndian, counts))
	for _, s := range f.Sprites {
		must(binary.Write(buf, binary.LittleEndian, s))
	}
	for _, c := range f.Chunks {
		must(binary.Write(buf, binary.LittleEndian, c))
	}
	return buf.Bytes()
}

// Compressed returns the file zlib-compressed.
func (f *LayFile) Compressed() []byte {
	return Compress(f.Bytes())
}

// Compress zlib-compresses b.
func Compress(b []byte) []byte {
	buf := &bytes.Buffer{}
	w := zlib.NewWriter(buf)
	_, err := w.Write(b)
	must(err)
	must(w.Close())
	return buf.Bytes()
}

// must panics on fixture encoding errors, which are bugs in the test.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("ttesting: building lay fixture: %s", err))
	}
}

// WriteTemp writes b into a file in a per-test temporary directory and
// returns its path.
func WriteTemp(t *testing.T, name string, b []byte) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("failed to write %q: %s", path, err)
	}
	return path
}
