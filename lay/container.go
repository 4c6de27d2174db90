package lay

// This file contains detection of the lay file container (raw or
// zlib-compressed) and the stream decoder built on top of it.

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// Container tells how the bytes of a lay file are stored.
type Container uint8

const (
	// Raw files start directly with the header.
	Raw Container = iota
	// Compressed files are one zlib stream holding a raw file.
	Compressed
)

func (c Container) String() string {
	switch c {
	case Raw:
		return "raw"
	case Compressed:
		return "compressed"
	default:
		return fmt.Sprintf("container %d", uint8(c))
	}
}

// MaxRawSprites is the largest leading value that is still taken as the
// sprite count of a raw file. Anything larger is assumed to be the start of
// a zlib stream.
//
// A raw file with more sprites than this is misdetected as compressed.
const MaxRawSprites = 65536

const prefixSize = 4

// ClassifyPrefix decides the container from the first four bytes of a file,
// read as a little-endian uint32.
func ClassifyPrefix(v uint32) Container {
	if v > MaxRawSprites {
		return Compressed
	}
	return Raw
}

// DetectContainer peeks at the first four bytes of r and returns r to the
// position it was at.
func DetectContainer(r io.ReadSeeker) (Container, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Raw, &Error{Kind: KindIO, Stage: "detect", Err: errors.Wrap(err, "locating container prefix")}
	}

	var prefix [prefixSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return Raw, &Error{Kind: KindIO, Stage: "detect", Err: errors.Wrap(err, "reading container prefix")}
	}
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return Raw, &Error{Kind: KindIO, Stage: "detect", Err: errors.Wrap(err, "rewinding after container prefix")}
	}

	c := ClassifyPrefix(binary.LittleEndian.Uint32(prefix[:]))
	infof("lay: %s lay", c)
	return c, nil
}

// openStream returns the decoded byte stream of a lay file with the given
// container.
func openStream(r io.Reader, c Container) (io.ReadCloser, error) {
	if c == Raw {
		return io.NopCloser(r), nil
	}

	z, err := zlib.NewReader(r)
	if err != nil {
		return nil, &Error{Kind: KindDecompress, Stage: "stream", Err: errors.Wrap(err, "opening zlib stream")}
	}
	return &inflater{rc: z}, nil
}

// inflater tags every failure of the zlib reader, other than the clean end
// of the stream, as a decompression error.
type inflater struct {
	rc io.ReadCloser
}

func (z *inflater) Read(p []byte) (int, error) {
	n, err := z.rc.Read(p)
	if err != nil && err != io.EOF {
		err = &inflateError{err: err}
	}
	return n, err
}

func (z *inflater) Close() error {
	return z.rc.Close()
}
