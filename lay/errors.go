package lay

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failure that stopped a parse.
type Kind uint8

const (
	// KindIO is a short read, end of stream or a failing source.
	KindIO Kind = iota + 1
	// KindDecompress is a malformed or truncated zlib stream.
	KindDecompress
	// KindFormat is a well-read value that is not acceptable in a lay file.
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "i/o"
	case KindDecompress:
		return "decompression"
	case KindFormat:
		return "format"
	default:
		return fmt.Sprintf("kind %d", uint8(k))
	}
}

var (
	// ErrUnknownSpriteType indicates a sprite record with an unrecognized type tag.
	ErrUnknownSpriteType = errors.New("unknown sprite type")
	// ErrUnsuitableFloat indicates a NaN or infinite coordinate.
	ErrUnsuitableFloat = errors.New("unsuitable float value")
	// ErrFractionalFloat indicates a coordinate with a fractional part.
	ErrFractionalFloat = errors.New("float has fractional part")
	// ErrNoSprites indicates a layout without any sprite record.
	ErrNoSprites = errors.New("no sprites")

	// ErrNoSuchSprite is returned by Layout queries for an index out of range.
	ErrNoSuchSprite = errors.New("no such sprite")
	// ErrChunkRange indicates a sprite whose chunk range exceeds the chunk table.
	ErrChunkRange = errors.New("sprite chunk range out of bounds")
)

// Error is returned by all parse functions. Err carries the cause, which can
// be matched with errors.Is against the Err* values or io errors.
type Error struct {
	Kind  Kind
	Stage string // detect, stream, header, sprites, chunks or open
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lay: %s: %s error: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a parse error, or 0 if err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// inflateError marks a read error raised by the zlib decoder.
type inflateError struct {
	err error
}

func (e *inflateError) Error() string { return "zlib: " + e.err.Error() }
func (e *inflateError) Unwrap() error { return e.err }

// readFailure wraps a failed read into an Error, telling decompression
// failures apart from plain I/O ones.
func readFailure(stage string, err error) error {
	kind := KindIO
	var ie *inflateError
	if errors.As(err, &ie) {
		kind = KindDecompress
	}
	return &Error{Kind: kind, Stage: stage, Err: err}
}

func formatFailure(stage string, err error) error {
	return &Error{Kind: KindFormat, Stage: stage, Err: err}
}
