package lay

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Sprite type tags, as stored in the fourth byte of a sprite record.
const (
	TYPE_BASE    = 0x00
	TYPE_SUB     = 0x20
	TYPE_DEP_30  = 0x30
	TYPE_DEP_40  = 0x40
	TYPE_OVERLAY = 0x50
	TYPE_DEP_60  = 0x60
)

// overlayFlags is the only flags byte seen on overlay records.
const overlayFlags = 16

// SpriteType is the compositing role of a sprite.
//
// The values are ordered the way the layers are drawn.
type SpriteType uint8

const (
	Base      SpriteType = iota // Layer 0.
	Sub                         // Implicitly depends on the base.
	Dependent                   // Depends on the sub sprite named by DependsOn.
	Overlay                     // Transparent, drawn last.
)

func (t SpriteType) String() string {
	switch t {
	case Base:
		return "base"
	case Sub:
		return "sub"
	case Dependent:
		return "dependent"
	case Overlay:
		return "overlay"
	default:
		return fmt.Sprintf("sprite type %d", uint8(t))
	}
}

// Variant is the classified type of a sprite. ExactType and DependsOn are
// only set for Dependent sprites: ExactType keeps the on-disk tag, DependsOn
// is the id of the sub sprite it depends on.
type Variant struct {
	Type      SpriteType
	ExactType uint8
	DependsOn uint8
}

func (v Variant) String() string {
	if v.Type == Dependent {
		return fmt.Sprintf("dependent(%#02x on %d)", v.ExactType, v.DependsOn)
	}
	return v.Type.String()
}

// Sprite is a single sprite record.
//
// ChunkOffset and ChunkCount are not checked against the chunk table while
// parsing; see Layout.SpriteChunks.
type Sprite struct {
	Variant
	ID          uint8
	ChunkOffset int
	ChunkCount  int
}

type spriteRecord struct {
	ID, Aux, Flags, Tag     uint8
	ChunkOffset, ChunkCount uint32
}

// classify maps a type tag onto a Variant.
func classify(tag, aux uint8) (Variant, error) {
	switch tag {
	case TYPE_BASE:
		return Variant{Type: Base}, nil
	case TYPE_SUB:
		return Variant{Type: Sub}, nil
	case TYPE_DEP_30, TYPE_DEP_40, TYPE_DEP_60:
		return Variant{Type: Dependent, ExactType: tag, DependsOn: aux}, nil
	case TYPE_OVERLAY:
		return Variant{Type: Overlay}, nil
	}
	return Variant{}, errors.Wrapf(ErrUnknownSpriteType, "%#02x", tag)
}

// spriteTable is the output of the sprite classifier.
type spriteTable struct {
	sprites []Sprite
	subMap  map[uint8]int
	baseDep int
}

// readSprites reads count sprite records, indexes sub sprites by id and
// finds the base sprite.
func readSprites(r io.Reader, count uint32) (*spriteTable, error) {
	t := &spriteTable{
		sprites: make([]Sprite, 0, prealloc(count)),
		subMap:  make(map[uint8]int),
		baseDep: NoBase,
	}

	for i := uint32(0); i < count; i++ {
		var rec spriteRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, readFailure("sprites", errors.Wrapf(err, "reading sprite %d of %d", i, count))
		}

		v, err := classify(rec.Tag, rec.Aux)
		if err != nil {
			return nil, formatFailure("sprites", errors.Wrapf(err, "sprite %d", i))
		}
		s := Sprite{
			Variant:     v,
			ID:          rec.ID,
			ChunkOffset: int(rec.ChunkOffset),
			ChunkCount:  int(rec.ChunkCount),
		}
		glog.V(2).Infof("lay: sprite %d: id %d %s chunks %d+%d", i, s.ID, s.Variant, s.ChunkOffset, s.ChunkCount)

		switch s.Type {
		case Overlay:
			if rec.Aux != 0 || rec.Flags != overlayFlags {
				warnf("lay: sprite %d: ambiguous overlay head: aux %#02x flags %#02x", i, rec.Aux, rec.Flags)
			}
		default:
			if rec.Flags != 0 {
				warnf("lay: sprite %d: ambiguous %s head: flags %#02x", i, s.Type, rec.Flags)
			}
		}
		if s.Type == Sub {
			// Last one wins on duplicate ids.
			t.subMap[s.ID] = len(t.sprites)
		}

		t.sprites = append(t.sprites, s)
	}

	if len(t.sprites) == 0 {
		return nil, formatFailure("sprites", ErrNoSprites)
	}

	// Only the first sprite can serve as the base; a base sprite found
	// anywhere else leaves the sub sprites without a dependency.
	if t.sprites[0].Type == Base {
		t.baseDep = 0
	}
	return t, nil
}
