// Package save is the persisted projection of the game context and its
// binary codec. A save is the magic "PPET", a big-endian uint16 format
// version and a CBOR body.
package save

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Version is the format written by Encode.
const Version uint16 = 1

var magic = [4]byte{'P', 'P', 'E', 'T'}

const headerLen = len(magic) + 2

var (
	ErrBadMagic           = errors.New("save: bad magic")
	ErrUnsupportedVersion = errors.New("save: unsupported version")
	ErrCorrupt            = errors.New("save: corrupt body")
)

// Snapshot is everything that survives a restart. The generator, the
// temperature and dialog answers are not saved.
type Snapshot struct {
	Timestamp timestamp.Timestamp    `cbor:"1,keyasint" yaml:"timestamp"`
	Pet       pet.Instance           `cbor:"2,keyasint" yaml:"pet"`
	Poops     [pet.MaxPoops]pet.Poop `cbor:"3,keyasint" yaml:"poops"`
	Money     pet.Money              `cbor:"4,keyasint" yaml:"money"`
	Inventory pet.Inventory          `cbor:"5,keyasint" yaml:"inventory"`
	Layout    pet.HomeLayout         `cbor:"6,keyasint" yaml:"layout"`
	Records   pet.History            `cbor:"7,keyasint" yaml:"records"`
	Egg       *pet.Egg               `cbor:"8,keyasint,omitempty" yaml:"egg,omitempty"`
	Suitor    pet.SuitorSystem       `cbor:"9,keyasint" yaml:"suitor"`
	Explore   pet.Explore            `cbor:"10,keyasint" yaml:"explore"`
	Alarm     pet.Alarm              `cbor:"11,keyasint" yaml:"alarm"`
	Muted     bool                   `cbor:"12,keyasint" yaml:"muted"`
	Checks    gamectx.Checks         `cbor:"13,keyasint" yaml:"checks"`
}

// Generate captures ctx as of now.
func Generate(now timestamp.Timestamp, ctx *gamectx.Context) Snapshot {
	s := Snapshot{
		Timestamp: now,
		Pet:       ctx.Pet,
		Poops:     ctx.Poops,
		Money:     ctx.Money,
		Inventory: ctx.Inventory,
		Layout:    ctx.Layout,
		Records:   ctx.Records,
		Suitor:    ctx.Suitor,
		Explore:   ctx.Explore,
		Alarm:     ctx.Alarm,
		Muted:     ctx.Sound.Muted,
		Checks:    ctx.Checks,
	}
	if ctx.Pet.Parents != nil {
		parents := *ctx.Pet.Parents
		s.Pet.Parents = &parents
	}
	if ctx.Egg != nil {
		egg := *ctx.Egg
		s.Egg = &egg
	}
	return s
}

// Apply writes the snapshot into ctx. The generator is kept as is.
func (s Snapshot) Apply(ctx *gamectx.Context) {
	ctx.Pet = s.Pet
	ctx.Poops = s.Poops
	ctx.Money = s.Money
	ctx.Inventory = s.Inventory
	ctx.Layout = s.Layout
	ctx.Records = s.Records
	ctx.Egg = nil
	if s.Egg != nil {
		egg := *s.Egg
		ctx.Egg = &egg
	}
	ctx.Suitor = s.Suitor
	ctx.Explore = s.Explore
	ctx.Alarm = s.Alarm
	ctx.Sound = pet.Sound{Muted: s.Muted}
	ctx.Checks = s.Checks
	ctx.ShouldSave = false
	ctx.SetTimestamp = nil
	ctx.Mailbox = gamectx.Mailbox{}
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = (cbor.EncOptions{Sort: cbor.SortCoreDeterministic}).EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}).DecMode(); err != nil {
		panic(err)
	}
}

// Encode serializes s.
func Encode(s Snapshot) ([]byte, error) {
	body, err := encMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("save: cannot encode: %w", err)
	}
	out := make([]byte, headerLen, headerLen+len(body))
	copy(out, magic[:])
	binary.BigEndian.PutUint16(out[len(magic):], Version)
	return append(out, body...), nil
}

// Decode parses data written by Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if len(data) < headerLen || !bytes.Equal(data[:len(magic)], magic[:]) {
		return s, ErrBadMagic
	}
	if v := binary.BigEndian.Uint16(data[len(magic):]); v != Version {
		return s, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	if err := decMode.Unmarshal(data[headerLen:], &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if !s.Pet.DefID.Valid() {
		return Snapshot{}, fmt.Errorf("%w: unknown species %d", ErrCorrupt, s.Pet.DefID)
	}
	return s, nil
}
