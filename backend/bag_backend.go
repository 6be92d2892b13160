package backend

import (
	"github.com/ugv-telemetry/uvt/bytecursor"
	"github.com/ugv-telemetry/uvt/geometry"
)

// BagBackend reads a Bag message body: no CDR alignment, 4-byte
// length-prefixed strings with no padding, header carries seq/sec/nsec/frame
// in wire order.
type BagBackend struct {
	cursor *bytecursor.Cursor
}

var _ ReaderBackend = (*BagBackend)(nil)

// NewBagBackend wraps a message payload for Bag-style decoding.
func NewBagBackend(data []byte) *BagBackend {
	return &BagBackend{cursor: bytecursor.New(data)}
}

func (b *BagBackend) ReadU8() (uint8, error) {
	return b.cursor.ReadU8()
}

func (b *BagBackend) ReadU32LE() (uint32, error) {
	return b.cursor.ReadU32LE()
}

func (b *BagBackend) ReadF64LE() (float64, error) {
	return b.cursor.ReadF64LE()
}

func (b *BagBackend) ReadLPString() (string, error) {
	return b.cursor.ReadLPString()
}

func (b *BagBackend) ReadNULTerminatedString() (string, error) {
	return b.cursor.ReadNULTerminatedString()
}

// ReadHeader reads seq:u32, sec:i32, nsec:u32, frame_id:lp_string in that
// order, with seq carried verbatim from the wire.
func (b *BagBackend) ReadHeader() (geometry.Header, error) {
	seq, err := b.cursor.ReadU32LE()
	if err != nil {
		return geometry.Header{}, err
	}

	sec, err := b.cursor.ReadI32LE()
	if err != nil {
		return geometry.Header{}, err
	}

	nsec, err := b.cursor.ReadU32LE()
	if err != nil {
		return geometry.Header{}, err
	}

	frameID, err := b.cursor.ReadLPString()
	if err != nil {
		return geometry.Header{}, err
	}

	return geometry.Header{
		Seq:     seq,
		Stamp:   geometry.Time{Sec: sec, Nanosec: nsec},
		FrameID: frameID,
	}, nil
}

// ReadU8Aligned ignores nextAlign and behaves like ReadU8.
func (b *BagBackend) ReadU8Aligned(nextAlign int) (uint8, error) {
	return b.cursor.ReadU8()
}

// ReadLPStringAligned ignores nextAlign and behaves like ReadLPString.
func (b *BagBackend) ReadLPStringAligned(nextAlign int) (string, error) {
	return b.cursor.ReadLPString()
}

func (b *BagBackend) Take(n int) ([]byte, error) {
	return b.cursor.Slice(n)
}
