package backend

import (
	"fmt"
	"unicode/utf8"

	"github.com/ugv-telemetry/uvt/bytecursor"
	"github.com/ugv-telemetry/uvt/geometry"
	"github.com/ugv-telemetry/uvt/uvterr"
)

// McapBackend reads an MCAP message body under CDR (Common Data
// Representation) alignment rules: every message payload begins with a
// 4-byte encapsulation prologue, strings are NUL-terminated and padded to
// the alignment of the field that follows them, and single bytes are padded
// the same way.
type McapBackend struct {
	cursor *bytecursor.Cursor
}

var _ ReaderBackend = (*McapBackend)(nil)

// NewMcapBackend wraps a message payload for MCAP-style CDR decoding.
func NewMcapBackend(data []byte) *McapBackend {
	return &McapBackend{cursor: bytecursor.New(data)}
}

func (m *McapBackend) ReadU8() (uint8, error) {
	return m.cursor.ReadU8()
}

func (m *McapBackend) ReadU32LE() (uint32, error) {
	return m.cursor.ReadU32LE()
}

func (m *McapBackend) ReadF64LE() (float64, error) {
	return m.cursor.ReadF64LE()
}

func (m *McapBackend) ReadLPString() (string, error) {
	return m.cursor.ReadLPString()
}

func (m *McapBackend) ReadNULTerminatedString() (string, error) {
	return m.cursor.ReadNULTerminatedString()
}

// readEncapsulationPrologue validates the 4-byte CDR representation header
// that precedes every MCAP message body, failing INVALID unless it marks
// little-endian CDR (the only encoding this module produces or consumes).
func (m *McapBackend) readEncapsulationPrologue() error {
	b, err := m.cursor.Slice(4)
	if err != nil {
		return err
	}

	if b[0] != 0x00 || b[1] != 0x01 {
		return fmt.Errorf("%w: unrecognized CDR encapsulation prologue % x", uvterr.ErrInvalid, b)
	}

	return nil
}

// ReadHeader validates and skips the CDR prologue (failing INVALID unless it
// marks little-endian CDR), then reads sec:i32, nsec:u32,
// frame_id:lp_string aligned to 4 bytes (the following field is always a
// u32). seq is reported as 0 because MCAP's wire format omits it.
func (m *McapBackend) ReadHeader() (geometry.Header, error) {
	if err := m.readEncapsulationPrologue(); err != nil {
		return geometry.Header{}, err
	}

	sec, err := m.cursor.ReadI32LE()
	if err != nil {
		return geometry.Header{}, err
	}

	nsec, err := m.cursor.ReadU32LE()
	if err != nil {
		return geometry.Header{}, err
	}

	frameID, err := m.ReadLPStringAligned(4)
	if err != nil {
		return geometry.Header{}, err
	}

	return geometry.Header{
		Seq:     0,
		Stamp:   geometry.Time{Sec: sec, Nanosec: nsec},
		FrameID: frameID,
	}, nil
}

// ReadU8Aligned reads one byte, then consumes the padding needed to reach
// nextAlign.
func (m *McapBackend) ReadU8Aligned(nextAlign int) (uint8, error) {
	v, err := m.cursor.ReadU8()
	if err != nil {
		return 0, err
	}

	if err := m.cursor.Skip(padLen(1, nextAlign)); err != nil {
		return 0, err
	}

	return v, nil
}

// ReadLPStringAligned reads a 4-byte length L, L content bytes, a single
// trailing NUL byte, then pads based on L to reach nextAlign.
func (m *McapBackend) ReadLPStringAligned(nextAlign int) (string, error) {
	length, err := m.cursor.ReadU32LE()
	if err != nil {
		return "", err
	}

	content, err := m.cursor.Slice(int(length))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: aligned string", uvterr.ErrInvalidUTF8)
	}

	if _, err := m.cursor.ReadU8(); err != nil { // trailing NUL
		return "", err
	}

	if err := m.cursor.Skip(padLen(int(length), nextAlign)); err != nil {
		return "", err
	}

	return string(content), nil
}

func (m *McapBackend) Take(n int) ([]byte, error) {
	return m.cursor.Slice(n)
}
