// Package bytecursor provides a positioned, read-only view over an
// in-memory byte buffer: bounds-checked little-endian primitives, the two
// string encodings the wire formats use, and a hex dump for debugging a
// message buffer that failed to parse.
package bytecursor

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ugv-telemetry/uvt/uvterr"
)

// Cursor reads sequentially from a byte buffer, advancing its position on
// every successful read and failing with uvterr.ErrUnderrun once a read
// would run past the end of the buffer.
type Cursor struct {
	data []byte
	pos  int
}

// New wraps data in a Cursor positioned at offset 0.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos returns the cursor's current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Peek returns the byte at the given absolute position without advancing the
// cursor. The second return is false if position is out of bounds.
func (c *Cursor) Peek(position int) (byte, bool) {
	if position < 0 || position >= len(c.data) {
		return 0, false
	}

	return c.data[position], true
}

// Slice reads and returns the next n bytes, advancing the cursor.
func (c *Cursor) Slice(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", uvterr.ErrUnderrun, n, c.pos, c.Remaining())
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Slice(n)
	return err
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Slice(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.Slice(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.Slice(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE() (uint64, error) {
	b, err := c.Slice(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

// ReadI16LE reads a little-endian int16.
func (c *Cursor) ReadI16LE() (int16, error) {
	v, err := c.ReadU16LE()
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

// ReadI32LE reads a little-endian int32.
func (c *Cursor) ReadI32LE() (int32, error) {
	v, err := c.ReadU32LE()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadF32LE reads a little-endian IEEE-754 single-precision float.
func (c *Cursor) ReadF32LE() (float32, error) {
	v, err := c.ReadU32LE()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadF64LE reads a little-endian IEEE-754 double-precision float.
func (c *Cursor) ReadF64LE() (float64, error) {
	b, err := c.Slice(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadLPString reads a 4-byte little-endian length prefix followed by that
// many bytes, decoded as UTF-8. It does not trim a NUL terminator or consume
// padding; callers needing CDR alignment do so separately.
func (c *Cursor) ReadLPString() (string, error) {
	n, err := c.ReadU32LE()
	if err != nil {
		return "", err
	}

	b, err := c.Slice(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: length-prefixed string at offset %d", uvterr.ErrInvalidUTF8, c.pos-int(n))
	}

	return string(b), nil
}

// ReadNULTerminatedString reads a 4-byte length prefix (not used to bound
// the read) followed by bytes up to and including the first 0x00, returning
// everything before the terminator decoded as UTF-8.
func (c *Cursor) ReadNULTerminatedString() (string, error) {
	if _, err := c.ReadU32LE(); err != nil {
		return "", err
	}

	var b []byte
	for {
		v, err := c.ReadU8()
		if err != nil {
			return "", err
		}
		if v == 0 {
			break
		}
		b = append(b, v)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: NUL-terminated string", uvterr.ErrInvalidUTF8)
	}

	return string(b), nil
}

// DumpHex renders the buffer as a canonical 16-byte-per-row hex dump with an
// ASCII gutter, independent of the cursor's current position.
func (c *Cursor) DumpHex() string {
	var sb strings.Builder

	for offset := 0; offset < len(c.data); offset += 16 {
		end := offset + 16
		if end > len(c.data) {
			end = len(c.data)
		}
		row := c.data[offset:end]

		fmt.Fprintf(&sb, "%08x:", offset)
		for _, b := range row {
			fmt.Fprintf(&sb, " %02x", b)
		}
		for pad := len(row); pad < 16; pad++ {
			sb.WriteString("   ")
		}

		sb.WriteString("  |")
		for _, b := range row {
			if b >= 0x20 && b <= 0x7e {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// WriteHexDump writes DumpHex's output to path.
func (c *Cursor) WriteHexDump(path string) error {
	return os.WriteFile(path, []byte(c.DumpHex()), 0o644)
}
