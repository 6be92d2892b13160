package bytecursor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugv-telemetry/uvt/uvterr"
)

func TestReadPrimitives(t *testing.T) {
	data := []byte{
		0x01,                   // u8
		0x02, 0x00,             // u16 LE = 2
		0x03, 0x00, 0x00, 0x00, // u32 LE = 3
	}
	c := New(data)

	u8, err := c.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)

	u16, err := c.ReadU16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), u16)

	u32, err := c.ReadU32LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), u32)

	assert.Equal(t, 0, c.Remaining())
}

func TestReadU64LE(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}
	c := New(data)

	v, err := c.ReadU64LE()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffffffff), v)
}

func TestReadFloats(t *testing.T) {
	var data []byte
	data = append(data, 0x00, 0x00, 0x80, 0x3f) // float32 1.0 LE
	data = append(data, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f) // float64 1.0 LE

	c := New(data)

	f32, err := c.ReadF32LE()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)

	f64, err := c.ReadF64LE()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f64)
}

func TestReadSignedIntegers(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	c := New(data)

	i16, err := c.ReadI16LE()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	i32, err := c.ReadI32LE()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)
}

func TestSlice_Underrun(t *testing.T) {
	c := New([]byte{1, 2, 3})

	_, err := c.Slice(4)
	assert.ErrorIs(t, err, uvterr.ErrUnderrun)
}

func TestReadU32LE_Underrun(t *testing.T) {
	c := New([]byte{1, 2})

	_, err := c.ReadU32LE()
	assert.ErrorIs(t, err, uvterr.ErrUnderrun)
}

func TestPeek(t *testing.T) {
	c := New([]byte{0xaa, 0xbb})

	b, ok := c.Peek(1)
	assert.True(t, ok)
	assert.Equal(t, byte(0xbb), b)

	_, ok = c.Peek(5)
	assert.False(t, ok)

	assert.Equal(t, 0, c.Pos(), "Peek must not advance the cursor")
}

func TestReadLPString(t *testing.T) {
	var data []byte
	data = append(data, 3, 0, 0, 0) // length = 3
	data = append(data, 'f', 'o', 'o')

	c := New(data)
	s, err := c.ReadLPString()
	require.NoError(t, err)
	assert.Equal(t, "foo", s)
}

func TestReadLPString_InvalidUTF8(t *testing.T) {
	var data []byte
	data = append(data, 2, 0, 0, 0)
	data = append(data, 0xff, 0xfe)

	c := New(data)
	_, err := c.ReadLPString()
	assert.ErrorIs(t, err, uvterr.ErrInvalidUTF8)
}

func TestReadLPString_Underrun(t *testing.T) {
	var data []byte
	data = append(data, 10, 0, 0, 0)
	data = append(data, 'a', 'b')

	c := New(data)
	_, err := c.ReadLPString()
	assert.ErrorIs(t, err, uvterr.ErrUnderrun)
}

func TestReadNULTerminatedString(t *testing.T) {
	var data []byte
	data = append(data, 0, 0, 0, 0) // length prefix, unused by this reader
	data = append(data, 'b', 'a', 'r', 0)

	c := New(data)
	s, err := c.ReadNULTerminatedString()
	require.NoError(t, err)
	assert.Equal(t, "bar", s)
}

func TestDumpHex(t *testing.T) {
	c := New([]byte("hello world, this spans more than sixteen bytes"))
	dump := c.DumpHex()

	assert.Contains(t, dump, "00000000:")
	assert.Contains(t, dump, "|hello world, thi|")
}

func TestWriteHexDump(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03})
	path := filepath.Join(t.TempDir(), "dump.hex")

	err := c.WriteHexDump(path)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "01 02 03")
}
