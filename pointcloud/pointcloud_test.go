package pointcloud

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugv-telemetry/uvt/backend"
	"github.com/ugv-telemetry/uvt/format"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func bagLPString(s string) []byte {
	b := u32le(uint32(len(s)))
	return append(b, s...)
}

// TestParse_S3 reproduces the minimal Bag point message scenario: a 42-byte
// header-only cloud with height=1, width=2, zero fields, and no point data.
// It must parse without error and report zero points.
func TestParse_S3(t *testing.T) {
	var data []byte
	data = append(data, u32le(0)...)         // seq
	data = append(data, u32le(0)...)         // sec
	data = append(data, u32le(0)...)         // nsec
	data = append(data, bagLPString("")...)  // frame_id
	data = append(data, u32le(1)...)         // height
	data = append(data, u32le(2)...)         // width
	data = append(data, u32le(0)...)         // n_fields
	data = append(data, 0x00)                // is_bigendian
	data = append(data, u32le(0)...)         // point_step
	data = append(data, u32le(0)...)         // row_step
	data = append(data, u32le(0)...)         // data_len
	data = append(data, 0x01)                // is_dense

	be := backend.NewBagBackend(data)
	cloud, err := Parse(be)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), cloud.Height)
	assert.Equal(t, uint32(2), cloud.Width)
	assert.Empty(t, cloud.Fields)
	assert.True(t, cloud.IsDense)
	assert.Equal(t, 0, cloud.NPoints())

	points, err := cloud.Points()
	require.NoError(t, err)
	assert.Empty(t, points)
}

func bagField(name string, offset uint32, dt format.DataType, count uint32) []byte {
	var b []byte
	b = append(b, bagLPString(name)...)
	b = append(b, u32le(offset)...)
	b = append(b, byte(dt))
	b = append(b, u32le(count)...)
	return b
}

func mcapAlignedString(s string, align int) []byte {
	var b []byte
	b = append(b, u32le(uint32(len(s)))...)
	b = append(b, s...)
	b = append(b, 0x00)
	if align > 1 {
		pad := (align - (len(s) % align)) % align
		b = append(b, make([]byte, pad)...)
	}
	return b
}

func mcapField(name string, offset uint32, dt format.DataType, count uint32) []byte {
	var b []byte
	b = append(b, mcapAlignedString(name, 4)...)
	b = append(b, u32le(offset)...)
	b = append(b, byte(dt))
	b = append(b, make([]byte, 3)...) // pad 1 byte to 4
	b = append(b, u32le(count)...)
	return b
}

// TestParse_BackendEquivalence builds the same logical one-point cloud (a
// single point with x, y float32 fields at offsets 0 and 4) in both Bag and
// MCAP wire encodings and asserts the two backends extract identical points
// and logical field metadata.
func TestParse_BackendEquivalence(t *testing.T) {
	x := math32bits(1.5)
	y := math32bits(-2.5)

	var bagData []byte
	bagData = append(bagData, u32le(7)...)              // seq
	bagData = append(bagData, u32le(100)...)            // sec
	bagData = append(bagData, u32le(200)...)            // nsec
	bagData = append(bagData, bagLPString("lidar")...)  // frame_id
	bagData = append(bagData, u32le(1)...)              // height
	bagData = append(bagData, u32le(1)...)              // width
	bagData = append(bagData, u32le(2)...)              // n_fields
	bagData = append(bagData, bagField("x", 0, format.Float32, 1)...)
	bagData = append(bagData, bagField("y", 4, format.Float32, 1)...)
	bagData = append(bagData, 0x00)         // is_bigendian
	bagData = append(bagData, u32le(8)...)  // point_step
	bagData = append(bagData, u32le(8)...)  // row_step
	bagData = append(bagData, u32le(8)...)  // data_len
	bagData = append(bagData, x...)
	bagData = append(bagData, y...)
	bagData = append(bagData, 0x01) // is_dense

	var mcapData []byte
	mcapData = append(mcapData, 0x00, 0x01, 0x00, 0x00) // CDR prologue
	mcapData = append(mcapData, u32le(100)...)
	mcapData = append(mcapData, u32le(200)...)
	mcapData = append(mcapData, mcapAlignedString("lidar", 4)...)
	mcapData = append(mcapData, u32le(1)...) // height
	mcapData = append(mcapData, u32le(1)...) // width
	mcapData = append(mcapData, u32le(2)...) // n_fields
	mcapData = append(mcapData, mcapField("x", 0, format.Float32, 1)...)
	mcapData = append(mcapData, mcapField("y", 4, format.Float32, 1)...)
	mcapData = append(mcapData, 0x00, 0x00, 0x00, 0x00) // is_bigendian + pad to 4
	mcapData = append(mcapData, u32le(8)...)            // point_step
	mcapData = append(mcapData, u32le(8)...)            // row_step
	mcapData = append(mcapData, u32le(8)...)            // data_len
	mcapData = append(mcapData, x...)
	mcapData = append(mcapData, y...)
	mcapData = append(mcapData, 0x01, 0x00, 0x00, 0x00) // is_dense + pad to 4

	bagCloud, err := Parse(backend.NewBagBackend(bagData))
	require.NoError(t, err)

	mcapCloud, err := Parse(backend.NewMcapBackend(mcapData))
	require.NoError(t, err)

	assert.Equal(t, bagCloud.Header.FrameID, mcapCloud.Header.FrameID)
	assert.Equal(t, bagCloud.Header.Stamp, mcapCloud.Header.Stamp)
	assert.Equal(t, bagCloud.Height, mcapCloud.Height)
	assert.Equal(t, bagCloud.Width, mcapCloud.Width)
	assert.Equal(t, bagCloud.Fields, mcapCloud.Fields)
	assert.Equal(t, bagCloud.PointStep, mcapCloud.PointStep)
	assert.Equal(t, bagCloud.Data, mcapCloud.Data)
	assert.Equal(t, bagCloud.IsDense, mcapCloud.IsDense)

	bagPoints, err := bagCloud.Points()
	require.NoError(t, err)
	mcapPoints, err := mcapCloud.Points()
	require.NoError(t, err)

	require.Len(t, bagPoints, 1)
	require.Len(t, mcapPoints, 1)
	assert.Equal(t, bagPoints[0], mcapPoints[0])
	assert.InDelta(t, 1.5, bagPoints[0].X, 1e-6)
	assert.InDelta(t, -2.5, bagPoints[0].Y, 1e-6)
}

func math32bits(f float32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
	return b
}
