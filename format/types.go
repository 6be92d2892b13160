// Package format defines the small, closed wire-format enumerations shared
// by the backend, pointcloud, and container packages: the per-field scalar
// type tag carried by a PointField, and the chunk compression algorithm
// tag carried by a Bag or MCAP container.
package format

import (
	"fmt"

	"github.com/ugv-telemetry/uvt/uvterr"
)

// DataType is the wire byte identifying a PointField's scalar type.
// Analog to sensor_msgs/msg/PointField's datatype constants in ROS.
type DataType uint8

const (
	Int8    DataType = 1
	Uint8   DataType = 2
	Int16   DataType = 3
	Uint16  DataType = 4
	Int32   DataType = 5
	Uint32  DataType = 6
	Float32 DataType = 7
	Float64 DataType = 8
)

func (d DataType) String() string {
	switch d {
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// ParseDataType converts a wire byte to a DataType, rejecting any value
// outside the closed 1..8 range rather than silently defaulting.
func ParseDataType(b uint8) (DataType, error) {
	d := DataType(b)
	if d < Int8 || d > Float64 {
		return 0, fmt.Errorf("%w: %d", uvterr.ErrUnknownDataType, b)
	}

	return d, nil
}

// Size returns the byte width of a single element of d, or 0 if d is not
// a recognized datatype.
func (d DataType) Size() int {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Compression identifies the algorithm a container chunk was compressed
// with.
type Compression uint8

const (
	CompressionNone Compression = 1
	CompressionBZ2  Compression = 2
	CompressionLZ4  Compression = 3
	CompressionZstd Compression = 4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionBZ2:
		return "BZ2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
