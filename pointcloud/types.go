// Package pointcloud parses a dense point-cloud message (the wire analog of
// sensor_msgs/msg/PointCloud2 in ROS) from either transport encoding via the
// backend.ReaderBackend capability interface, and extracts the x/y/z triple
// from its raw per-point byte data.
package pointcloud

import (
	"github.com/ugv-telemetry/uvt/format"
	"github.com/ugv-telemetry/uvt/geometry"
)

// PointField describes one scalar channel in a point-cloud message's
// per-point struct: its name, byte offset within the struct, wire type, and
// element count.
type PointField struct {
	Name     string
	Offset   uint32
	DataType format.DataType
	Count    uint32
}

// PointCloud2 is the analog of sensor_msgs/msg/PointCloud2 in ROS: a
// 2-D grid of points, each laid out per Fields within a Data buffer whose
// row stride is RowStep and whose per-point stride is PointStep.
type PointCloud2 struct {
	Header      geometry.Header
	Height      uint32
	Width       uint32
	Fields      []PointField
	IsBigEndian bool
	PointStep   uint32
	RowStep     uint32
	Data        []byte
	IsDense     bool
}

// Len returns the length in bytes of the raw point data.
func (pc *PointCloud2) Len() int {
	return len(pc.Data)
}

// NPoints returns the number of points represented in Data, derived from
// PointStep. Returns 0 if PointStep is 0.
func (pc *PointCloud2) NPoints() int {
	if pc.PointStep == 0 {
		return 0
	}

	return len(pc.Data) / int(pc.PointStep)
}

func (pc *PointCloud2) fieldByName(name string) (PointField, bool) {
	for _, f := range pc.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return PointField{}, false
}
