// Package uvt reads and writes Uncrewed Vehicle Trajectory files: a UVT
// text file pairing a map blob with a pose trajectory, or a ROS 1 bag /
// MCAP container carrying the same two message streams on separate topics.
//
// # Basic Usage
//
// Reading a UVT text file directly:
//
//	import "github.com/ugv-telemetry/uvt"
//
//	doc, err := uvt.ReadUVT("course.uvt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d poses on frame %q\n", len(doc.Trajectory), doc.Trajectory[0].Header.FrameID)
//
// Reading a recorded ROS 1 bag, resolving the default "/map" and "/odom"
// topics:
//
//	doc, err := uvt.ReadBag("run.bag")
//
// Overriding the topics and the parse worker count:
//
//	doc, err := uvt.ReadBag("run.bag",
//	    uvt.WithMapTopic("/environment_map"),
//	    uvt.WithTrajTopic("/vehicle/odom"),
//	    uvt.WithWorkerCount(8),
//	)
//
// Reading an MCAP recording is identical in shape:
//
//	doc, err := uvt.ReadMCAP("run.mcap", uvt.WithTrajTopic("/vehicle/odom"))
//
// Writing a UVT file back out:
//
//	err := uvt.WriteUVT("course.uvt", doc)
//
// # Package Structure
//
// This package is a thin convenience layer over orchestrator, uvtcodec,
// pointcloud, trajectory, and geometry. Reach for those packages directly
// when you need a custom MapCodec or finer control over parsing.
package uvt

import (
	"github.com/ugv-telemetry/uvt/orchestrator"
	"github.com/ugv-telemetry/uvt/uvtcodec"
)

// Uvt is the in-memory contents of a UVT document: an opaque map section
// and an ordered trajectory.
type Uvt = uvtcodec.Uvt

// ReadUVT parses a UVT text file.
func ReadUVT(path string) (Uvt, error) {
	return orchestrator.ReadUvt(path)
}

// WriteUVT serialises doc to path as a UVT text file.
func WriteUVT(path string, doc Uvt) error {
	return orchestrator.WriteUvt(path, doc)
}

// Option configures ReadBag or ReadMCAP.
type Option = orchestrator.Option

// ReadBag reads a ROS 1 bag v2.0 file, resolving the map and trajectory
// topics ("/map" and "/odom" by default), parsing every matching message
// concurrently while preserving wire order, and taking the last map
// message's points as the canonical map.
func ReadBag(path string, opts ...Option) (Uvt, error) {
	return orchestrator.ReadBag(path, opts...)
}

// ReadMCAP reads an MCAP file, identically shaped to ReadBag but iterating
// a memory-mapped message stream.
func ReadMCAP(path string, opts ...Option) (Uvt, error) {
	return orchestrator.ReadMCAP(path, opts...)
}

// WithMapTopic overrides the topic ReadBag/ReadMCAP treat as the map
// source. Default "/map".
func WithMapTopic(topic string) Option {
	return orchestrator.WithMapTopic(topic)
}

// WithTrajTopic overrides the topic ReadBag/ReadMCAP treat as the
// trajectory source. Default "/odom".
func WithTrajTopic(topic string) Option {
	return orchestrator.WithTrajTopic(topic)
}

// WithWorkerCount overrides the number of goroutines used to parse message
// bodies concurrently.
func WithWorkerCount(n int) Option {
	return orchestrator.WithWorkerCount(n)
}
