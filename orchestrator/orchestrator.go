// Package orchestrator exposes the top-level read/write operations over a
// UVT file, a Bag container, or an MCAP container: it resolves map and
// trajectory topics, parses every matching message concurrently while
// preserving wire order, and assembles the result into a uvtcodec.Uvt.
package orchestrator

import (
	"fmt"
	"os"

	"github.com/ugv-telemetry/uvt/backend"
	"github.com/ugv-telemetry/uvt/container/bag"
	"github.com/ugv-telemetry/uvt/container/mcap"
	"github.com/ugv-telemetry/uvt/geometry"
	"github.com/ugv-telemetry/uvt/internal/options"
	"github.com/ugv-telemetry/uvt/pointcloud"
	"github.com/ugv-telemetry/uvt/trajectory"
	"github.com/ugv-telemetry/uvt/uvtcodec"
	"github.com/ugv-telemetry/uvt/uvterr"
)

// ReadUvt parses a UVT text file directly, with no container involved.
func ReadUvt(path string) (uvtcodec.Uvt, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}

	return uvtcodec.Read(content, uvtcodec.Passthrough{})
}

// WriteUvt serialises u to path as a UVT text file.
func WriteUvt(path string, u uvtcodec.Uvt) error {
	out, err := uvtcodec.Write(u, uvtcodec.Passthrough{})
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}

// ReadBag reads a ROS 1 bag v2.0 file, resolving the map and trajectory
// topics (by default "/map" and "/odom"), parsing every matching message,
// and taking the last map message's points as the canonical map payload.
func ReadBag(path string, opts ...Option) (uvtcodec.Uvt, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return uvtcodec.Uvt{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}

	mapMsgs, err := bag.ReadTopicMessages(content, cfg.mapTopic)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}
	if len(mapMsgs) == 0 {
		return uvtcodec.Uvt{}, fmt.Errorf("%w: %s", uvterr.ErrTopicNotFound, cfg.mapTopic)
	}

	trajMsgs, err := bag.ReadTopicMessages(content, cfg.trajTopic)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}
	if len(trajMsgs) == 0 {
		return uvtcodec.Uvt{}, fmt.Errorf("%w: %s", uvterr.ErrTopicNotFound, cfg.trajTopic)
	}

	return assemble(
		dataOf(mapMsgs, func(m bag.Message) []byte { return m.Data }),
		dataOf(trajMsgs, func(m bag.Message) []byte { return m.Data }),
		func(data []byte) (*pointcloud.PointCloud2, error) { return pointcloud.Parse(backend.NewBagBackend(data)) },
		func(data []byte) (geometry.PoseStamped, error) { return trajectory.Parse(backend.NewBagBackend(data)) },
		cfg.workerCount,
	)
}

// ReadMCAP reads an MCAP file, identically shaped to ReadBag but iterating
// a memory-mapped message stream filtered by topic.
func ReadMCAP(path string, opts ...Option) (uvtcodec.Uvt, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return uvtcodec.Uvt{}, err
	}

	mapMsgs, err := mcap.ReadTopicMessages(path, cfg.mapTopic)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}
	if len(mapMsgs) == 0 {
		return uvtcodec.Uvt{}, fmt.Errorf("%w: %s", uvterr.ErrTopicNotFound, cfg.mapTopic)
	}

	trajMsgs, err := mcap.ReadTopicMessages(path, cfg.trajTopic)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}
	if len(trajMsgs) == 0 {
		return uvtcodec.Uvt{}, fmt.Errorf("%w: %s", uvterr.ErrTopicNotFound, cfg.trajTopic)
	}

	return assemble(
		dataOf(mapMsgs, func(m mcap.Message) []byte { return m.Data }),
		dataOf(trajMsgs, func(m mcap.Message) []byte { return m.Data }),
		func(data []byte) (*pointcloud.PointCloud2, error) { return pointcloud.Parse(backend.NewMcapBackend(data)) },
		func(data []byte) (geometry.PoseStamped, error) { return trajectory.Parse(backend.NewMcapBackend(data)) },
		cfg.workerCount,
	)
}

func dataOf[M any](msgs []M, data func(M) []byte) [][]byte {
	out := make([][]byte, len(msgs))
	for i, m := range msgs {
		out[i] = data(m)
	}

	return out
}

// assemble parses the map and trajectory message bodies concurrently,
// preserving wire order, takes the last parsed map cloud's points as the
// canonical map, and builds the resulting Uvt.
func assemble(
	mapData, trajData [][]byte,
	parseCloud func([]byte) (*pointcloud.PointCloud2, error),
	parsePose func([]byte) (geometry.PoseStamped, error),
	workers int,
) (uvtcodec.Uvt, error) {
	clouds, err := parseParallel(mapData, workers, parseCloud)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}

	lastCloud := clouds[len(clouds)-1]

	points, err := lastCloud.Points()
	if err != nil {
		return uvtcodec.Uvt{}, err
	}
	if len(points) == 0 {
		return uvtcodec.Uvt{}, uvterr.ErrEmptyMap
	}

	trajectory, err := parseParallel(trajData, workers, parsePose)
	if err != nil {
		return uvtcodec.Uvt{}, err
	}

	return uvtcodec.Uvt{
		Map:        uvtcodec.Map{Raw: buildInlinePolyData(points)},
		Trajectory: trajectory,
	}, nil
}
