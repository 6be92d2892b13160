package pointcloud

import (
	"fmt"
	"math"

	"github.com/ugv-telemetry/uvt/endian"
	"github.com/ugv-telemetry/uvt/format"
	"github.com/ugv-telemetry/uvt/geometry"
	"github.com/ugv-telemetry/uvt/internal/pool"
	"github.com/ugv-telemetry/uvt/uvterr"
)

// Points extracts the x/y/z triple of every point in pc.Data. Only
// Float32, Float64, and Uint16 field types promote to the f64 coordinate
// used downstream; any other type present in the x, y, or z field fails
// with ErrUnsupportedFieldType. A field named x, y, or z that is absent
// from pc.Fields contributes 0 for that coordinate.
func (pc *PointCloud2) Points() ([]geometry.Point, error) {
	if pc.PointStep == 0 {
		return nil, nil
	}

	nPoints := len(pc.Data) / int(pc.PointStep)
	if nPoints == 0 {
		return nil, nil
	}

	xField, hasX := pc.fieldByName("x")
	yField, hasY := pc.fieldByName("y")
	zField, hasZ := pc.fieldByName("z")

	scratch, release := pool.GetFloat64Slice(nPoints * 3)
	defer release()

	pointStep := int(pc.PointStep)
	for i := 0; i < nPoints; i++ {
		row := pc.Data[i*pointStep : (i+1)*pointStep]

		x, err := extractScalar(row, xField, hasX, pc.IsBigEndian)
		if err != nil {
			return nil, fmt.Errorf("point %d, field x: %w", i, err)
		}

		y, err := extractScalar(row, yField, hasY, pc.IsBigEndian)
		if err != nil {
			return nil, fmt.Errorf("point %d, field y: %w", i, err)
		}

		z, err := extractScalar(row, zField, hasZ, pc.IsBigEndian)
		if err != nil {
			return nil, fmt.Errorf("point %d, field z: %w", i, err)
		}

		scratch[i*3] = x
		scratch[i*3+1] = y
		scratch[i*3+2] = z
	}

	points := make([]geometry.Point, nPoints)
	for i := 0; i < nPoints; i++ {
		points[i] = geometry.NewPoint(scratch[i*3], scratch[i*3+1], scratch[i*3+2])
	}

	return points, nil
}

func extractScalar(row []byte, f PointField, present bool, isBigEndian bool) (float64, error) {
	if !present {
		return 0, nil
	}

	size := f.DataType.Size()

	end := int(f.Offset) + size
	if size == 0 || end > len(row) {
		return 0, fmt.Errorf("%w: field %q offset %d size %d exceeds point_step %d",
			uvterr.ErrInvalid, f.Name, f.Offset, size, len(row))
	}

	engine := endian.GetLittleEndianEngine()
	if isBigEndian {
		engine = endian.GetBigEndianEngine()
	}

	b := row[f.Offset:end]

	switch f.DataType {
	case format.Float32:
		return float64(math.Float32frombits(engine.Uint32(b))), nil
	case format.Float64:
		return math.Float64frombits(engine.Uint64(b)), nil
	case format.Uint16:
		return float64(engine.Uint16(b)), nil
	default:
		return 0, fmt.Errorf("%w: %s", uvterr.ErrUnsupportedFieldType, f.DataType)
	}
}
