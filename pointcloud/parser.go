package pointcloud

import (
	"github.com/ugv-telemetry/uvt/backend"
	"github.com/ugv-telemetry/uvt/format"
)

// Parse reads a PointCloud2 from b in the field order header, height, width,
// fields (n_fields-prefixed), is_bigendian, point_step, row_step, data
// (data_len-prefixed), is_dense. Each field entry is name, offset, datatype,
// count; the datatype byte and is_bigendian/is_dense flags are read through
// the backend's CDR-aligned accessors since they are followed by a 4-byte
// field on MCAP.
func Parse(b backend.ReaderBackend) (*PointCloud2, error) {
	header, err := b.ReadHeader()
	if err != nil {
		return nil, err
	}

	height, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	width, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	nFields, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	fields := make([]PointField, 0, nFields)
	for i := uint32(0); i < nFields; i++ {
		name, err := b.ReadLPStringAligned(4)
		if err != nil {
			return nil, err
		}

		offset, err := b.ReadU32LE()
		if err != nil {
			return nil, err
		}

		datatypeByte, err := b.ReadU8Aligned(4)
		if err != nil {
			return nil, err
		}

		datatype, err := format.ParseDataType(datatypeByte)
		if err != nil {
			return nil, err
		}

		count, err := b.ReadU32LE()
		if err != nil {
			return nil, err
		}

		fields = append(fields, PointField{
			Name:     name,
			Offset:   offset,
			DataType: datatype,
			Count:    count,
		})
	}

	isBigEndianByte, err := b.ReadU8Aligned(4)
	if err != nil {
		return nil, err
	}

	pointStep, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	rowStep, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	dataLen, err := b.ReadU32LE()
	if err != nil {
		return nil, err
	}

	data, err := b.Take(int(dataLen))
	if err != nil {
		return nil, err
	}

	isDenseByte, err := b.ReadU8Aligned(4)
	if err != nil {
		return nil, err
	}

	return &PointCloud2{
		Header:      header,
		Height:      height,
		Width:       width,
		Fields:      fields,
		IsBigEndian: isBigEndianByte == 1,
		PointStep:   pointStep,
		RowStep:     rowStep,
		Data:        data,
		IsDense:     isDenseByte == 1,
	}, nil
}
