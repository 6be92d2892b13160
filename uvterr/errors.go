// Package uvterr defines the sentinel errors returned across the module's
// parsing and codec layers. Callers compare against these with errors.Is;
// call sites wrap them with fmt.Errorf("%w: ...") to attach the offset,
// line number, or field that triggered the failure.
package uvterr

import "errors"

var (
	// ErrUnderrun is returned when a read would advance a bytecursor.Cursor
	// past the end of its backing slice.
	ErrUnderrun = errors.New("uvterr: buffer underrun")

	// ErrInvalid marks a structurally malformed binary record: a bad magic
	// value, an out-of-range length prefix, or a field that fails a sanity
	// check the format requires.
	ErrInvalid = errors.New("uvterr: invalid record")

	// ErrInvalidUTF8 is returned when a length-prefixed or NUL-terminated
	// string field does not decode as valid UTF-8.
	ErrInvalidUTF8 = errors.New("uvterr: invalid utf-8 string")

	// ErrUnknownDataType is returned when a PointField's datatype byte does
	// not match any of the recognized format.DataType values.
	ErrUnknownDataType = errors.New("uvterr: unknown point field datatype")

	// ErrUnsupportedFieldType is returned when point extraction encounters a
	// recognized but unsupported PointField datatype (anything other than
	// FLOAT32, FLOAT64, or UINT16).
	ErrUnsupportedFieldType = errors.New("uvterr: unsupported point field datatype")

	// ErrMalformedUVT is returned when a text UVT file is missing a section
	// delimiter or its frame_id line is malformed.
	ErrMalformedUVT = errors.New("uvterr: malformed uvt file")

	// ErrMalformedTrajLine is returned when a trajectory CSV row does not
	// parse as exactly six numeric fields.
	ErrMalformedTrajLine = errors.New("uvterr: malformed trajectory line")

	// ErrTopicNotFound is returned when a requested topic has no matching
	// connection (Bag) or channel (MCAP) in the container.
	ErrTopicNotFound = errors.New("uvterr: topic not found")

	// ErrEmptyMap is returned when the map topic has messages but the
	// canonical (last) map message yields no points.
	ErrEmptyMap = errors.New("uvterr: map message yielded no points")

	// ErrZeroNorm is returned by Quaternion.Normalize when called on a
	// zero-norm quaternion.
	ErrZeroNorm = errors.New("uvterr: zero-norm quaternion")

	// ErrUnsupportedCompression is returned when a chunk's compression tag
	// does not match any codec this module implements.
	ErrUnsupportedCompression = errors.New("uvterr: unsupported compression")
)
