package compress

import (
	"bytes"
	"compress/bzip2"
	"errors"
	"io"
)

// BZ2Compressor decompresses Bag container chunks compressed with bzip2.
//
// Go's standard library only ships a bzip2 reader, never a writer, and no
// third-party bzip2 codec is pulled in elsewhere in this module. Since this
// core only ever reads Bag containers, Compress is unsupported rather than
// reimplementing a bzip2 encoder for a path nothing calls.
type BZ2Compressor struct{}

var _ Codec = (*BZ2Compressor)(nil)

// ErrBZ2CompressUnsupported is returned by BZ2Compressor.Compress: this core
// never writes Bag containers, so only decompression is implemented.
var ErrBZ2CompressUnsupported = errors.New("compress: bzip2 compression is not supported, only decompression")

// NewBZ2Compressor creates a new bzip2 decompressor.
func NewBZ2Compressor() BZ2Compressor {
	return BZ2Compressor{}
}

// Compress always fails; see ErrBZ2CompressUnsupported.
func (c BZ2Compressor) Compress(data []byte) ([]byte, error) {
	return nil, ErrBZ2CompressUnsupported
}

// Decompress decompresses bzip2-compressed data.
func (c BZ2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := bzip2.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}
