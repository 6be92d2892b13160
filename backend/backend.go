// Package backend implements the per-transport byte-level contract shared
// by the point-cloud and trajectory parsers: typed primitive reads, the two
// header encodings, and the CDR alignment rules MCAP messages require. Bag
// and MCAP carry the same logical messages with different padding rules;
// isolating that difference here lets the parsers be written once against
// the ReaderBackend interface.
package backend

import "github.com/ugv-telemetry/uvt/geometry"

// ReaderBackend is the capability set a message parser needs from its
// transport. BagBackend implements the CDR-extension methods as no-op
// pass-throughs; McapBackend implements them with real alignment padding.
type ReaderBackend interface {
	ReadU8() (uint8, error)
	ReadU32LE() (uint32, error)
	ReadF64LE() (float64, error)
	ReadLPString() (string, error)
	ReadNULTerminatedString() (string, error)
	ReadHeader() (geometry.Header, error)

	// ReadU8Aligned reads one byte, then consumes the CDR padding needed to
	// reach nextAlign. BagBackend ignores nextAlign.
	ReadU8Aligned(nextAlign int) (uint8, error)
	// ReadLPStringAligned reads a length-prefixed, NUL-terminated string,
	// then consumes the CDR padding needed to reach nextAlign. BagBackend
	// ignores nextAlign and reads a raw (non-NUL-terminated) string.
	ReadLPStringAligned(nextAlign int) (string, error)
	// Take returns the next n bytes verbatim, for opaque blocks such as
	// covariance and twist matrices that the caller discards.
	Take(n int) ([]byte, error)
}

// padLen returns the number of padding bytes needed so that length, measured
// from a point already aligned to align, reaches the next multiple of
// align. align <= 1 means no padding is ever needed.
func padLen(length, align int) int {
	if align <= 1 {
		return 0
	}

	return (align - (length % align)) % align
}
