// Package compress provides the chunk compression codecs used by the Bag
// and MCAP container readers.
//
// Bag chunks are compressed with None or BZ2. MCAP chunks are compressed
// with None, LZ4, or Zstd. Each algorithm is a small Codec implementation
// behind a common Compressor/Decompressor interface, selected at runtime
// via CreateCodec/GetCodec from the chunk's format.Compression tag.
package compress
