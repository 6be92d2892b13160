// Package mcap walks an MCAP 1.0 file record by record over a memory-mapped
// read-only view: the leading magic, a stream of opcode+length-prefixed
// records (channel, message, chunk, and records this reader skips),
// resolving topic names to channel ids and message bytes to the topics they
// belong to. It implements the MCAP 1.0 record format directly; no pure-Go
// reader for it exists in the retrieved dependency corpus.
package mcap

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/ugv-telemetry/uvt/bytecursor"
	"github.com/ugv-telemetry/uvt/compress"
	"github.com/ugv-telemetry/uvt/format"
	"github.com/ugv-telemetry/uvt/internal/hash"
	"github.com/ugv-telemetry/uvt/internal/pool"
	"github.com/ugv-telemetry/uvt/uvterr"
)

var magic = []byte{0x89, 'M', 'C', 'A', 'P', '0', '\r', '\n'}

// Record opcodes, per the MCAP 1.0 format.
const (
	opChannel byte = 0x04
	opMessage byte = 0x05
	opChunk   byte = 0x06
)

// Message is one message record resolved to its topic.
type Message struct {
	Topic string
	Data  []byte
}

// ReadTopicMessages memory-maps path read-only, copies its content into an
// owned buffer, and releases the mapping before returning every message
// recorded against topic in wire order.
func ReadTopicMessages(path string, topic string) ([]Message, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content := make([]byte, r.Len())
	if _, err := r.ReadAt(content, 0); err != nil {
		return nil, err
	}

	return readTopicMessages(content, topic)
}

func readTopicMessages(content []byte, topic string) ([]Message, error) {
	if len(content) < len(magic) || !bytesEqual(content[:len(magic)], magic) {
		return nil, fmt.Errorf("%w: missing MCAP magic", uvterr.ErrInvalid)
	}

	cursor := bytecursor.New(content[len(magic):])

	wantHash := hash.ID(topic)
	channelTopics := map[uint16]uint64{}
	var messages []Message

	for cursor.Remaining() > len(magic) {
		if err := readRecord(cursor, topic, wantHash, channelTopics, &messages); err != nil {
			return nil, err
		}
	}

	return messages, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// readRecord reads one opcode-byte, 8-byte-length-prefixed record and
// dispatches on its opcode. channelTopics keys channel id -> xxHash64 of its
// topic name, so readMessage's hot path compares uint64s instead of strings.
func readRecord(cursor *bytecursor.Cursor, topic string, wantHash uint64, channelTopics map[uint16]uint64, messages *[]Message) error {
	opcode, err := cursor.ReadU8()
	if err != nil {
		return err
	}

	length, err := cursor.ReadU64LE()
	if err != nil {
		return err
	}

	content, err := cursor.Slice(int(length))
	if err != nil {
		return err
	}

	switch opcode {
	case opChannel:
		return readChannel(content, channelTopics)
	case opMessage:
		return readMessage(content, topic, wantHash, channelTopics, messages)
	case opChunk:
		return readChunk(content, topic, wantHash, channelTopics, messages)
	default:
		return nil
	}
}

func readChannel(content []byte, channelTopics map[uint16]uint64) error {
	c := bytecursor.New(content)

	id, err := c.ReadU16LE()
	if err != nil {
		return err
	}

	if _, err := c.ReadU16LE(); err != nil { // schema_id, unused
		return err
	}

	topic, err := c.ReadLPString()
	if err != nil {
		return err
	}

	channelTopics[id] = hash.ID(topic)

	return nil
}

func readMessage(content []byte, topic string, wantHash uint64, channelTopics map[uint16]uint64, messages *[]Message) error {
	c := bytecursor.New(content)

	channelID, err := c.ReadU16LE()
	if err != nil {
		return err
	}

	if _, err := c.ReadU32LE(); err != nil { // sequence, unused
		return err
	}

	if _, err := c.ReadU64LE(); err != nil { // log_time, unused
		return err
	}

	if _, err := c.ReadU64LE(); err != nil { // publish_time, unused
		return err
	}

	if channelTopics[channelID] != wantHash {
		return nil
	}

	data, err := c.Slice(c.Remaining())
	if err != nil {
		return err
	}

	*messages = append(*messages, Message{Topic: topic, Data: data})

	return nil
}

func readChunk(content []byte, topic string, wantHash uint64, channelTopics map[uint16]uint64, messages *[]Message) error {
	c := bytecursor.New(content)

	if _, err := c.ReadU64LE(); err != nil { // message_start_time, unused
		return err
	}

	if _, err := c.ReadU64LE(); err != nil { // message_end_time, unused
		return err
	}

	if _, err := c.ReadU64LE(); err != nil { // uncompressed_size, unused
		return err
	}

	if _, err := c.ReadU32LE(); err != nil { // uncompressed_crc, unused
		return err
	}

	compressionName, err := c.ReadLPString()
	if err != nil {
		return err
	}

	compression, err := parseCompressionName(compressionName)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return err
	}

	records, err := c.Slice(c.Remaining())
	if err != nil {
		return err
	}

	decompressed, err := codec.Decompress(records)
	if err != nil {
		return err
	}

	chunkBuf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(chunkBuf)
	chunkBuf.MustWrite(decompressed)

	before := len(*messages)

	nested := bytecursor.New(chunkBuf.Bytes())
	for nested.Remaining() > 0 {
		if err := readRecord(nested, topic, wantHash, channelTopics, messages); err != nil {
			return err
		}
	}

	// chunkBuf is returned to the pool as soon as this function returns;
	// every message matched above still aliases it, so it must be copied
	// into memory of its own before that happens.
	for i := before; i < len(*messages); i++ {
		(*messages)[i].Data = cloneMessageData((*messages)[i].Data)
	}

	return nil
}

// cloneMessageData copies src into a pooled message buffer and back out
// again, giving the caller a slice with no remaining tie to pooled
// decompression scratch.
func cloneMessageData(src []byte) []byte {
	buf := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(buf)

	buf.MustWrite(src)

	return append([]byte(nil), buf.Bytes()...)
}

func parseCompressionName(name string) (format.Compression, error) {
	switch name {
	case "":
		return format.CompressionNone, nil
	case "lz4":
		return format.CompressionLZ4, nil
	case "zstd":
		return format.CompressionZstd, nil
	default:
		return 0, fmt.Errorf("%w: %s", uvterr.ErrUnsupportedCompression, name)
	}
}
