// Package bag walks a ROS 1 bag v2.0 file record by record: the version
// line, then a stream of length-prefixed records (connection, chunk, message
// data, index data, and a handful of records this reader skips), resolving
// topic names to connection ids and message bytes to the topics they belong
// to. It implements the bag v2.0 record format directly; no pure-Go reader
// for it exists in the retrieved dependency corpus.
package bag

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ugv-telemetry/uvt/bytecursor"
	"github.com/ugv-telemetry/uvt/compress"
	"github.com/ugv-telemetry/uvt/format"
	"github.com/ugv-telemetry/uvt/internal/hash"
	"github.com/ugv-telemetry/uvt/internal/pool"
	"github.com/ugv-telemetry/uvt/uvterr"
)

const versionLine = "#ROSBAG V2.0\n"

// Record opcodes, per the bag v2.0 format.
const (
	opMsgData    byte = 0x02
	opBagHeader  byte = 0x03
	opIndexData  byte = 0x04
	opChunk      byte = 0x05
	opChunkInfo  byte = 0x06
	opConnection byte = 0x07
)

// record is one header+data record from the bag record stream.
type record struct {
	op     byte
	fields map[string][]byte
	data   []byte
}

// Message is one message-data record resolved to its topic.
type Message struct {
	Topic string
	Data  []byte
}

// ReadTopicMessages walks content looking for every message recorded against
// topic, in wire order (connection records may appear before or be
// duplicated inside chunks; this reader accepts the first connection id
// matching topic and collects every message against that id, from both
// unchunked and chunked records).
func ReadTopicMessages(content []byte, topic string) ([]Message, error) {
	if len(content) < len(versionLine) || string(content[:len(versionLine)]) != versionLine {
		return nil, fmt.Errorf("%w: missing bag version line", uvterr.ErrInvalid)
	}

	cursor := bytecursor.New(content[len(versionLine):])

	wantHash := hash.ID(topic)
	connTopics := map[uint32]uint64{}
	var messages []Message

	for cursor.Remaining() > 0 {
		rec, err := readRecord(cursor)
		if err != nil {
			return nil, err
		}

		if err := handleRecord(rec, topic, wantHash, connTopics, &messages); err != nil {
			return nil, err
		}
	}

	return messages, nil
}

// handleRecord keys connTopics by connection id -> xxHash64 of its topic
// name, so the message-data hot path compares two uint64s rather than
// re-hashing or comparing strings on every record.
func handleRecord(rec record, topic string, wantHash uint64, connTopics map[uint32]uint64, messages *[]Message) error {
	switch rec.op {
	case opConnection:
		connID, ok := fieldU32(rec.fields, "conn")
		if !ok {
			return nil
		}

		connTopic, ok := rec.fields["topic"]
		if !ok {
			return nil
		}

		connHash := hash.ID(string(connTopic))
		if connHash == wantHash {
			for id, h := range connTopics {
				if h == wantHash && id != connID {
					// An earlier connection already claimed topic.
					return nil
				}
			}
		}

		connTopics[connID] = connHash

	case opMsgData:
		connID, ok := fieldU32(rec.fields, "conn")
		if !ok {
			return nil
		}

		if connTopics[connID] == wantHash {
			*messages = append(*messages, Message{Topic: topic, Data: rec.data})
		}

	case opChunk:
		chunkMessages, err := readChunk(rec, topic, wantHash, connTopics)
		if err != nil {
			return err
		}

		*messages = append(*messages, chunkMessages...)

	case opBagHeader, opIndexData, opChunkInfo:
		// Index/summary records; a linear scan never needs them.
	}

	return nil
}

// readChunk decompresses a chunk record's payload and walks the connection
// and message-data records nested inside it.
func readChunk(rec record, topic string, wantHash uint64, connTopics map[uint32]uint64) ([]Message, error) {
	compressionName, ok := rec.fields["compression"]
	if !ok {
		return nil, fmt.Errorf("%w: chunk record missing compression field", uvterr.ErrInvalid)
	}

	compression, err := parseCompressionName(string(compressionName))
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	chunkBuf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(chunkBuf)

	decompressed, err := codec.Decompress(rec.data)
	if err != nil {
		return nil, err
	}

	chunkBuf.MustWrite(decompressed)

	cursor := bytecursor.New(chunkBuf.Bytes())

	var messages []Message
	for cursor.Remaining() > 0 {
		nested, err := readRecord(cursor)
		if err != nil {
			return nil, err
		}

		if err := handleRecord(nested, topic, wantHash, connTopics, &messages); err != nil {
			return nil, err
		}
	}

	// chunkBuf is returned to the pool as soon as this function returns;
	// every matched message's data still aliases it, so it must be copied
	// into memory of its own before that happens.
	for i := range messages {
		messages[i].Data = cloneMessageData(messages[i].Data)
	}

	return messages, nil
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
	case "none":
		return format.CompressionNone, nil
	case "bz2":
		return format.CompressionBZ2, nil
	default:
		return 0, fmt.Errorf("%w: %s", uvterr.ErrUnsupportedCompression, name)
	}
}

// readRecord reads one header-length-prefixed, data-length-prefixed record
// from cursor: a 4-byte header length, that many bytes of field=value
// entries each itself 4-byte length prefixed, a 4-byte data length, then
// that many bytes of record data.
func readRecord(cursor *bytecursor.Cursor) (record, error) {
	headerLen, err := cursor.ReadU32LE()
	if err != nil {
		return record{}, err
	}

	headerBytes, err := cursor.Slice(int(headerLen))
	if err != nil {
		return record{}, err
	}

	fields, err := parseFields(headerBytes)
	if err != nil {
		return record{}, err
	}

	dataLen, err := cursor.ReadU32LE()
	if err != nil {
		return record{}, err
	}

	data, err := cursor.Slice(int(dataLen))
	if err != nil {
		return record{}, err
	}

	op, ok := fields["op"]
	if !ok || len(op) != 1 {
		return record{}, fmt.Errorf("%w: record missing 1-byte op field", uvterr.ErrInvalid)
	}

	return record{op: op[0], fields: fields, data: data}, nil
}

// parseFields splits a record header's byte range into its field=value
// entries, each itself a 4-byte length-prefixed block.
func parseFields(headerBytes []byte) (map[string][]byte, error) {
	fields := map[string][]byte{}
	cursor := bytecursor.New(headerBytes)

	for cursor.Remaining() > 0 {
		fieldLen, err := cursor.ReadU32LE()
		if err != nil {
			return nil, err
		}

		fieldBytes, err := cursor.Slice(int(fieldLen))
		if err != nil {
			return nil, err
		}

		eq := bytes.IndexByte(fieldBytes, '=')
		if eq < 0 {
			return nil, fmt.Errorf("%w: malformed record field", uvterr.ErrInvalid)
		}

		fields[string(fieldBytes[:eq])] = fieldBytes[eq+1:]
	}

	return fields, nil
}

func fieldU32(fields map[string][]byte, name string) (uint32, bool) {
	b, ok := fields[name]
	if !ok || len(b) != 4 {
		return 0, false
	}

	return binary.LittleEndian.Uint32(b), true
}
