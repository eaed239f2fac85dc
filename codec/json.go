package codec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/linekv/linekv/model"
	"github.com/linekv/linekv/utils"
)

var _ Codec = (*JSONCodec)(nil)

/*
default codec: one JSON object per line
	- record: {"key":<b64>,"val":<b64>,"sum":<xxh3 over varint(len(key)) + key + val>}
	- index entry: {"key":<b64>,"offset":<uint>}
encoding/json base64-encodes byte slices and escapes control characters,
so no encoded line ever contains a raw line feed.
*/

type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

type jsonRecord struct {
	Key []byte `json:"key"`
	Val []byte `json:"val"`
	Sum uint64 `json:"sum"`
}

type jsonIndexEntry struct {
	Key    []byte `json:"key"`
	Offset int64  `json:"offset"`
}

func (jc *JSONCodec) MarshalRecord(record *model.Record) ([]byte, error) {
	data, err := json.Marshal(&jsonRecord{
		Key: record.Key,
		Val: record.Value,
		Sum: recordSum(record.Key, record.Value),
	})
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jc *JSONCodec) UnmarshalRecord(line []byte, record *model.Record) error {
	var jr jsonRecord
	if err := json.Unmarshal(line, &jr); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if !utils.CheckSum64(jr.Sum, sumPayload(jr.Key, jr.Val)) {
		return ErrChecksumMismatch
	}
	record.Key = jr.Key
	record.Value = jr.Val
	return nil
}

func (jc *JSONCodec) MarshalIndexEntry(entry *model.IndexEntry) ([]byte, error) {
	data, err := json.Marshal(&jsonIndexEntry{
		Key:    entry.Key,
		Offset: entry.Offset,
	})
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jc *JSONCodec) UnmarshalIndexEntry(line []byte, entry *model.IndexEntry) error {
	var je jsonIndexEntry
	if err := json.Unmarshal(line, &je); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if je.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrMalformedLine, je.Offset)
	}
	entry.Key = je.Key
	entry.Offset = je.Offset
	return nil
}

func recordSum(key, value []byte) uint64 {
	return utils.Sum64(sumPayload(key, value))
}

// sumPayload length-prefixes the key so ("ab","") and ("a","b") cannot
// collide under one checksum.
func sumPayload(key, value []byte) []byte {
	buf := make([]byte, 0, binary.MaxVarintLen64+len(key)+len(value))
	buf = binary.AppendVarint(buf, int64(len(key)))
	buf = append(buf, key...)
	buf = append(buf, value...)
	return buf
}
