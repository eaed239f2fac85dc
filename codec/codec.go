package codec

import (
	"errors"

	"github.com/linekv/linekv/model"
)

// Codec defined the log line codec interface
// you can implement your own codec once it keeps lines self-delimited
//
// Marshal output is one line terminated by a single line feed with no
// interior line feed, so arbitrary key/value bytes round-trip through a
// line-oriented log. Unmarshal takes the line without its terminator.
type Codec interface {
	MarshalRecord(*model.Record) ([]byte, error)

	UnmarshalRecord(line []byte, record *model.Record) error

	MarshalIndexEntry(*model.IndexEntry) ([]byte, error)

	UnmarshalIndexEntry(line []byte, entry *model.IndexEntry) error
}

var (
	ErrMalformedLine    = errors.New("malformed log line")
	ErrChecksumMismatch = errors.New("record checksum mismatch")
)
