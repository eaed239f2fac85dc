package model

// Record is one key/value pair as stored in the data log.
type Record struct {
	Key   []byte
	Value []byte
}

// IndexEntry maps a key to the data log offset of its latest record.
// One entry is appended to the index log per put, before the record
// itself is appended to the data log.
type IndexEntry struct {
	Key    []byte
	Offset int64
}
