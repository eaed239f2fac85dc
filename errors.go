package linekv

import (
	"fmt"
)

var (
	ErrEmptyKey        = addPrefix("the key is empty")
	ErrKeyNotFound     = addPrefix("key not found")
	ErrDatabaseIsUsing = addPrefix("database is in use by another process")

	ErrRecordCorrupted = addPrefix("data log record is corrupted")
	ErrIndexCorrupted  = addPrefix("index log is corrupted")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("linekv err: %s", errStr)
}
