package linekv

import (
	"errors"
	"fmt"

	"github.com/linekv/linekv/fio"
	"github.com/linekv/linekv/model"
)

// DB is an embedded log-structured key/value store. Records are
// appended to a data log; an index log shadows every keydir update and
// is replayed on open to rebuild the key to offset map. Superseded
// records stay in the data log as unreachable garbage.
//
// One DB owns its two log files and keydir exclusively. It is
// single-writer and not safe for concurrent use from multiple
// goroutines; a file lock keeps other processes off the same path.
type DB struct {
	dataLog  *model.LogFile
	indexLog *model.LogFile
	fileLock fio.FileLocker

	options *options
}

// Open opens the store at path, creating the data log at path and the
// index log at path + ".idx" when absent, then replays the index log
// into the keydir.
func Open(path string, opts ...Option) (*DB, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	fileLock := fio.NewFlock(path)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrDatabaseIsUsing
	}

	db := &DB{
		fileLock: fileLock,
		options:  options,
	}

	if db.dataLog, err = db.openLogFile(path); err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}
	if db.indexLog, err = db.openLogFile(path + model.IndexFileSuffix); err != nil {
		_ = db.dataLog.Close()
		_ = fileLock.Unlock()
		return nil, err
	}

	if err = db.recovery(); err != nil {
		_ = db.indexLog.Close()
		_ = db.dataLog.Close()
		_ = fileLock.Unlock()
		return nil, err
	}

	return db, nil
}

func (db *DB) openLogFile(path string) (*model.LogFile, error) {
	ioManager, err := db.options.ioManagerCreator(path)
	if err != nil {
		return nil, err
	}
	return model.OpenLogFile(ioManager)
}

// recovery replays the index log in file order into the keydir. A later
// entry for a key overrides an earlier one, so the keydir ends up with
// the offset of each key's latest record. The data log is not touched;
// its write offset was already taken from the file size when it was
// opened.
func (db *DB) recovery() error {
	var replayed int
	err := db.indexLog.ForEachLine(func(offset int64, line []byte) error {
		entry := &model.IndexEntry{}
		if err := db.options.codec.UnmarshalIndexEntry(line, entry); err != nil {
			return fmt.Errorf("%w: entry at offset %d: %v", ErrIndexCorrupted, offset, err)
		}
		db.options.keydir.Put(entry.Key, entry.Offset)
		replayed++
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrTruncatedLine) {
			return fmt.Errorf("%w: %v", ErrIndexCorrupted, err)
		}
		return err
	}

	db.options.logger.Infof("replayed %d index entries, %d live keys, next data offset %d",
		replayed, db.options.keydir.Len(), db.dataLog.WriteOffset)
	return nil
}

// Put appends one record for key. The index entry hits stable storage
// first, then the keydir, then the record itself; a crash between the
// two appends leaves an entry whose offset is not yet backed by a
// record, which surfaces as a corruption error on a later Get.
func (db *DB) Put(key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}

	offset := db.dataLog.WriteOffset

	line, err := db.options.codec.MarshalIndexEntry(&model.IndexEntry{Key: key, Offset: offset})
	if err != nil {
		return err
	}
	if _, err = db.indexLog.Write(line); err != nil {
		return err
	}
	if db.options.syncWrites {
		if err = db.indexLog.Sync(); err != nil {
			return err
		}
	}

	db.options.keydir.Put(key, offset)

	if line, err = db.options.codec.MarshalRecord(&model.Record{Key: key, Value: value}); err != nil {
		return err
	}
	if _, err = db.dataLog.Write(line); err != nil {
		return err
	}
	if db.options.syncWrites {
		if err = db.dataLog.Sync(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the latest record for key. A key that was never put is a
// normal miss, reported as ErrKeyNotFound. An offset that cannot be
// read back as a well-formed record reports ErrRecordCorrupted.
func (db *DB) Get(key []byte) (*model.Record, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	offset, ok := db.options.keydir.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	line, err := db.dataLog.ReadLine(offset)
	if err != nil {
		if errors.Is(err, model.ErrOffsetOutOfRange) || errors.Is(err, model.ErrTruncatedLine) {
			return nil, fmt.Errorf("%w: key %q at offset %d: %v", ErrRecordCorrupted, key, offset, err)
		}
		return nil, err
	}

	record := &model.Record{}
	if err = db.options.codec.UnmarshalRecord(line, record); err != nil {
		return nil, fmt.Errorf("%w: key %q at offset %d: %v", ErrRecordCorrupted, key, offset, err)
	}
	return record, nil
}

// Sync flushes both logs to stable storage.
func (db *DB) Sync() error {
	if err := db.indexLog.Sync(); err != nil {
		return err
	}
	return db.dataLog.Sync()
}

// Close syncs and closes both logs and releases the file lock.
func (db *DB) Close() error {
	defer func() {
		if err := db.fileLock.Unlock(); err != nil {
			db.options.logger.Errorf("unlock database file lock: %v", err)
		}
	}()

	if err := db.Sync(); err != nil {
		return err
	}
	if err := db.indexLog.Close(); err != nil {
		return err
	}
	return db.dataLog.Close()
}
