package model

import (
	"bufio"
	"errors"
	"io"

	"github.com/linekv/linekv/fio"
)

const (
	IndexFileSuffix = ".idx"
)

var (
	ErrOffsetOutOfRange = errors.New("offset is at or past end of log")
	ErrTruncatedLine    = errors.New("log line is truncated")
)

// LogFile is one append-only, line-oriented log. Both the data log and
// the index log use it; the codec stays at the store layer.
type LogFile struct {
	// WriteOffset is the position the next append will start at.
	// It always equals the current file length.
	WriteOffset int64

	ioManager fio.IOManager
}

// OpenLogFile wraps an io manager. The write offset is taken from the
// actual file size, so appends after a reopen continue where the
// previous session stopped instead of clobbering old records.
func OpenLogFile(ioManager fio.IOManager) (*LogFile, error) {
	size, err := ioManager.Size()
	if err != nil {
		return nil, err
	}
	return &LogFile{
		WriteOffset: size,
		ioManager:   ioManager,
	}, nil
}

// Write appends data and returns the offset the write began at.
func (lf *LogFile) Write(data []byte) (int64, error) {
	offset := lf.WriteOffset
	n, err := lf.ioManager.Write(data)
	if err != nil {
		return 0, err
	}
	if n < len(data) {
		return 0, io.ErrShortWrite
	}
	lf.WriteOffset += int64(n)
	return offset, nil
}

// ReadLine reads exactly one line starting at offset and returns it
// without the trailing line feed. An offset at or past end of file
// yields ErrOffsetOutOfRange; a line that ends before a line feed is
// found yields ErrTruncatedLine.
func (lf *LogFile) ReadLine(offset int64) ([]byte, error) {
	size, err := lf.ioManager.Size()
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= size {
		return nil, ErrOffsetOutOfRange
	}

	reader := bufio.NewReader(io.NewSectionReader(readerAt{lf.ioManager}, offset, size-offset))
	line, err := reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrTruncatedLine
		}
		return nil, err
	}
	return line[:len(line)-1], nil
}

// ForEachLine scans the log once from the start, in file order, calling
// fn with each line's offset and content (without the line feed). The
// scan stops at the first error from fn. Trailing bytes without a line
// feed yield ErrTruncatedLine.
func (lf *LogFile) ForEachLine(fn func(offset int64, line []byte) error) error {
	size, err := lf.ioManager.Size()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(io.NewSectionReader(readerAt{lf.ioManager}, 0, size))
	var offset int64
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			if len(line) == 0 {
				return nil
			}
			return ErrTruncatedLine
		}
		if err = fn(offset, line[:len(line)-1]); err != nil {
			return err
		}
		offset += int64(len(line))
	}
}

func (lf *LogFile) Sync() error {
	return lf.ioManager.Sync()
}

func (lf *LogFile) Close() error {
	return lf.ioManager.Close()
}

// readerAt adapts an io manager to io.ReaderAt for section reads.
type readerAt struct {
	ioManager fio.IOManager
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.ioManager.Read(p, off)
}
