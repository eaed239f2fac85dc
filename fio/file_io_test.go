package fio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFileIO(t *testing.T) *FileIO {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"))
	assert.Nil(t, err)
	assert.NotNil(t, fio)
	return fio
}

func TestFileIO_Write(t *testing.T) {
	fio := newFileIO(t)

	n, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	n, err = fio.Write([]byte("world"))
	assert.Nil(t, err)
	assert.Equal(t, 5, n)
}

func TestFileIO_Read(t *testing.T) {
	fio := newFileIO(t)

	_, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)

	buf := make([]byte, 5)
	n, err := fio.Read(buf, 0)
	assert.Nil(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), buf)

	n, err = fio.Read(buf[:2], 3)
	assert.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("lo"), buf[:2])
}

func TestFileIO_Size(t *testing.T) {
	fio := newFileIO(t)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), size)

	_, err = fio.Write([]byte("hello"))
	assert.Nil(t, err)

	size, err = fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(5), size)
}

func TestFileIO_SyncClose(t *testing.T) {
	fio := newFileIO(t)

	_, err := fio.Write([]byte("hello"))
	assert.Nil(t, err)

	assert.Nil(t, fio.Sync())
	assert.Nil(t, fio.Close())
}
