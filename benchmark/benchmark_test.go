package benchmark

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/linekv/linekv"

	"github.com/stretchr/testify/assert"
)

func newBenchDB(b *testing.B) *linekv.DB {
	path := filepath.Join(b.TempDir(), "data")
	db, err := linekv.Open(path,
		linekv.WithSyncWrites(false),
		linekv.WithLogger(linekv.DiscardLogger{}),
	)
	if err != nil {
		b.Fatal(err)
	}
	return db
}

// Benchmark_Put .
func Benchmark_Put(b *testing.B) {
	db := newBenchDB(b)
	defer db.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := db.Put([]byte("key"+strconv.Itoa(i)), []byte("value"+strconv.Itoa(i)))
		assert.Nil(b, err)
	}
}

// Benchmark_Get .
func Benchmark_Get(b *testing.B) {
	db := newBenchDB(b)
	defer db.Close()

	for i := 0; i < 10000; i++ {
		err := db.Put([]byte("key"+strconv.Itoa(i)), []byte("value"+strconv.Itoa(i)))
		assert.Nil(b, err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := db.Get([]byte("key" + strconv.Itoa(i%10000)))
		if err != nil && !errors.Is(err, linekv.ErrKeyNotFound) {
			b.Fatal(err)
		}
	}
}
