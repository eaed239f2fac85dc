package keydir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKeydir(t *testing.T, kd Keydir) {
	offset, ok := kd.Get([]byte("missing"))
	assert.False(t, ok)
	assert.Equal(t, int64(0), offset)
	assert.Equal(t, 0, kd.Len())

	kd.Put([]byte("key"), 0)
	offset, ok = kd.Get([]byte("key"))
	assert.True(t, ok)
	assert.Equal(t, int64(0), offset)

	// last write wins
	kd.Put([]byte("key"), 42)
	offset, ok = kd.Get([]byte("key"))
	assert.True(t, ok)
	assert.Equal(t, int64(42), offset)
	assert.Equal(t, 1, kd.Len())

	kd.Put([]byte("other"), 100)
	assert.Equal(t, 2, kd.Len())

	// binary keys are fine
	kd.Put([]byte{0, '\n', 0xff}, 7)
	offset, ok = kd.Get([]byte{0, '\n', 0xff})
	assert.True(t, ok)
	assert.Equal(t, int64(7), offset)
}

func TestHashMap(t *testing.T) {
	testKeydir(t, NewHashMap())
}

func TestBTree(t *testing.T) {
	testKeydir(t, NewBTree(0))
}

func TestBTree_Degree(t *testing.T) {
	bt := NewBTree(2)
	for i := int64(0); i < 100; i++ {
		bt.Put([]byte{byte(i)}, i)
	}
	assert.Equal(t, 100, bt.Len())

	offset, ok := bt.Get([]byte{50})
	assert.True(t, ok)
	assert.Equal(t, int64(50), offset)
}
