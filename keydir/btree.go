package keydir

import (
	"bytes"

	"github.com/google/btree"
)

var _ Keydir = (*BTree)(nil)

const defaultDegree = 32

// BTree implement the keydir with ordered keys. Ordering buys nothing
// for plain lookups, but keeps keys sorted for a future range scan or
// compaction pass.
type BTree struct {
	tree *btree.BTree
}

// Item implement the btree.Item interface
type Item struct {
	key    []byte
	offset int64
}

func (i *Item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(*Item).key) == -1
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.New(degree),
	}
}

func (bt *BTree) Put(key []byte, offset int64) {
	bt.tree.ReplaceOrInsert(&Item{
		key:    key,
		offset: offset,
	})
}

func (bt *BTree) Get(key []byte) (int64, bool) {
	item := bt.tree.Get(&Item{key: key})
	if item == nil {
		return 0, false
	}
	return item.(*Item).offset, true
}

func (bt *BTree) Len() int {
	return bt.tree.Len()
}
