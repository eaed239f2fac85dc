package keydir

var _ Keydir = (*HashMap)(nil)

// HashMap is the default keydir, a plain map from key to offset.
type HashMap struct {
	index map[string]int64
}

func NewHashMap() *HashMap {
	return &HashMap{
		index: make(map[string]int64),
	}
}

func (hm *HashMap) Put(key []byte, offset int64) {
	hm.index[string(key)] = offset
}

func (hm *HashMap) Get(key []byte) (int64, bool) {
	offset, ok := hm.index[string(key)]
	return offset, ok
}

func (hm *HashMap) Len() int {
	return len(hm.index)
}
