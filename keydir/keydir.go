package keydir

// Keydir defined the in-memory key to offset index interface
// you can use some other data structure once you implement this interface
//
// Implementations are not required to be safe for concurrent use: a
// store owns its keydir from a single goroutine. There is no delete,
// records are only ever superseded by later puts.
type Keydir interface {
	// Put unconditionally overwrites any prior offset for key.
	Put(key []byte, offset int64)

	// Get returns the latest offset for key, or false if the key was
	// never put.
	Get(key []byte) (int64, bool)

	// Len returns the number of live keys.
	Len() int
}
