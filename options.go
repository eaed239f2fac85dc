package linekv

import (
	"github.com/linekv/linekv/codec"
	"github.com/linekv/linekv/fio"
	"github.com/linekv/linekv/keydir"
)

type options struct {
	codec            codec.Codec
	keydir           keydir.Keydir
	ioManagerCreator func(path string) (fio.IOManager, error)
	syncWrites       bool
	logger           Logger
}

type Option func(*options)

var defaultIOManagerCreator = func(path string) (fio.IOManager, error) {
	return fio.NewFileIO(path)
}

func defaultOptions() *options {
	return &options{
		codec:            codec.NewJSONCodec(),
		keydir:           keydir.NewHashMap(),
		ioManagerCreator: defaultIOManagerCreator,
		syncWrites:       true,
		logger:           newStdLogger(),
	}
}

func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

func WithKeydir(kd keydir.Keydir) Option {
	return func(o *options) {
		o.keydir = kd
	}
}

func WithIOManagerCreator(fn func(path string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

// WithSyncWrites controls whether every put fsyncs both logs before
// returning. On by default; turning it off trades durability of the
// most recent puts for throughput.
func WithSyncWrites(sync bool) Option {
	return func(o *options) {
		o.syncWrites = sync
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
