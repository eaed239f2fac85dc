package fio

import (
	"github.com/gofrs/flock"
)

// FileLocker keeps a second process away from an open store path.
type FileLocker interface {
	TryLock() (bool, error)
	Unlock() error
}

const LockFileSuffix = ".lock"

func NewFlock(path string) *flock.Flock {
	return flock.New(path + LockFileSuffix)
}
