package utils

import "github.com/zeebo/xxh3"

func Sum64(data []byte) uint64 {
	return xxh3.Hash(data)
}

func CheckSum64(sum uint64, data []byte) bool {
	return Sum64(data) == sum
}
