package domain

import (
	"encoding/binary"
	"strings"

	"github.com/spaolacci/murmur3"
)

// IsolationHash returns the case-insensitive 32-bit hash of an application
// isolation identifier. The same identifier always yields the same hash.
func IsolationHash(id string) uint32 {
	return murmur3.Sum32([]byte(strings.ToLower(id)))
}

// IsolateKey overwrites the first four bytes of key with the little-endian
// isolation hash of id. Keys shorter than four bytes are left untouched.
func IsolateKey(key []byte, id string) {
	if len(key) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(key[:4], IsolationHash(id))
}
