package crypt

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/philippgille/gokv"
)

type cachedHasher struct {
	hasher Hasher
	store  gokv.Store
}

// NewCachedHasher memoizes successful results of hasher in store.
// Failures are never cached, and a failing store only disables
// memoization for that call.
func NewCachedHasher(hasher Hasher, store gokv.Store) Hasher {
	return &cachedHasher{
		hasher: hasher,
		store:  store,
	}
}

func (c *cachedHasher) Crypt(key, salt string) (string, error) {
	id := cacheKey(key, salt)

	var result string
	if found, err := c.store.Get(id, &result); err == nil && found {
		return result, nil
	}

	result, err := c.hasher.Crypt(key, salt)
	if err != nil {
		return "", err
	}

	_ = c.store.Set(id, result)
	return result, nil
}

// cacheKey never stores the plain key.
// The length prefix keeps ("ab", "c") and ("a", "bc") apart.
func cacheKey(key, salt string) string {
	h := sha256.New()

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(key)))

	h.Write(size[:])
	h.Write([]byte(key))
	h.Write([]byte(salt))

	return hex.EncodeToString(h.Sum(nil))
}
