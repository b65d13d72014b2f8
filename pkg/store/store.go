// Package store provides the key/value persistence abstraction behind the
// asaswap keeper, with an in-memory backend for tests and a pebble backend
// for durable state.
package store

import "errors"

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("store: key not found")

// KVStore is the minimal persistence contract the keeper requires. All
// implementations must return copies that remain valid after the call.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)

	// Iterate visits every key with the given prefix in ascending key
	// order. Returning stop=true ends the walk early.
	Iterate(prefix []byte, fn func(key, value []byte) (stop bool, err error)) error

	Close() error
}

// prefixUpperBound returns the smallest key greater than every key with the
// given prefix, or nil when no such bound exists.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
