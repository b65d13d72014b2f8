package store

import (
	"errors"

	"github.com/cockroachdb/pebble"
)

// Pebble is a KVStore backed by a pebble database.
type Pebble struct {
	db *pebble.DB
}

var _ KVStore = (*Pebble)(nil)

// OpenPebble opens (or creates) a pebble database at path.
func OpenPebble(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Pebble{db: db}, nil
}

func (p *Pebble) Get(key []byte) ([]byte, error) {
	val, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	// The slice is only valid until the closer is released.
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (p *Pebble) Set(key, value []byte) error {
	return p.db.Set(key, value, pebble.Sync)
}

func (p *Pebble) Delete(key []byte) error {
	return p.db.Delete(key, pebble.Sync)
}

func (p *Pebble) Has(key []byte) (bool, error) {
	_, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	closer.Close()
	return true, nil
}

func (p *Pebble) Iterate(prefix []byte, fn func(key, value []byte) (bool, error)) error {
	opts := &pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	}
	iter, err := p.db.NewIter(opts)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		val, err := iter.ValueAndErr()
		if err != nil {
			return err
		}
		cp := make([]byte, len(val))
		copy(cp, val)
		stop, err := fn(key, cp)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return iter.Error()
}

func (p *Pebble) Close() error {
	return p.db.Close()
}
