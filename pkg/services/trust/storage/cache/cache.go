package cache

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
)

// Storage is a read-through LRU cache in front of a trust
// record storage. Reads hit the underlying storage only on
// cache misses, writes go through to it and refresh the
// cached entry.
//
// For correct operation, Storage must be created via New.
type Storage struct {
	mtx sync.Mutex

	lru *simplelru.LRU[trust.PeerID, trust.Record]

	inner common.Storage
}

const defaultCacheSize = 1000

// New creates a new caching wrapper around the given storage.
//
// Non-positive size falls back to the default capacity.
func New(inner common.Storage, size int) (*Storage, error) {
	if inner == nil {
		return nil, fmt.Errorf("nil underlying storage")
	}

	if size <= 0 {
		size = defaultCacheSize
	}

	lru, err := simplelru.NewLRU[trust.PeerID, trust.Record](size, nil)
	if err != nil {
		return nil, fmt.Errorf("can't create LRU cache: %w", err)
	}

	return &Storage{
		lru:   lru,
		inner: inner,
	}, nil
}

// Get reads the trust record of the vehicle, from the cache
// if it is there.
//
// Storage errors, including the missing-record one, are
// forwarded from the underlying storage and are not cached.
func (s *Storage) Get(id trust.PeerID) (trust.Record, error) {
	s.mtx.Lock()
	rec, ok := s.lru.Get(id)
	s.mtx.Unlock()

	if ok {
		return rec, nil
	}

	rec, err := s.inner.Get(id)
	if err != nil {
		return rec, err
	}

	s.mtx.Lock()
	s.lru.Add(id, rec)
	s.mtx.Unlock()

	return rec, nil
}

// Put writes the trust record through to the underlying storage
// and refreshes the cached entry on success.
func (s *Storage) Put(id trust.PeerID, rec trust.Record) error {
	if err := s.inner.Put(id, rec); err != nil {
		return err
	}

	s.mtx.Lock()
	s.lru.Add(id, rec)
	s.mtx.Unlock()

	return nil
}

// PutBatch writes all the passed records through to the
// underlying storage in a single commit and refreshes the
// cached entries on success.
func (s *Storage) PutBatch(recs []trust.PeerRecord) error {
	if err := s.inner.PutBatch(recs); err != nil {
		return err
	}

	s.mtx.Lock()
	for i := range recs {
		s.lru.Add(recs[i].ID, recs[i].Record)
	}
	s.mtx.Unlock()

	return nil
}

// Iterate passes all stored records to the handler. Iteration
// bypasses the cache and reads the underlying storage directly.
func (s *Storage) Iterate(h trust.RecordHandler) error {
	return s.inner.Iterate(h)
}

// Purge drops all cached entries. Underlying storage is not
// touched.
func (s *Storage) Purge() {
	s.mtx.Lock()
	s.lru.Purge()
	s.mtx.Unlock()
}
