package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	"github.com/vanet-dev/trust-node/pkg/services/trust/storage/cache"
)

type memStorage struct {
	gets, puts, iters int

	m map[trust.PeerID]trust.Record
}

func newMemStorage() *memStorage {
	return &memStorage{m: make(map[trust.PeerID]trust.Record)}
}

func (s *memStorage) Get(id trust.PeerID) (trust.Record, error) {
	s.gets++

	rec, ok := s.m[id]
	if !ok {
		return rec, common.ErrRecordNotFound
	}

	return rec, nil
}

func (s *memStorage) Put(id trust.PeerID, rec trust.Record) error {
	s.puts++
	s.m[id] = rec

	return nil
}

func (s *memStorage) PutBatch(recs []trust.PeerRecord) error {
	s.puts++

	for i := range recs {
		s.m[recs[i].ID] = recs[i].Record
	}

	return nil
}

func (s *memStorage) Iterate(h trust.RecordHandler) error {
	s.iters++

	for id, rec := range s.m {
		if err := h(trust.PeerRecord{ID: id, Record: rec}); err != nil {
			return err
		}
	}

	return nil
}

func newRecord(v trust.Value, updated int64) (rec trust.Record) {
	rec.SetValue(v)
	rec.SetUpdated(updated)

	return
}

func TestNew(t *testing.T) {
	_, err := cache.New(nil, 10)
	require.Error(t, err)

	t.Run("non-positive size", func(t *testing.T) {
		_, err := cache.New(newMemStorage(), 0)
		require.NoError(t, err)
	})
}

func TestReadThrough(t *testing.T) {
	inner := newMemStorage()
	s, err := cache.New(inner, 10)
	require.NoError(t, err)

	id := trust.PeerIDFromBytes([]byte("vehicle 1"))
	rec := newRecord(0.75, 1234)
	inner.m[id] = rec

	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, rec, got)
	require.Equal(t, 1, inner.gets)

	// second read is served from the cache
	got, err = s.Get(id)
	require.NoError(t, err)
	require.Equal(t, rec, got)
	require.Equal(t, 1, inner.gets)

	t.Run("miss is not cached", func(t *testing.T) {
		missing := trust.PeerIDFromBytes([]byte("unknown"))

		for i := 0; i < 2; i++ {
			_, err := s.Get(missing)
			require.ErrorIs(t, err, common.ErrRecordNotFound)
		}

		require.Equal(t, 3, inner.gets)
	})
}

func TestWriteThrough(t *testing.T) {
	inner := newMemStorage()
	s, err := cache.New(inner, 10)
	require.NoError(t, err)

	id := trust.PeerIDFromBytes([]byte("vehicle 1"))
	rec := newRecord(0.5, 1000)

	require.NoError(t, s.Put(id, rec))
	require.Equal(t, 1, inner.puts)
	require.Equal(t, rec, inner.m[id])

	// written record is served without touching the storage
	got, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, rec, got)
	require.Zero(t, inner.gets)
}

func TestPutBatchWriteThrough(t *testing.T) {
	inner := newMemStorage()
	s, err := cache.New(inner, 10)
	require.NoError(t, err)

	recs := []trust.PeerRecord{
		{ID: trust.PeerIDFromBytes([]byte("vehicle 1")), Record: newRecord(0.5, 1000)},
		{ID: trust.PeerIDFromBytes([]byte("vehicle 2")), Record: newRecord(0.8, 1000)},
	}

	require.NoError(t, s.PutBatch(recs))
	require.Equal(t, 1, inner.puts)

	// both records landed in the storage and in the cache
	for i := range recs {
		require.Equal(t, recs[i].Record, inner.m[recs[i].ID])

		got, err := s.Get(recs[i].ID)
		require.NoError(t, err)
		require.Equal(t, recs[i].Record, got)
	}

	require.Zero(t, inner.gets)
}

func TestIterateBypassesCache(t *testing.T) {
	inner := newMemStorage()
	s, err := cache.New(inner, 10)
	require.NoError(t, err)

	id := trust.PeerIDFromBytes([]byte("vehicle 1"))
	rec := newRecord(0.5, 1000)
	require.NoError(t, s.Put(id, rec))

	var seen []trust.PeerRecord

	require.NoError(t, s.Iterate(func(pr trust.PeerRecord) error {
		seen = append(seen, pr)
		return nil
	}))

	require.Equal(t, 1, inner.iters)
	require.Equal(t, []trust.PeerRecord{{ID: id, Record: rec}}, seen)

	t.Run("handler error", func(t *testing.T) {
		errTest := errors.New("handler failed")

		require.ErrorIs(t, s.Iterate(func(trust.PeerRecord) error {
			return errTest
		}), errTest)
	})
}

func TestPurge(t *testing.T) {
	inner := newMemStorage()
	s, err := cache.New(inner, 10)
	require.NoError(t, err)

	id := trust.PeerIDFromBytes([]byte("vehicle 1"))
	require.NoError(t, s.Put(id, newRecord(0.5, 1000)))

	s.Purge()

	_, err = s.Get(id)
	require.NoError(t, err)
	require.Equal(t, 1, inner.gets)
}
