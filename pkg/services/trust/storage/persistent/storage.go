package persistent

import (
	"fmt"

	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	"go.etcd.io/bbolt"
)

// Storage is a wrapper around a persistent K:V db that provides
// thread safe functions to set and fetch trust records of the
// vehicles.
type Storage struct {
	db *bbolt.DB
}

var recordBucket = []byte("records")

// ErrNotFound is returned by Get when there is no record
// stored for the requested vehicle.
var ErrNotFound = common.ErrRecordNotFound

// New creates a new instance of a storage with 0o600 rights
// on the db file.
func New(path string) (*Storage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{NoStatistics: true})
	if err != nil {
		return nil, fmt.Errorf("can't open bbolt at %s: %w", path, err)
	}

	return &Storage{db: db}, nil
}

// Get reads the trust record of the vehicle.
//
// Returns ErrNotFound if the record is missing.
func (s *Storage) Get(id trust.PeerID) (rec trust.Record, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(recordBucket)
		if b == nil {
			return ErrNotFound
		}

		v := b.Get(id.Bytes())
		if v == nil {
			return ErrNotFound
		}

		return unmarshalRecord(v, &rec)
	})

	return
}

// Put saves the trust record of the vehicle, overwriting the
// previous one if it exists.
func (s *Storage) Put(id trust.PeerID, rec trust.Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(recordBucket)
		if err != nil {
			return fmt.Errorf("can't create record bucket: %w", err)
		}

		return b.Put(id.Bytes(), marshalRecord(rec))
	})
}

// PutBatch saves all the passed records within a single
// transaction: either every record is written, or the storage
// is left untouched and an error is returned.
func (s *Storage) PutBatch(recs []trust.PeerRecord) error {
	if len(recs) == 0 {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(recordBucket)
		if err != nil {
			return fmt.Errorf("can't create record bucket: %w", err)
		}

		for i := range recs {
			if err := b.Put(recs[i].ID.Bytes(), marshalRecord(recs[i].Record)); err != nil {
				return fmt.Errorf("can't write record of %s: %w", recs[i].ID, err)
			}
		}

		return nil
	})
}

// Iterate passes all stored records to the handler in the
// byte order of the vehicle IDs. The order is stable between
// calls as long as the record set does not change.
//
// Returns errors of the handler directly.
func (s *Storage) Iterate(h trust.RecordHandler) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(recordBucket)
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var pr trust.PeerRecord

			pr.ID = trust.PeerIDFromBytes(k)

			if err := unmarshalRecord(v, &pr.Record); err != nil {
				return err
			}

			return h(pr)
		})
	})
}

// Delete removes the trust record of the vehicle. Missing
// record is not an error.
func (s *Storage) Delete(id trust.PeerID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(recordBucket)
		if b == nil {
			return nil
		}

		if err := b.Delete(id.Bytes()); err != nil {
			return fmt.Errorf("can't delete trust record: %w", err)
		}

		return nil
	})
}

// Close closes the persistent database instance.
func (s *Storage) Close() error {
	return s.db.Close()
}
