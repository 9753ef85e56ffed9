package countstore

import (
	"encoding/binary"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// maxIncrRetries bounds the optimistic-transaction retry loop for a single
// increment. Conflicts only occur between overlapping writers in the same
// process; the bound is generous enough that hitting it means something is
// genuinely wrong.
const maxIncrRetries = 100

type badgerOptions struct {
	readOnly   bool
	syncWrites bool
	logger     badger.Logger
}

// BadgerOption configures a BadgerStore at open time.
type BadgerOption func(*badgerOptions)

// WithSyncWrites makes every increment fsync before returning. The default
// trades a small durability window for much faster training.
func WithSyncWrites(sync bool) BadgerOption {
	return func(o *badgerOptions) {
		o.syncWrites = sync
	}
}

// WithBadgerLogger routes Badger's internal logging. The default discards it.
func WithBadgerLogger(l badger.Logger) BadgerOption {
	return func(o *badgerOptions) {
		o.logger = l
	}
}

// BadgerStore is a Store backed by a Badger database directory. Badger
// enforces a single writer per directory via a file lock; additional
// read-only handles may be open concurrently from other processes.
//
// Counter values are stored as big-endian uint64.
type BadgerStore struct {
	db       *badger.DB
	readOnly bool
}

var _ Store = (*BadgerStore)(nil)

// Open opens (creating if necessary) a writable store at path.
func Open(path string, optFns ...BadgerOption) (*BadgerStore, error) {
	return open(path, false, optFns...)
}

// OpenReadOnly opens an existing store at path for reading only. Multiple
// read-only handles may coexist; writes return ErrReadOnly.
func OpenReadOnly(path string, optFns ...BadgerOption) (*BadgerStore, error) {
	return open(path, true, optFns...)
}

func open(path string, readOnly bool, optFns ...BadgerOption) (*BadgerStore, error) {
	opts := badgerOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	bopts := badger.DefaultOptions(path).
		WithReadOnly(readOnly).
		WithSyncWrites(opts.syncWrites).
		WithLogger(opts.logger)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnavailable, path, err)
	}
	return &BadgerStore{db: db, readOnly: readOnly}, nil
}

// IncrFeatureCategory implements Store.
func (s *BadgerStore) IncrFeatureCategory(feature, category string) (uint64, error) {
	return s.incr(featureCategoryKey(feature, category))
}

// IncrCategory implements Store. The global total is bumped first, matching
// the order reads expect: a torn pair overstates the total rather than
// undercounting a category.
func (s *BadgerStore) IncrCategory(category string) (uint64, error) {
	if _, err := s.incr(totalKey); err != nil {
		return 0, err
	}
	return s.incr(categoryKey(category))
}

func (s *BadgerStore) incr(key []byte) (uint64, error) {
	if s.readOnly {
		return 0, ErrReadOnly
	}

	var next uint64
	for attempt := 0; ; attempt++ {
		err := s.db.Update(func(txn *badger.Txn) error {
			cur, err := readCount(txn, key)
			if err != nil {
				return err
			}
			next = cur + 1
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], next)
			return txn.Set(key, buf[:])
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxIncrRetries {
			continue
		}
		if err != nil {
			return 0, err
		}
		return next, nil
	}
}

// FeatureCategoryCount implements Store.
func (s *BadgerStore) FeatureCategoryCount(feature, category string) (uint64, error) {
	return s.get(featureCategoryKey(feature, category))
}

// CategoryCount implements Store.
func (s *BadgerStore) CategoryCount(category string) (uint64, error) {
	return s.get(categoryKey(category))
}

// TotalCount implements Store.
func (s *BadgerStore) TotalCount() (uint64, error) {
	return s.get(totalKey)
}

func (s *BadgerStore) get(key []byte) (uint64, error) {
	var count uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		count, err = readCount(txn, key)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FeatureTotal implements Store by scanning the feature's key prefix.
func (s *BadgerStore) FeatureTotal(feature string) (uint64, error) {
	prefix := featurePrefix(feature)

	var total uint64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				n, err := decodeCount(val)
				if err != nil {
					return err
				}
				total += n
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Categories implements Store. Labels come back in Badger's key order, which
// for the category key space is bytewise order of the labels.
func (s *BadgerStore) Categories() ([]string, error) {
	var categories []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{kindCategory}
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			categories = append(categories, categoryFromKey(key))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func readCount(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count uint64
	err = item.Value(func(val []byte) error {
		var err error
		count, err = decodeCount(val)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func decodeCount(val []byte) (uint64, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("countstore: counter value has %d bytes, want 8", len(val))
	}
	return binary.BigEndian.Uint64(val), nil
}
