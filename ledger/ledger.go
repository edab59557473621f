// Package ledger provides an optional append-only log of solved
// (trailer, nonce, hash) records for a mining session. It is strictly
// ambient observability: the Peach/Trigg core keeps no persisted state
// of its own, and a miner can run without ever opening a Ledger.
// Adapted from the badger-backed block store in poai/core/badgerstore.go.
package ledger

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"peachminer/trailer"
)

// Ledger is a badger-backed append-only record of solved nonces, keyed
// by a monotonically increasing sequence number.
type Ledger struct {
	db  *badger.DB
	seq uint64
}

// Open opens (creating if necessary) a ledger database under
// filepath.Join(dataDir, "ledger").
func Open(dataDir string) (*Ledger, error) {
	dbPath := filepath.Join(dataDir, "ledger")
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", dbPath, err)
	}
	l := &Ledger{db: db}
	seq, err := l.readSeq()
	if err != nil {
		db.Close()
		return nil, err
	}
	l.seq = seq
	return l, nil
}

func (l *Ledger) readSeq() (uint64, error) {
	var seq uint64
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("ledger:seq"))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			s, err := strconv.ParseUint(string(val), 10, 64)
			if err != nil {
				return err
			}
			seq = s
			return nil
		})
	})
	return seq, err
}

// Record is one solved proof-of-work entry.
type Record struct {
	Seq     uint64
	Trailer trailer.Trailer
	Hash    [32]byte
}

// Put appends a new record for the given trailer and final hash,
// returning its assigned sequence number.
func (l *Ledger) Put(bt *trailer.Trailer, hash []byte) (uint64, error) {
	seq := l.seq + 1
	val := make([]byte, trailer.Size+32)
	copy(val[:trailer.Size], bt.Bytes())
	copy(val[trailer.Size:], hash)

	key := []byte("solve:" + strconv.FormatUint(seq, 10))
	err := l.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, val); err != nil {
			return err
		}
		return txn.Set([]byte("ledger:seq"), []byte(strconv.FormatUint(seq, 10)))
	})
	if err != nil {
		return 0, fmt.Errorf("ledger: put: %w", err)
	}
	l.seq = seq
	return seq, nil
}

// Get retrieves the record stored under seq.
func (l *Ledger) Get(seq uint64) (*Record, error) {
	key := []byte("solve:" + strconv.FormatUint(seq, 10))
	var rec Record
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != trailer.Size+32 {
				return fmt.Errorf("ledger: corrupt record length %d", len(val))
			}
			copy(rec.Trailer[:], val[:trailer.Size])
			copy(rec.Hash[:], val[trailer.Size:])
			rec.Seq = seq
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Len returns the number of records appended so far.
func (l *Ledger) Len() uint64 { return l.seq }

// Close releases the underlying database handle.
func (l *Ledger) Close() error { return l.db.Close() }
