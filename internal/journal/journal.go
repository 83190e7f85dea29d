// Package journal persists a record of every dispatched command in a
// Badger store, keyed by the command's request ID. ULID request IDs
// sort by creation time, so a prefix scan in reverse yields the most
// recent commands first.
package journal

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/uebridge-go/internal/engine"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
)

var keyPrefix = []byte("cmd/")

// Journal is a badger-backed log of command results. It implements
// engine.Observer, so it can be attached to a connection directly.
type Journal struct {
	db  *badger.DB
	log logger.Logger
}

// Open opens the journal at dir. An empty dir opens an in-memory
// store, which is useful for tests and the REPL.
func Open(dir string, log logger.Logger) (*Journal, error) {
	if log == nil {
		log = logger.Default()
	}
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &badgerLogger{log: log.With("component", "journal")}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("journal: open store: %w", err)
	}
	return &Journal{db: db, log: log.With("component", "journal")}, nil
}

// Append stores one result.
func (j *Journal) Append(r engine.Result) error {
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("journal: encode record: %w", err)
	}
	key := append(append([]byte{}, keyPrefix...), r.ID...)
	err = j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("journal: write record: %w", err)
	}
	return nil
}

// Observe implements engine.Observer. Write failures are logged, not
// surfaced; the journal must never fail a command.
func (j *Journal) Observe(r engine.Result) {
	if err := j.Append(r); err != nil {
		j.log.Error("journal append failed", "request_id", r.ID, "error", err)
	}
}

// Recent returns up to n results, newest first.
func (j *Journal) Recent(n int) ([]engine.Result, error) {
	var out []engine.Result
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = keyPrefix
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts past the last key of the prefix.
		seek := append(append([]byte{}, keyPrefix...), 0xFF)
		for it.Seek(seek); it.Valid() && len(out) < n; it.Next() {
			var r engine.Result
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &r)
			})
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("journal: scan records: %w", err)
	}
	return out, nil
}

// Get looks up a single record by request ID.
func (j *Journal) Get(id string) (engine.Result, error) {
	var r engine.Result
	key := append(append([]byte{}, keyPrefix...), id...)
	err := j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &r)
		})
	})
	if err != nil {
		return r, fmt.Errorf("journal: get %s: %w", id, err)
	}
	return r, nil
}

// Close flushes and closes the store.
func (j *Journal) Close() error {
	return j.db.Close()
}

// badgerLogger adapts the structured logger to badger's interface.
type badgerLogger struct {
	log logger.Logger
}

func (b *badgerLogger) Errorf(format string, args ...any) {
	b.log.Error(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Warningf(format string, args ...any) {
	b.log.Warn(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Infof(format string, args ...any) {
	b.log.Debug(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Debugf(format string, args ...any) {
	b.log.Debug(fmt.Sprintf(format, args...))
}
