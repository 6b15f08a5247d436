package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/danielenielsen/chess-engine-two/internal/attacks"
	"github.com/danielenielsen/chess-engine-two/internal/board"
)

var (
	// ErrSnapshotNotFound is returned when no snapshot exists for a table.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotCorrupt is returned when stored entries fail verification.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
)

const (
	metaPrefix  = "meta/"
	tablePrefix = "table/"

	// color + square + occupancy
	entryKeySize = 1 + 1 + 8
)

// Meta describes a stored table snapshot.
type Meta struct {
	Piece    board.PieceType `json:"piece"`
	Mode     attacks.Mode    `json:"mode"`
	Entries  int             `json:"entries"`
	Checksum uint64          `json:"checksum"`
	SavedAt  time.Time       `json:"saved_at"`
}

func (m Meta) String() string {
	return fmt.Sprintf("%s %s: %d entries, checksum %016x, saved %s",
		m.Piece, m.Mode, m.Entries, m.Checksum, m.SavedAt.Format(time.RFC3339))
}

// Storage wraps BadgerDB for table snapshots.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a snapshot database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenInMemory opens a snapshot database that lives only in memory.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

// NewStorage opens the snapshot database in the default data directory.
func NewStorage() (*Storage, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func tableName(pt board.PieceType, mode attacks.Mode) string {
	return fmt.Sprintf("%c/%s", pt.Char(), mode)
}

func metaKey(pt board.PieceType, mode attacks.Mode) []byte {
	return []byte(metaPrefix + tableName(pt, mode))
}

func entryPrefix(pt board.PieceType, mode attacks.Mode) []byte {
	return []byte(tablePrefix + tableName(pt, mode) + "/")
}

func entryKey(prefix []byte, k attacks.Key) []byte {
	key := make([]byte, len(prefix)+entryKeySize)
	n := copy(key, prefix)
	key[n] = byte(k.Color)
	key[n+1] = byte(k.Square)
	binary.BigEndian.PutUint64(key[n+2:], uint64(k.Occupancy))
	return key
}

func decodeEntry(prefix, key, val []byte) (attacks.Entry, error) {
	if len(key) != len(prefix)+entryKeySize || len(val) != 8 {
		return attacks.Entry{}, fmt.Errorf("%w: malformed entry %x", ErrSnapshotCorrupt, key)
	}
	k := key[len(prefix):]
	return attacks.Entry{
		Key: attacks.Key{
			Color:     board.Color(k[0]),
			Square:    board.Square(k[1]),
			Occupancy: board.Bitboard(binary.BigEndian.Uint64(k[2:])),
		},
		Result: board.Bitboard(binary.BigEndian.Uint64(val)),
	}, nil
}

// SaveTable writes every entry of t plus its meta record. Saving the same
// table again overwrites the previous snapshot.
func (s *Storage) SaveTable(t *attacks.Table) error {
	prefix := entryPrefix(t.Piece(), t.Mode())

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	var err error
	t.Each(func(e attacks.Entry) {
		if err != nil {
			return
		}
		val := make([]byte, 8)
		binary.BigEndian.PutUint64(val, uint64(e.Result))
		err = wb.Set(entryKey(prefix, e.Key), val)
	})
	if err != nil {
		return fmt.Errorf("write %s entries: %w", t, err)
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush %s entries: %w", t, err)
	}

	data, err := json.Marshal(Meta{
		Piece:    t.Piece(),
		Mode:     t.Mode(),
		Entries:  t.Len(),
		Checksum: t.Checksum(),
		SavedAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey(t.Piece(), t.Mode()), data)
	})
}

// LoadMeta returns the meta record of a stored table.
func (s *Storage) LoadMeta(pt board.PieceType, mode attacks.Mode) (Meta, error) {
	var meta Meta

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(pt, mode))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s %s", ErrSnapshotNotFound, pt, mode)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})

	return meta, err
}

// HasTable reports whether a snapshot exists for the table.
func (s *Storage) HasTable(pt board.PieceType, mode attacks.Mode) (bool, error) {
	_, err := s.LoadMeta(pt, mode)
	if errors.Is(err, ErrSnapshotNotFound) {
		return false, nil
	}
	return err == nil, err
}

// LoadTable rebuilds a stored table and verifies it against its meta record.
func (s *Storage) LoadTable(pt board.PieceType, mode attacks.Mode) (*attacks.Table, error) {
	meta, err := s.LoadMeta(pt, mode)
	if err != nil {
		return nil, err
	}

	prefix := entryPrefix(pt, mode)
	entries := make([]attacks.Entry, 0, meta.Entries)

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				e, err := decodeEntry(prefix, item.Key(), val)
				if err != nil {
					return err
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t, err := attacks.RestoreTable(pt, mode, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if t.Len() != meta.Entries || t.Checksum() != meta.Checksum {
		return nil, fmt.Errorf("%w: %s %s checksum %016x, want %016x", ErrSnapshotCorrupt, pt, mode, t.Checksum(), meta.Checksum)
	}
	return t, nil
}

// List returns the meta records of every stored table.
func (s *Storage) List() ([]Meta, error) {
	var metas []Meta

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(metaPrefix)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m Meta
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return err
			}
			metas = append(metas, m)
		}
		return nil
	})

	return metas, err
}

// SaveTables stores every built table.
func (s *Storage) SaveTables(tables *attacks.Tables) error {
	var err error
	tables.Each(func(t *attacks.Table) {
		if err == nil {
			err = s.SaveTable(t)
		}
	})
	return err
}
