// Package boltseq exposes the content of a BoltDB bucket as a sequence.
package boltseq

import (
	"github.com/boltdb/bolt"

	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
	"go.llib.dev/traverse/pkg/seqkit"
)

// Entry is a key-value pair of a bucket.
type Entry struct {
	Key   []byte
	Value []byte
}

// New returns the bucket named name of db as a sequence of entries, in key order.
// The bucket does not need to exist yet; until it does, the sequence is empty.
func New(db *bolt.DB, name string) (*Bucket, error) {
	if db == nil {
		return nil, errorkit.At(errorkit.OpConstruct, "boltseq.New", cursorkit.ErrNilArgument.F("db is absent"))
	}
	return &Bucket{DB: db, Name: []byte(name)}, nil
}

// Bucket is a reversible, removable sequence over a BoltDB bucket.
//
// Every cursor reads a snapshot taken in a read transaction when the cursor is created,
// so a long traversal never holds the database.
// Remove deletes the key of the last returned entry in its own update transaction.
type Bucket struct {
	DB   *bolt.DB
	Name []byte
}

func (b *Bucket) Cursor() cursorkit.Cursor[Entry] {
	entries, err := b.snapshot()
	if err != nil {
		return cursorkit.Error[Entry](errorkit.At(errorkit.OpNext, "boltseq", err))
	}
	return cursorkit.RemoveHandler[Entry](cursorkit.Slice(entries), b.delete)
}

func (b *Bucket) Backward() cursorkit.Cursor[Entry] {
	entries, err := b.snapshot()
	if err != nil {
		return cursorkit.Error[Entry](errorkit.At(errorkit.OpNext, "boltseq", err))
	}
	return cursorkit.RemoveHandler(cursorkit.SliceBackward(entries), b.delete)
}

func (b *Bucket) Capabilities() seqkit.Capability {
	return seqkit.Removable | seqkit.Reversible | seqkit.Repeatable
}

// Put stores a value under key, and creates the bucket when it is missing.
func (b *Bucket) Put(key, value []byte) error {
	return b.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(b.Name)
		if err != nil {
			return err
		}
		return bucket.Put(key, value)
	})
}

func (b *Bucket) snapshot() ([]Entry, error) {
	var entries []Entry
	err := b.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.Name)
		if bucket == nil {
			return nil
		}
		// bolt's byte slices are only valid within the transaction
		return bucket.ForEach(func(k, v []byte) error {
			entries = append(entries, Entry{
				Key:   append([]byte(nil), k...),
				Value: append([]byte(nil), v...),
			})
			return nil
		})
	})
	return entries, err
}

func (b *Bucket) delete(e Entry) error {
	err := b.DB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.Name)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(e.Key)
	})
	return errorkit.At(errorkit.OpRemove, "boltseq", err)
}

// Values returns the decoded values of a bucket.
// A decoding failure surfaces from the cursor, wrapped in cursorkit.ErrConversion.
func Values[T any](b *Bucket, decode func([]byte) (T, error)) (seqkit.Sequence[T], error) {
	if decode == nil {
		return nil, errorkit.At(errorkit.OpConstruct, "boltseq.Values", cursorkit.ErrNilArgument.F("decode is absent"))
	}
	return seqkit.Convert[Entry, T](b, func(e Entry) (T, error) {
		return decode(e.Value)
	})
}
