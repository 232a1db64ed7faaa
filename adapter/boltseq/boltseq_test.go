package boltseq_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/require"

	"go.llib.dev/traverse/adapter/boltseq"
	"go.llib.dev/traverse/pkg/cursorkit"
	"go.llib.dev/traverse/pkg/errorkit"
	"go.llib.dev/traverse/pkg/seqkit"
)

func openDB(tb testing.TB) *bolt.DB {
	tb.Helper()
	db, err := bolt.Open(filepath.Join(tb.TempDir(), "test.db"), 0600, nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

func newBucket(tb testing.TB, kvs ...string) *boltseq.Bucket {
	tb.Helper()
	b, err := boltseq.New(openDB(tb), "entries")
	require.NoError(tb, err)
	for i := 0; i+1 < len(kvs); i += 2 {
		require.NoError(tb, b.Put([]byte(kvs[i]), []byte(kvs[i+1])))
	}
	return b
}

func keysOf(tb testing.TB, c cursorkit.Cursor[boltseq.Entry]) []string {
	tb.Helper()
	entries, err := cursorkit.Collect(c)
	require.NoError(tb, err)
	var keys []string
	for _, e := range entries {
		keys = append(keys, string(e.Key))
	}
	return keys
}

func TestBucket_Cursor(t *testing.T) {
	b := newBucket(t, "b", "2", "a", "1", "c", "3")

	require.Equal(t, []string{"a", "b", "c"}, keysOf(t, b.Cursor()))
	require.Equal(t, []string{"a", "b", "c"}, keysOf(t, b.Cursor()), "the sequence is repeatable")
	require.Equal(t, []string{"c", "b", "a"}, keysOf(t, b.Backward()))
}

func TestBucket_missingBucketIsEmpty(t *testing.T) {
	b, err := boltseq.New(openDB(t), "missing")
	require.NoError(t, err)
	require.False(t, b.Cursor().HasNext())
}

func TestBucket_Remove(t *testing.T) {
	b := newBucket(t, "a", "1", "b", "2")

	c := b.Cursor()
	e, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, "a", string(e.Key))
	require.NoError(t, c.Remove())
	require.ErrorIs(t, c.Remove(), cursorkit.ErrIllegalState)

	require.Equal(t, []string{"b"}, keysOf(t, b.Cursor()))
}

func TestBucket_capabilities(t *testing.T) {
	b := newBucket(t)
	caps := seqkit.CapabilitiesOf[boltseq.Entry](b)
	require.True(t, caps.Has(seqkit.Removable|seqkit.Reversible|seqkit.Repeatable))

	rev, err := seqkit.Reverse[boltseq.Entry](b)
	require.NoError(t, err)
	require.NotNil(t, rev)
}

func TestNew_absentDB(t *testing.T) {
	_, err := boltseq.New(nil, "x")
	require.ErrorIs(t, err, cursorkit.ErrNilArgument)
}

func TestValues(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}
	b := newBucket(t, "1", `{"name":"foo"}`, "2", `{"name":"bar"}`, "3", `not json`)

	seq, err := boltseq.Values(b, func(data []byte) (item, error) {
		var it item
		return it, json.Unmarshal(data, &it)
	})
	require.NoError(t, err)

	c := seq.Cursor()
	var got []item
	for c.HasNext() {
		it, err := c.Next()
		if err != nil {
			require.ErrorIs(t, err, cursorkit.ErrConversion)
			continue
		}
		got = append(got, it)
	}
	require.Equal(t, []item{{Name: "foo"}, {Name: "bar"}}, got)
}

func TestValues_absentDecode(t *testing.T) {
	b := newBucket(t, "1", "v")
	seq, err := boltseq.Values[string](b, nil)
	require.ErrorIs(t, err, cursorkit.ErrNilArgument)
	require.Nil(t, seq)
}

func TestBucket_Remove_failure(t *testing.T) {
	b := newBucket(t, "a", "1")
	c := b.Cursor()
	_, err := c.Next()
	require.NoError(t, err)
	require.NoError(t, b.DB.Close())

	err = c.Remove()
	require.ErrorIs(t, err, bolt.ErrDatabaseNotOpen)
	op, ok := errorkit.OpOf(err)
	require.True(t, ok)
	require.Equal(t, errorkit.OpRemove, op)
}
