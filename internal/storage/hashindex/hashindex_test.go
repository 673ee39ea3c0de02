package hashindex_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/devrev/recordstore/internal/model"
	"github.com/devrev/recordstore/internal/storage/hashindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func record(id int32) model.Record {
	return model.Record{
		ID:    id,
		Name:  fmt.Sprintf("dev-%d", id),
		Email: fmt.Sprintf("dev%d@example.com", id),
	}
}

func TestHashOf(t *testing.T) {
	tests := []struct {
		id   int32
		want uint32
	}{
		{id: 0, want: 0},
		{id: 1, want: 1},
		{id: 100, want: 100},
		{id: 101, want: 0},
		{id: 205, want: 3},
		{id: math.MaxInt32, want: uint32(math.MaxInt32) % 101},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("id %d", tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, hashindex.HashOf(tt.id))
		})
	}
}

func TestHashOf_AlwaysInRange(t *testing.T) {
	for _, id := range []int32{-1, -5, -101, math.MinInt32, 7, 1 << 20} {
		assert.Less(t, hashindex.HashOf(id), uint32(hashindex.BucketCount))
	}
}

func TestIndex_InsertSearch(t *testing.T) {
	ix := hashindex.New(zap.NewNop())
	for id := int32(1); id <= 500; id++ {
		ix.Insert(id, record(id))
	}
	assert.Equal(t, 500, ix.Len())

	for id := int32(1); id <= 500; id++ {
		rec, found := ix.Search(id)
		require.True(t, found, "id %d", id)
		assert.Equal(t, record(id), *rec)
	}

	_, found := ix.Search(501)
	assert.False(t, found)
}

func TestIndex_Collisions(t *testing.T) {
	ix := hashindex.New(zap.NewNop())
	k1, k2 := int32(5), int32(5+hashindex.BucketCount)
	require.Equal(t, hashindex.HashOf(k1), hashindex.HashOf(k2))

	ix.Insert(k1, record(k1))
	ix.Insert(k2, record(k2))

	assert.Equal(t, 2, ix.BucketLen(hashindex.HashOf(k1)))

	rec, found := ix.Search(k1)
	require.True(t, found)
	assert.Equal(t, k1, rec.ID)

	rec, found = ix.Search(k2)
	require.True(t, found)
	assert.Equal(t, k2, rec.ID)
}

func TestIndex_DuplicateReturnsLatest(t *testing.T) {
	ix := hashindex.New(zap.NewNop())
	older := record(42)
	newer := record(42)
	newer.Name = "newer"

	ix.Insert(42, older)
	ix.Insert(42, newer)

	rec, found := ix.Search(42)
	require.True(t, found)
	assert.Equal(t, "newer", rec.Name)
	assert.Equal(t, 2, ix.Len())
}

func TestIndex_BucketLen(t *testing.T) {
	ix := hashindex.New(zap.NewNop())
	assert.Equal(t, 0, ix.BucketLen(0))
	assert.Equal(t, 0, ix.BucketLen(hashindex.BucketCount))

	for id := int32(1); id <= hashindex.BucketCount; id++ {
		ix.Insert(id, record(id))
	}
	for b := uint32(0); b < hashindex.BucketCount; b++ {
		assert.Equal(t, 1, ix.BucketLen(b))
	}
}

func TestIndex_Close(t *testing.T) {
	ix := hashindex.New(zap.NewNop())
	ix.Insert(1, record(1))
	ix.Close()
	ix.Close()

	assert.Equal(t, 0, ix.Len())
	_, found := ix.Search(1)
	assert.False(t, found)
}

func TestIndex_InsertLogsBucket(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ix := hashindex.New(zap.New(core))

	ix.Insert(205, record(205))

	entries := logs.FilterMessage("Record added to hash index").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int32(205), fields["id"])
	assert.Equal(t, uint32(3), fields["bucket"])
}

func TestIndex_NilLogger(t *testing.T) {
	ix := hashindex.New(nil)
	ix.Insert(1, record(1))
	assert.Equal(t, 1, ix.Len())
}
