package hashindex

import (
	"github.com/devrev/recordstore/internal/model"
	"go.uber.org/zap"
)

// BucketCount is the fixed number of chains in every index
const BucketCount = 101

type entry struct {
	key    int32
	record model.Record
	next   *entry
}

// Index maps record IDs to records over BucketCount separate chains.
// Duplicate IDs are not rejected; the most recent insert is found first.
type Index struct {
	buckets [BucketCount]*entry
	size    int
	logger  *zap.Logger
}

// HashOf returns the bucket number for id, always in [0, BucketCount)
func HashOf(id int32) uint32 {
	return uint32(id) % BucketCount
}

// New creates an index with BucketCount empty buckets
func New(logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{logger: logger}
}

// Insert prepends a copy of rec to the bucket of id
func (ix *Index) Insert(id int32, rec model.Record) {
	b := HashOf(id)
	ix.buckets[b] = &entry{key: id, record: rec, next: ix.buckets[b]}
	ix.size++

	ix.logger.Debug("Record added to hash index",
		zap.Int32("id", id),
		zap.Uint32("bucket", b))
}

// Search scans the bucket of id and returns the first matching record. The
// returned pointer aliases the index's own copy.
func (ix *Index) Search(id int32) (*model.Record, bool) {
	for e := ix.buckets[HashOf(id)]; e != nil; e = e.next {
		if e.key == id {
			return &e.record, true
		}
	}
	return nil, false
}

// Len returns the number of entries across all buckets
func (ix *Index) Len() int {
	return ix.size
}

// BucketLen returns the chain length of bucket b
func (ix *Index) BucketLen(b uint32) int {
	if b >= BucketCount {
		return 0
	}
	n := 0
	for e := ix.buckets[b]; e != nil; e = e.next {
		n++
	}
	return n
}

// Close releases every chain. Calling it again is a no-op.
func (ix *Index) Close() {
	for i := range ix.buckets {
		ix.buckets[i] = nil
	}
	ix.size = 0
}
