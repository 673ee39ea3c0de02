package ordered

import (
	"github.com/devrev/recordstore/internal/model"
	"github.com/google/btree"
)

// DefaultDegree is the btree degree used when none is given
const DefaultDegree = 16

// Item orders records by name, then by ID
type Item struct {
	Record model.Record
}

// Less implements btree.Item
func (i Item) Less(than btree.Item) bool {
	o := than.(Item)
	if i.Record.Name != o.Record.Name {
		return i.Record.Name < o.Record.Name
	}
	return i.Record.ID < o.Record.ID
}

// NameIndex keeps records in ascending name order
type NameIndex struct {
	tree *btree.BTree
}

// New creates an empty name index
func New(degree int) *NameIndex {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &NameIndex{tree: btree.New(degree)}
}

// Insert adds a copy of rec. A record with the same name and ID replaces the
// previous one.
func (ix *NameIndex) Insert(rec model.Record) {
	ix.tree.ReplaceOrInsert(Item{Record: rec})
}

// Ascend calls fn for each record in name order until fn returns false
func (ix *NameIndex) Ascend(fn func(rec model.Record) bool) {
	ix.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(Item).Record)
	})
}

// Records returns all records in name order
func (ix *NameIndex) Records() []model.Record {
	records := make([]model.Record, 0, ix.tree.Len())
	ix.Ascend(func(rec model.Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}

// Len returns the number of indexed records
func (ix *NameIndex) Len() int {
	return ix.tree.Len()
}

// Close drops every item
func (ix *NameIndex) Close() {
	ix.tree.Clear(false)
}
