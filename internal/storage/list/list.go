package list

import (
	"github.com/devrev/recordstore/internal/model"
	"go.uber.org/zap"
)

// Node is one link of the chain
type Node struct {
	Record model.Record
	next   *Node
}

// List is a singly linked record store. New records become the head, so
// traversal order is most-recent-first.
type List struct {
	head   *Node
	size   int
	logger *zap.Logger
}

// New creates an empty list
func New(logger *zap.Logger) *List {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &List{logger: logger}
}

// Insert links a copy of rec in as the new head
func (l *List) Insert(rec model.Record) {
	l.head = &Node{Record: rec, next: l.head}
	l.size++

	l.logger.Debug("Record added to list",
		zap.Int32("id", rec.ID),
		zap.String("name", rec.Name))
}

// FindByID returns the first record with the given ID, scanning from the head.
// The returned pointer aliases the list's own copy.
func (l *List) FindByID(id int32) (*model.Record, bool) {
	for n := l.head; n != nil; n = n.next {
		if n.Record.ID == id {
			return &n.Record, true
		}
	}
	return nil, false
}

// Head returns the first node, or nil for an empty list
func (l *List) Head() *Node {
	return l.head
}

// Next returns the node after n
func (n *Node) Next() *Node {
	return n.next
}

// Len returns the number of records in the list
func (l *List) Len() int {
	return l.size
}

// Records returns copies of all records in traversal order
func (l *List) Records() []model.Record {
	records := make([]model.Record, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		records = append(records, n.Record)
	}
	return records
}

// Close unlinks every node. Calling it again is a no-op.
func (l *List) Close() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.size = 0
}

// Iterator returns a new list iterator
func (l *List) Iterator() *Iterator {
	return &Iterator{next: l.head}
}

// Iterator walks the list from head to tail
type Iterator struct {
	current *Node
	next    *Node
}

// Next moves to the next element
func (it *Iterator) Next() bool {
	it.current = it.next
	if it.current == nil {
		return false
	}
	it.next = it.current.next
	return true
}

// Record returns the current record
func (it *Iterator) Record() model.Record {
	if it.current == nil {
		return model.Record{}
	}
	return it.current.Record
}
