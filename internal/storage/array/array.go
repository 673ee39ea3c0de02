package array

import (
	"fmt"

	"github.com/devrev/recordstore/internal/algorithm"
	"github.com/devrev/recordstore/internal/errors"
	"github.com/devrev/recordstore/internal/model"
	"go.uber.org/zap"
)

// Array is a contiguous record store that doubles its buffer when full
type Array struct {
	records []model.Record // len(records) is the capacity
	size    int
	logger  *zap.Logger
}

// New creates an empty array with room for initialCapacity records
func New(initialCapacity int, logger *zap.Logger) (*Array, error) {
	if initialCapacity < 1 {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("initial capacity must be at least 1, got %d", initialCapacity), nil).
			WithDetail("initial_capacity", initialCapacity)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Array{
		records: make([]model.Record, initialCapacity),
		logger:  logger,
	}, nil
}

// Append copies rec into the next free slot, growing the buffer first if it
// is full
func (a *Array) Append(rec model.Record) {
	if a.size >= len(a.records) {
		a.grow()
	}

	a.records[a.size] = rec
	a.size++
}

// grow reallocates the buffer to twice its capacity, keeping every element at
// its index
func (a *Array) grow() {
	newCapacity := len(a.records) * 2
	if newCapacity == 0 {
		newCapacity = 1
	}

	records := make([]model.Record, newCapacity)
	copy(records, a.records[:a.size])
	a.records = records

	a.logger.Debug("Array resized", zap.Int("capacity", newCapacity))
}

// At returns the record at index i
func (a *Array) At(i int) (model.Record, bool) {
	if i < 0 || i >= a.size {
		return model.Record{}, false
	}
	return a.records[i], true
}

// Len returns the number of stored records
func (a *Array) Len() int {
	return a.size
}

// Cap returns the current buffer capacity
func (a *Array) Cap() int {
	return len(a.records)
}

// Records returns copies of the stored records in index order
func (a *Array) Records() []model.Record {
	records := make([]model.Record, a.size)
	copy(records, a.records[:a.size])
	return records
}

// IndexOf returns the index of the first record with the given ID, or -1
func (a *Array) IndexOf(id int32) int {
	for i := 0; i < a.size; i++ {
		if a.records[i].ID == id {
			return i
		}
	}
	return -1
}

// Sort orders the records by salary, highest first
func (a *Array) Sort() {
	if a.size <= 1 {
		return
	}
	algorithm.QuickSort(a.records[:a.size], algorithm.BySalaryDesc)

	a.logger.Debug("Array sorted by salary", zap.Int("size", a.size))
}

// SortBy orders the records with a caller supplied comparison
func (a *Array) SortBy(cmp algorithm.Compare) {
	if a.size <= 1 {
		return
	}
	algorithm.QuickSort(a.records[:a.size], cmp)
}

// Stats returns the salary summary of the stored records
func (a *Array) Stats() model.SalaryStats {
	return model.ComputeSalaryStats(a.records[:a.size])
}

// Close releases the buffer
func (a *Array) Close() {
	a.records = nil
	a.size = 0
}
