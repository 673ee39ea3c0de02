package algorithm_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/devrev/recordstore/internal/algorithm"
	"github.com/devrev/recordstore/internal/model"
	"github.com/stretchr/testify/assert"
)

func intCmp(a, b int) int { return a - b }

func TestQuickSort_Ints(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{name: "empty", input: []int{}, want: []int{}},
		{name: "single", input: []int{7}, want: []int{7}},
		{name: "already sorted", input: []int{1, 2, 3, 4}, want: []int{1, 2, 3, 4}},
		{name: "reversed", input: []int{4, 3, 2, 1}, want: []int{1, 2, 3, 4}},
		{name: "duplicates", input: []int{3, 1, 3, 2, 1}, want: []int{1, 1, 2, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			algorithm.QuickSort(tt.input, intCmp)
			assert.Equal(t, tt.want, tt.input)
		})
	}
}

func TestQuickSort_MatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]int, 1000)
	for i := range input {
		input[i] = rng.Intn(100)
	}
	want := append([]int(nil), input...)
	sort.Ints(want)

	algorithm.QuickSort(input, intCmp)
	assert.Equal(t, want, input)
}

func TestQuickSort_LongOrderedInput(t *testing.T) {
	input := make([]int, 5000)
	for i := range input {
		input[i] = i
	}

	algorithm.QuickSort(input, intCmp)
	assert.True(t, sort.IntsAreSorted(input))
}

func TestComparators(t *testing.T) {
	low := model.Record{ID: 1, Name: "Bob Smith", Salary: 82000}
	high := model.Record{ID: 2, Name: "Alice Johnson", Salary: 90000}

	assert.Negative(t, algorithm.BySalaryDesc(high, low))
	assert.Positive(t, algorithm.BySalaryDesc(low, high))
	assert.Zero(t, algorithm.BySalaryDesc(low, low))

	assert.Negative(t, algorithm.ByNameAsc(high, low))
	assert.Positive(t, algorithm.ByNameAsc(low, high))
	assert.Zero(t, algorithm.ByNameAsc(low, low))
}
