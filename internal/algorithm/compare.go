package algorithm

import (
	"strings"

	"github.com/devrev/recordstore/internal/model"
)

// Compare orders two records: negative if a goes first, positive if b does
type Compare func(a, b model.Record) int

// BySalaryDesc orders records from the highest salary to the lowest
func BySalaryDesc(a, b model.Record) int {
	switch {
	case a.Salary > b.Salary:
		return -1
	case a.Salary < b.Salary:
		return 1
	default:
		return 0
	}
}

// ByNameAsc orders records by name, byte-wise ascending
func ByNameAsc(a, b model.Record) int {
	return strings.Compare(a.Name, b.Name)
}
