package model

// SalaryStats summarizes the salaries of a set of records
type SalaryStats struct {
	Average float32
	Min     float32
	Max     float32
	Count   int
}

// ComputeSalaryStats returns the salary summary of records. The zero value is
// returned for an empty slice.
func ComputeSalaryStats(records []Record) SalaryStats {
	if len(records) == 0 {
		return SalaryStats{}
	}

	stats := SalaryStats{
		Min:   records[0].Salary,
		Max:   records[0].Salary,
		Count: len(records),
	}

	var total float64
	for _, r := range records {
		total += float64(r.Salary)
		if r.Salary < stats.Min {
			stats.Min = r.Salary
		}
		if r.Salary > stats.Max {
			stats.Max = r.Salary
		}
	}
	stats.Average = float32(total / float64(len(records)))

	return stats
}
