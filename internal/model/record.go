package model

import (
	"fmt"
	"unicode/utf8"
)

// Field widths of the fixed record layout, including the terminating NUL.
const (
	NameWidth   = 50
	EmailWidth  = 100
	SkillsWidth = 200
)

// Maximum number of content bytes each text field can hold.
const (
	MaxNameLen   = NameWidth - 1
	MaxEmailLen  = EmailWidth - 1
	MaxSkillsLen = SkillsWidth - 1
)

// Record is a developer profile. Records are values: every store keeps its
// own copy of what it was given.
type Record struct {
	ID     int32
	Name   string
	Email  string
	Skills string // comma-separated, see ParseSkills
	Salary float32
}

// String returns a one line summary of the record
func (r Record) String() string {
	return fmt.Sprintf("Record{id=%d, name=%q, email=%q, salary=%.2f}", r.ID, r.Name, r.Email, r.Salary)
}

// Truncate returns a copy of the record with every text field cut to the
// width of the fixed layout. Cuts never split a UTF-8 sequence.
func (r Record) Truncate() Record {
	r.Name = truncate(r.Name, MaxNameLen)
	r.Email = truncate(r.Email, MaxEmailLen)
	r.Skills = truncate(r.Skills, MaxSkillsLen)
	return r
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
