package session

import (
	"fmt"
	"slices"
	"strings"

	"procsweep/internal/process"
)

// SortColumn identifies the column the snapshot is ordered by
type SortColumn int

const (
	SortPID SortColumn = iota
	SortName
	SortMemory
)

func (c SortColumn) String() string {
	switch c {
	case SortName:
		return "name"
	case SortMemory:
		return "memory"
	default:
		return "pid"
	}
}

// ParseSortColumn maps a column name ("pid", "name", "memory") to its SortColumn
func ParseSortColumn(s string) (SortColumn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pid":
		return SortPID, nil
	case "name":
		return SortName, nil
	case "memory", "mem":
		return SortMemory, nil
	}
	return SortPID, fmt.Errorf("unknown sort column %q (want pid, name or memory)", s)
}

// SetSort selects col as the sort column. Selecting the active column again
// flips the direction; a new column always starts ascending.
func (s *State) SetSort(col SortColumn) {
	if col == s.sortColumn {
		s.sortAscending = !s.sortAscending
	} else {
		s.sortColumn = col
		s.sortAscending = true
	}

	s.sortSnapshot()
	s.ApplyFilter()

	s.log.Debug().
		Stringer("column", s.sortColumn).
		Bool("ascending", s.sortAscending).
		Msg("sort changed")
}

// sortSnapshot orders the snapshot by the active comparator. The sort is
// stable so equal keys do not jump around between refreshes.
func (s *State) sortSnapshot() {
	cmp := comparator(s.sortColumn)
	if !s.sortAscending {
		asc := cmp
		cmp = func(a, b process.Process) int { return asc(b, a) }
	}
	slices.SortStableFunc(s.snapshot, cmp)
}

func comparator(col SortColumn) func(a, b process.Process) int {
	switch col {
	case SortName:
		return compareName
	case SortMemory:
		return compareMemory
	default:
		return comparePID
	}
}

// comparePID orders by numeric PID. Identifiers that do not parse count as 0.
func comparePID(a, b process.Process) int {
	pa, _ := a.NumericPID()
	pb, _ := b.NumericPID()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

func compareName(a, b process.Process) int {
	return strings.Compare(a.Name, b.Name)
}

// compareMemory orders by memory. Values that cannot be ordered (NaN) compare equal.
func compareMemory(a, b process.Process) int {
	switch {
	case a.MemoryMB < b.MemoryMB:
		return -1
	case a.MemoryMB > b.MemoryMB:
		return 1
	}
	return 0
}
