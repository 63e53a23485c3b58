package session

import "strings"

// ApplyFilter recomputes the visible rows from the snapshot and the search
// query, then clamps the selection into the new range.
func (s *State) ApplyFilter() {
	filtered := make([]int, 0, len(s.snapshot))
	query := strings.ToLower(s.query)

	for i, p := range s.snapshot {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.PID), query) {
			filtered = append(filtered, i)
		}
	}
	s.filtered = filtered

	// Clamp to the last row rather than jumping back to the top
	switch {
	case len(s.filtered) == 0:
		s.selected = -1
	case s.selected >= len(s.filtered):
		s.selected = len(s.filtered) - 1
	case s.selected < 0:
		s.selected = 0
	}
}

// MoveNext selects the next visible row, wrapping to the first
func (s *State) MoveNext() {
	if len(s.filtered) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	s.selected = (s.selected + 1) % len(s.filtered)
}

// MovePrevious selects the previous visible row, wrapping to the last
func (s *State) MovePrevious() {
	if len(s.filtered) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	s.selected = (s.selected - 1 + len(s.filtered)) % len(s.filtered)
}

// MoveFirst selects the first visible row
func (s *State) MoveFirst() {
	if len(s.filtered) == 0 {
		return
	}
	s.selected = 0
}

// MoveLast selects the last visible row
func (s *State) MoveLast() {
	if len(s.filtered) == 0 {
		return
	}
	s.selected = len(s.filtered) - 1
}

// indexOfPID finds the visible row showing pid, or -1
func (s *State) indexOfPID(pid string) int {
	for pos, idx := range s.filtered {
		if s.snapshot[idx].PID == pid {
			return pos
		}
	}
	return -1
}
