package table

import "sort"

// RowSet is an unordered set of row indices. The zero value is not usable;
// construct with NewRowSet.
type RowSet map[int]struct{}

// NewRowSet creates a set containing the given rows.
func NewRowSet(rows ...int) RowSet {
	s := make(RowSet, len(rows))
	for _, r := range rows {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts a row index.
func (s RowSet) Add(row int) {
	s[row] = struct{}{}
}

// Contains reports membership.
func (s RowSet) Contains(row int) bool {
	_, ok := s[row]
	return ok
}

// Len returns the number of rows in the set.
func (s RowSet) Len() int {
	return len(s)
}

// Union returns a new set with every row present in either operand.
func (s RowSet) Union(other RowSet) RowSet {
	out := make(RowSet, len(s)+len(other))
	for r := range s {
		out[r] = struct{}{}
	}
	for r := range other {
		out[r] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the rows present in both operands.
func (s RowSet) Intersect(other RowSet) RowSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(RowSet)
	for r := range small {
		if _, ok := large[r]; ok {
			out[r] = struct{}{}
		}
	}
	return out
}

// Sorted returns the rows in ascending order. Output always follows file
// order, so every consumer of a final set goes through here.
func (s RowSet) Sorted() []int {
	rows := make([]int, 0, len(s))
	for r := range s {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}
