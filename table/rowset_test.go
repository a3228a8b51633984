package table

import (
	"reflect"
	"testing"
)

func TestRowSetOps(t *testing.T) {
	a := NewRowSet(1, 2, 3)
	b := NewRowSet(2, 3, 4)

	if got := a.Union(b).Sorted(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("union: got %v", got)
	}
	if got := a.Intersect(b).Sorted(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("intersect: got %v", got)
	}
	if got := a.Intersect(NewRowSet()).Len(); got != 0 {
		t.Errorf("intersect with empty: got %d rows", got)
	}
}

func TestRowSetSortedIsAscending(t *testing.T) {
	s := NewRowSet(9, 1, 5, 3)
	if got := s.Sorted(); !reflect.DeepEqual(got, []int{1, 3, 5, 9}) {
		t.Errorf("got %v", got)
	}
}

func TestRowSetContains(t *testing.T) {
	s := NewRowSet(7)
	if !s.Contains(7) || s.Contains(8) {
		t.Error("membership broken")
	}
	s.Add(8)
	if !s.Contains(8) {
		t.Error("Add did not insert")
	}
}
