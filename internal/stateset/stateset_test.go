package stateset

import (
	"reflect"
	"testing"
)

func TestAddAscendingOrder(t *testing.T) {
	s := New(10)
	for _, id := range []int{5, 1, 3, 1, 9, 0} {
		s.Add(id)
	}
	want := []int{0, 1, 3, 5, 9}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if s.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(want))
	}
}

func TestAddDuplicateIsNoop(t *testing.T) {
	s := New(4)
	if !s.Add(2) {
		t.Fatal("first Add(2) should report true")
	}
	if s.Add(2) {
		t.Fatal("second Add(2) should report false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestContains(t *testing.T) {
	s := New(4)
	s.Add(2)
	if !s.Contains(2) {
		t.Error("Contains(2) = false, want true")
	}
	if s.Contains(3) {
		t.Error("Contains(3) = true, want false")
	}
	if s.Contains(-1) || s.Contains(4) {
		t.Error("Contains() should be false for out-of-range ids")
	}
}

func TestClear(t *testing.T) {
	s := New(4)
	s.Add(0)
	s.Add(3)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", s.Len())
	}
	if s.Contains(0) || s.Contains(3) {
		t.Error("Contains() should be false for every id after Clear()")
	}
	if !s.Add(3) {
		t.Error("Add() after Clear() should succeed again")
	}
}
