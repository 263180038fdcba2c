package pending

import (
	"math/rand"
	"testing"
)

func init() {
	rand.Seed(1)
}

func TestEmptySet(t *testing.T) {
	s := New[string, int]()

	if s.Len() != 0 {
		t.Fatalf("expected size 0, got %d", s.Len())
	}

	if _, ok := s.Get("x"); ok {
		t.Fatalf("expected miss on empty set")
	}
}

func TestPutAndGet(t *testing.T) {
	s := New[string, int]()

	if ok := s.Put("b", 2); !ok {
		t.Fatalf("expected first insert to succeed")
	}

	v, ok := s.Get("b")
	if !ok || v != 2 {
		t.Fatalf("expected (2,true), got (%v,%v)", v, ok)
	}
}

func TestPutRejectsDuplicate(t *testing.T) {
	s := New[string, int]()

	s.Put("k", 1)

	if ok := s.Put("k", 2); ok {
		t.Fatalf("expected duplicate Put to be rejected")
	}

	v, _ := s.Get("k")
	if v != 1 {
		t.Fatalf("duplicate Put must not modify existing value, got %v", v)
	}
}

func TestDeleteUndoesInsertion(t *testing.T) {
	s := New[string, int]()

	s.Put("k", 1)
	s.Delete("k")

	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected miss after delete")
	}
	if s.Len() != 0 {
		t.Fatalf("expected size 0 after delete, got %d", s.Len())
	}

	if ok := s.Put("k", 2); !ok {
		t.Fatalf("expected Put of a different value to succeed after delete")
	}
}

func TestAllIteratesInOrder(t *testing.T) {
	s := New[string, int]()

	for _, k := range []string{"b", "aa", "a"} {
		s.Put(k, len(k))
	}

	var got []string
	for r := range s.All() {
		got = append(got, r.Key)
	}

	want := []string{"a", "aa", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestLargeRandomOrdering(t *testing.T) {
	s := New[int, struct{}]()

	keys := rand.Perm(500)
	for _, k := range keys {
		s.Put(k, struct{}{})
	}

	prev := -1
	count := 0
	for r := range s.All() {
		if r.Key <= prev {
			t.Fatalf("out of order: %d after %d", r.Key, prev)
		}
		prev = r.Key
		count++
	}
	if count != 500 {
		t.Fatalf("expected 500 entries, got %d", count)
	}
}
