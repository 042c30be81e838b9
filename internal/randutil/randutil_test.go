package randutil

import (
	"sort"
	"sync"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(42), items)

	sorted := append([]int(nil), items...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("expected permutation of 1..8, got %v", items)
		}
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "b", "c", "d", "e"}
	Shuffle(New(7), a)
	Shuffle(New(7), b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected equal shuffles for the same seed, got %v and %v", a, b)
		}
	}
}

func TestPick(t *testing.T) {
	if got := Pick[string](New(1), nil); got != "" {
		t.Fatalf("expected zero value for empty slice, got %q", got)
	}
	if got := Pick(nil, []string{"only", "other"}); got != "only" {
		t.Fatalf("expected first item with nil source, got %q", got)
	}

	items := []string{"x", "y", "z"}
	got := Pick(New(3), items)
	found := false
	for _, item := range items {
		if item == got {
			found = true
		}
	}
	if !found {
		t.Fatalf("picked value %q is not in the pool", got)
	}
}

func TestBetween(t *testing.T) {
	src := New(99)
	for i := 0; i < 100; i++ {
		v := Between(src, 1.5, 3.0)
		if v < 1.5 || v >= 3.0 {
			t.Fatalf("value %v outside [1.5, 3.0)", v)
		}
	}
	if got := Between(src, 2, 1); got != 2 {
		t.Fatalf("expected lower bound for an inverted range, got %v", got)
	}
}

func TestLockedIsSafeForConcurrentUse(t *testing.T) {
	src := Locked(New(5))
	if Locked(src) != src {
		t.Fatal("expected an already locked source to be returned as is")
	}
	if Locked(nil) != nil {
		t.Fatal("expected nil for a nil source")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v := src.Intn(10); v < 0 || v >= 10 {
					t.Errorf("value %d out of range", v)
				}
				_ = src.Float64()
			}
		}()
	}
	wg.Wait()
}
