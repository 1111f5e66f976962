package random

import (
	"sync"
	"testing"
)

func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct seeds, got %d twice", first)
	}
}

func TestRandomNumberOneIsAlwaysZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := RandomNumber(1); got != 0 {
			t.Fatalf("RandomNumber(1) = %d, want 0", got)
		}
	}
}

func TestRandomNumberNonPositiveBound(t *testing.T) {
	for _, max := range []int{0, -1, -1000} {
		if got := RandomNumber(max); got != 0 {
			t.Fatalf("RandomNumber(%d) = %d, want 0", max, got)
		}
	}
}

func TestRandomNumberStaysInRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		got := RandomNumber(6)
		if got < 0 || got >= 6 {
			t.Fatalf("RandomNumber(6) = %d out of range", got)
		}
		seen[got] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected every value in [0,6) to appear, saw %v", seen)
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Number(1000), b.Number(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := NewGenerator(7)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := g.Number(10); got < 0 || got >= 10 {
					t.Errorf("Number(10) = %d out of range", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
