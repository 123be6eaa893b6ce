package core

import "testing"

func TestCellNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := Alive.Next(n); got != wantAlive {
			t.Fatalf("Alive with %d neighbours -> %v, want %v", n, got, wantAlive)
		}

		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		if got := Dead.Next(n); got != wantDead {
			t.Fatalf("Dead with %d neighbours -> %v, want %v", n, got, wantDead)
		}
	}
}

func TestCellNextOutOfRangeCounts(t *testing.T) {
	for _, n := range []int{-3, -1, 9, 27} {
		if Alive.Next(n) != Dead || Dead.Next(n) != Dead {
			t.Fatalf("count %d should always produce a dead cell", n)
		}
	}
}

func TestCellToggled(t *testing.T) {
	if Dead.Toggled() != Alive || Alive.Toggled() != Dead {
		t.Fatal("Toggled must swap states")
	}
}
