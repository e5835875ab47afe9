package universe

import (
	"slices"
	"testing"
)

func gridFrom(w, h uint32, alive ...Coord) *Universe {
	u := NewSized(w, h)
	u.SetAllDead()
	u.SetCells(alive...)
	return u
}

func assertAlive(t *testing.T, u *Universe, want []Coord) {
	t.Helper()
	expect := map[Coord]bool{}
	for _, c := range want {
		expect[c] = true
	}
	for row := uint32(0); row < u.Height(); row++ {
		for col := uint32(0); col < u.Width(); col++ {
			alive := u.At(row, col) == Alive
			if alive != expect[Coord{Row: row, Col: col}] {
				t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v\n%s",
					u.Generation(), row, col, alive, !alive, u)
			}
		}
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := uint8(0); n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := nextState(Alive, n); (got == Alive) != wantAlive {
			t.Fatalf("alive cell with %d neighbours -> %v", n, got)
		}
		wantBorn := n == 3
		if got := nextState(Dead, n); (got == Alive) != wantBorn {
			t.Fatalf("dead cell with %d neighbours -> %v", n, got)
		}
	}
}

func TestAllDeadIsFixedPoint(t *testing.T) {
	for _, sz := range [][2]uint32{{1, 1}, {2, 3}, {5, 5}, {17, 4}} {
		u := NewSized(sz[0], sz[1])
		u.SetAllDead()
		u.Tick()
		if u.Population() != 0 {
			t.Fatalf("%dx%d: dead grid produced %d live cells", sz[0], sz[1], u.Population())
		}
	}
}

func TestAllAliveDiesOfOvercrowding(t *testing.T) {
	for _, sz := range [][2]uint32{{3, 3}, {4, 7}, {64, 64}} {
		u := NewSized(sz[0], sz[1])
		u.SetAllAlive()
		u.Tick()
		if u.Population() != 0 {
			t.Fatalf("%dx%d: %d cells survived overcrowding", sz[0], sz[1], u.Population())
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := []Coord{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	u := gridFrom(6, 6, block...)
	before := append([]uint8(nil), u.Cells()...)
	for range 3 {
		u.Tick()
		if !slices.Equal(before, u.Cells()) {
			t.Fatalf("block changed at generation %d\n%s", u.Generation(), u)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []Coord{{1, 2}, {2, 2}, {3, 2}}
	horizontal := []Coord{{2, 1}, {2, 2}, {2, 3}}
	u := gridFrom(5, 5, vertical...)

	u.Tick()
	assertAlive(t, u, horizontal)
	u.Tick()
	assertAlive(t, u, vertical)
}

func TestGliderTranslates(t *testing.T) {
	glider := func(dr, dc uint32) []Coord {
		return []Coord{
			{1 + dr, 2 + dc},
			{2 + dr, 3 + dc},
			{3 + dr, 1 + dc}, {3 + dr, 2 + dc}, {3 + dr, 3 + dc},
		}
	}
	u := gridFrom(8, 8, glider(0, 0)...)
	for range 4 {
		u.Tick()
	}
	assertAlive(t, u, glider(1, 1))
}

func TestGliderWrapsAroundEdges(t *testing.T) {
	// 4 ticks per diagonal step; a 6x6 torus brings it home after 24.
	start := []Coord{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	u := gridFrom(6, 6, start...)
	for range 24 {
		u.Tick()
	}
	assertAlive(t, u, start)
}

func TestTickUsesPreTickState(t *testing.T) {
	// A row of three on a wide grid: if updates leaked into the same tick the
	// result would not be the symmetric vertical blinker.
	u := gridFrom(7, 5, Coord{2, 2}, Coord{2, 3}, Coord{2, 4})
	u.Tick()
	assertAlive(t, u, []Coord{{1, 3}, {2, 3}, {3, 3}})
}

func TestTickCountsGenerations(t *testing.T) {
	u := NewSized(4, 4)
	u.Tick()
	u.Tick()
	if u.Generation() != 2 {
		t.Fatalf("generation %d, want 2", u.Generation())
	}
	u.SetAllDead()
	if u.Generation() != 0 {
		t.Fatalf("generation %d after SetAllDead, want 0", u.Generation())
	}
}

type recordingObserver struct {
	events []string
	seen   []int
	u      *Universe
}

func (r *recordingObserver) TickStarted(gen uint64) {
	r.events = append(r.events, "start")
	r.seen = append(r.seen, r.u.Population())
}

func (r *recordingObserver) TickFinished(gen uint64) {
	r.events = append(r.events, "finish")
	r.seen = append(r.seen, r.u.Population())
}

func TestObserverWrapsTick(t *testing.T) {
	u := NewSized(4, 4)
	u.SetAllAlive()
	obs := &recordingObserver{u: u}
	u.SetObserver(obs)
	u.Tick()

	if !slices.Equal(obs.events, []string{"start", "finish"}) {
		t.Fatalf("observer events %v", obs.events)
	}
	if !slices.Equal(obs.seen, []int{16, 0}) {
		t.Fatalf("observer saw populations %v, want [16 0]", obs.seen)
	}

	u.SetObserver(nil)
	u.Tick()
	if len(obs.events) != 2 {
		t.Fatal("removed observer still notified")
	}
}
