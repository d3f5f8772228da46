package character

import "testing"

func TestDirectionVectors(t *testing.T) {
	cases := []struct {
		name string
		dir  Direction
		x, y int
	}{
		{"centre", Centre, 0, 0},
		{"n", N, 0, -1},
		{"ne", NE, 1, -1},
		{"e", E, 1, 0},
		{"se", SE, 1, 1},
		{"s", S, 0, 1},
		{"sw", SW, -1, 1},
		{"w", W, -1, 0},
		{"nw", NW, -1, -1},
		{"out_of_range", Direction(42), 0, 0},
		{"negative", Direction(-1), 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := c.dir.Vector()
			if x != c.x || y != c.y {
				t.Fatalf("Vector() = (%d,%d), want (%d,%d)", x, y, c.x, c.y)
			}
			if x < -1 || x > 1 || y < -1 || y > 1 {
				t.Fatalf("component outside {-1,0,1}: (%d,%d)", x, y)
			}
		})
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for d := N; d <= NW; d++ {
		x, y := d.Vector()
		if got := DirectionFromVector(x, y); got != d {
			t.Fatalf("DirectionFromVector(%d,%d) = %v, want %v", x, y, got, d)
		}
	}
	if got := DirectionFromVector(0, 0); got != Centre {
		t.Fatalf("DirectionFromVector(0,0) = %v, want Centre", got)
	}
}

func TestDirectionFromAxes(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want Direction
	}{
		{"dead_centre", 0, 0, Centre},
		{"inside_deadzone", 0.29, -0.29, Centre},
		{"exactly_threshold", 0.3, 0.3, Centre},
		{"right", 0.31, 0, E},
		{"left", -1, 0, W},
		{"up", 0, -1, N},
		{"down_right", 0.8, 0.8, SE},
		{"up_left", -0.5, -0.5, NW},
		{"mixed_deadzone_y", 1, 0.2, E},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DirectionFromAxes(c.x, c.y); got != c.want {
				t.Fatalf("DirectionFromAxes(%g,%g) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want Direction
	}{
		{"n", N}, {"ne", NE}, {"e", E}, {"se", SE},
		{"s", S}, {"sw", SW}, {"w", W}, {"nw", NW},
		{"centre", Centre}, {"", Centre}, {"bogus", Centre},
	}
	for _, c := range cases {
		if got := ParseDirection(c.in); got != c.want {
			t.Fatalf("ParseDirection(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateWalking, "walk"},
		{StateDashing, "dash"},
		{StateRunning, "run"},
		{StateJumping, "jump"},
		{State(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Fatalf("State(%d).String() = %q, want %q", int(c.s), got, c.want)
		}
	}
}
