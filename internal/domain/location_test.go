package domain

import (
	"math"
	"testing"
)

func TestLocation_Distance(t *testing.T) {
	origin := Loc(0, 0, 1)

	tests := []struct {
		name  string
		other Location
		want  int
	}{
		{"same cell", Loc(0, 0, 1), 0},
		{"north", Loc(-1, -1, 1), 1},
		{"south east", Loc(1, 0, 1), 1},
		{"same sign", Loc(3, 2, 1), 3},
		{"opposite sign", Loc(2, -3, 1), 5},
		{"other level", Loc(0, 0, 2), math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.Distance(tt.other); got != tt.want {
				t.Errorf("Distance(%v) = %d, want %d", tt.other, got, tt.want)
			}
			if tt.want != math.MaxInt {
				if back := tt.other.Distance(origin); back != tt.want {
					t.Errorf("Distance is not symmetric: %d vs %d", back, tt.want)
				}
			}
		})
	}
}

func TestLocation_NeighborsAreAdjacent(t *testing.T) {
	origin := Loc(4, -2, 0)
	seen := make(LocationSet)
	for _, n := range origin.Neighbors() {
		if !origin.IsAdjacent(n) {
			t.Errorf("%v is not adjacent to %v", n, origin)
		}
		seen.Add(n)
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct neighbours, got %d", len(seen))
	}
}

func TestDir6_Rotate(t *testing.T) {
	tests := []struct {
		dir  Dir6
		n    int
		want Dir6
	}{
		{North, 1, NorthEast},
		{NorthWest, 1, North},
		{North, -1, NorthWest},
		{South, 3, North},
		{SouthEast, 12, SouthEast},
	}

	for _, tt := range tests {
		if got := tt.dir.Rotate(tt.n); got != tt.want {
			t.Errorf("%v.Rotate(%d) = %v, want %v", tt.dir, tt.n, got, tt.want)
		}
	}
}

func TestDir6_OppositeVectorsCancel(t *testing.T) {
	origin := Loc(0, 0, 1)
	for _, d := range Directions {
		back := origin.Step(d, 3).Step(d.Rotate(3), 3)
		if back != origin {
			t.Errorf("%v then opposite ended at %v", d, back)
		}
	}
}

func TestDirTowards(t *testing.T) {
	from := Loc(0, 0, 1)
	for _, d := range Directions {
		target := from.Step(d, 5)
		if got := DirTowards(from, target); got != d {
			t.Errorf("DirTowards(%v) = %v, want %v", target, got, d)
		}
	}
}

func TestParseDir6(t *testing.T) {
	if d, ok := ParseDir6("se"); !ok || d != SouthEast {
		t.Errorf("ParseDir6(se) = %v, %v", d, ok)
	}
	if _, ok := ParseDir6("E"); ok {
		t.Error("E is not a hex direction")
	}
}

func TestSphereVolume(t *testing.T) {
	center := Loc(2, 3, 1)

	tests := []struct {
		radius int
		want   int
	}{
		{0, 1},
		{1, 7},
		{2, 19},
		{4, 61},
	}

	for _, tt := range tests {
		v := SphereVolume(center, tt.radius)
		if v.Len() != tt.want {
			t.Errorf("radius %d: Len() = %d, want %d", tt.radius, v.Len(), tt.want)
		}

		unique := SetOf(v.Points())
		if len(unique) != tt.want {
			t.Errorf("radius %d: %d unique points, want %d", tt.radius, len(unique), tt.want)
		}
		for _, p := range v.Points() {
			if d := center.Distance(p); d > tt.radius {
				t.Errorf("radius %d: %v is %d away", tt.radius, p, d)
			}
		}
	}
}

func TestSphereVolume_Order(t *testing.T) {
	center := Loc(0, 0, 1)
	points := SphereVolume(center, 2).Points()

	if points[0] != center {
		t.Fatalf("first point = %v, want center", points[0])
	}
	if points[1] != center.Step(SouthWest, 1) {
		t.Errorf("ring 1 starts at %v", points[1])
	}
	if points[7] != center.Step(SouthWest, 2) {
		t.Errorf("ring 2 starts at %v", points[7])
	}

	prev := 0
	for _, p := range points {
		d := center.Distance(p)
		if d < prev {
			t.Fatalf("rings out of order at %v", p)
		}
		prev = d
	}
}

func TestVolume_PointsIsCopy(t *testing.T) {
	v := PointVolume(Loc(1, 1, 1))
	pts := v.Points()
	pts[0] = Loc(9, 9, 9)
	if v.Points()[0] != Loc(1, 1, 1) {
		t.Error("volume changed through Points()")
	}
}

func TestLocationSet_Sorted(t *testing.T) {
	s := SetOf([]Location{Loc(2, 0, 1), Loc(0, 1, 1), Loc(1, 0, 1), Loc(5, 5, 0)})
	got := s.Sorted()
	want := []Location{Loc(5, 5, 0), Loc(1, 0, 1), Loc(2, 0, 1), Loc(0, 1, 1)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", got, want)
		}
	}
}
