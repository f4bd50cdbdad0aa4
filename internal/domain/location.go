package domain

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Location - клетка гексагональной карты в осевых координатах.
// Z == 0 - поверхность, Z > 0 - глубина подземелья.
type Location struct {
	X int16 `json:"x" cbor:"1,keyasint"`
	Y int16 `json:"y" cbor:"2,keyasint"`
	Z int8  `json:"z" cbor:"3,keyasint"`
}

func Loc(x, y int, z int8) Location {
	return Location{X: int16(x), Y: int16(y), Z: z}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d,%d)", l.X, l.Y, l.Z)
}

// IsOverland - поверхность мира.
func (l Location) IsOverland() bool {
	return l.Z == 0
}

// Step сдвигает клетку на n шагов в направлении dir.
func (l Location) Step(dir Dir6, n int) Location {
	v := dir.Vec()
	return Location{
		X: l.X + int16(v[0]*n),
		Y: l.Y + int16(v[1]*n),
		Z: l.Z,
	}
}

// Distance - гексагональное расстояние в шагах.
// Клетки разных уровней недостижимы друг для друга.
func (l Location) Distance(other Location) int {
	if l.Z != other.Z {
		return math.MaxInt
	}
	dx := int(other.X) - int(l.X)
	dy := int(other.Y) - int(l.Y)

	if (dx >= 0) == (dy >= 0) {
		return max(abs(dx), abs(dy))
	}
	return abs(dx) + abs(dy)
}

// IsAdjacent - соседние клетки на одном уровне.
func (l Location) IsAdjacent(other Location) bool {
	return l.Distance(other) == 1
}

// Neighbors возвращает шесть соседей в порядке Directions.
func (l Location) Neighbors() [6]Location {
	var out [6]Location
	for i, d := range Directions {
		out[i] = l.Step(d, 1)
	}
	return out
}

// Compare задаёт детерминированный порядок клеток: Z, затем Y, затем X.
func (l Location) Compare(other Location) int {
	if c := cmp.Compare(l.Z, other.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(l.Y, other.Y); c != 0 {
		return c
	}
	return cmp.Compare(l.X, other.X)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LocationSet - множество клеток.
type LocationSet map[Location]struct{}

func (s LocationSet) Add(l Location) {
	s[l] = struct{}{}
}

func (s LocationSet) Has(l Location) bool {
	_, ok := s[l]
	return ok
}

// Sorted возвращает клетки в порядке Location.Compare.
func (s LocationSet) Sorted() []Location {
	out := make([]Location, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	slices.SortFunc(out, Location.Compare)
	return out
}

// SetOf собирает множество из списка клеток.
func SetOf(locs []Location) LocationSet {
	s := make(LocationSet, len(locs))
	for _, l := range locs {
		s.Add(l)
	}
	return s
}
