package domain

import "strings"

// Dir6 - одно из шести направлений гекса.
type Dir6 uint8

const (
	North Dir6 = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// Directions - все направления по часовой стрелке, начиная с севера.
var Directions = [6]Dir6{North, NorthEast, SouthEast, South, SouthWest, NorthWest}

var dirVectors = [6][2]int{
	{-1, -1},
	{0, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 0},
}

var dirToString = map[Dir6]string{
	North:     "N",
	NorthEast: "NE",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	NorthWest: "NW",
}

// Vec возвращает смещение (dx, dy) на одну клетку.
func (d Dir6) Vec() [2]int {
	return dirVectors[d%6]
}

// Rotate поворачивает направление на n шестых оборота по часовой стрелке.
func (d Dir6) Rotate(n int) Dir6 {
	return Dir6(((int(d)+n)%6 + 6) % 6)
}

func (d Dir6) String() string {
	if val, ok := dirToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseDir6 разбирает "N", "NE", ... без учёта регистра.
func ParseDir6(s string) (Dir6, bool) {
	upper := strings.ToUpper(s)
	for d, name := range dirToString {
		if name == upper {
			return d, true
		}
	}
	return 0, false
}

// DirTowards возвращает направление, шаг по которому сильнее всего
// сокращает расстояние до цели. При равенстве побеждает меньшее направление.
func DirTowards(from, to Location) Dir6 {
	best := North
	bestDist := -1
	for _, d := range Directions {
		dist := from.Step(d, 1).Distance(to)
		if bestDist < 0 || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
