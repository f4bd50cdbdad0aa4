package domain

// Volume - упорядоченный набор клеток, область действия эффекта.
// После создания не меняется.
type Volume struct {
	points []Location
}

// PointVolume - одна клетка.
func PointVolume(l Location) Volume {
	return Volume{points: []Location{l}}
}

// SphereVolume - все клетки не дальше radius от center.
// Порядок: центр, затем кольца от ближнего к дальнему. Каждое кольцо
// начинается с center + SouthWest*r и обходится в порядке Directions.
func SphereVolume(center Location, radius int) Volume {
	if radius < 0 {
		return Volume{}
	}
	points := make([]Location, 0, 1+3*radius*(radius+1))
	points = append(points, center)

	for r := 1; r <= radius; r++ {
		l := center.Step(SouthWest, r)
		for _, d := range Directions {
			for i := 0; i < r; i++ {
				points = append(points, l)
				l = l.Step(d, 1)
			}
		}
	}
	return Volume{points: points}
}

// Points возвращает копию списка клеток.
func (v Volume) Points() []Location {
	out := make([]Location, len(v.points))
	copy(out, v.points)
	return out
}

func (v Volume) Len() int {
	return len(v.points)
}
