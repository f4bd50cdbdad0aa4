package systems

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
)

// ProjectedExplosionCenter ведёт снаряд из origin в направлении dir.
// Снаряд останавливается в клетке перед непроходимой для выстрела
// местностью, в клетке с мобом или на дальности rng.
func ProjectedExplosionCenter(field Field, origin domain.Location, dir domain.Dir6, rng int) domain.Location {
	center := origin
	for i := 1; i <= rng; i++ {
		next := origin.Step(dir, i)
		if field.Terrain(next).BlocksShot() {
			return center
		}
		center = next
		if _, ok := field.MobAt(next); ok {
			return center
		}
	}
	return center
}

// Candidate - моб, которого можно выбрать целью.
type Candidate struct {
	ID  types.EntityID
	Loc domain.Location
}

// Nearest возвращает ближайших к origin кандидатов. Если ближайших
// несколько, возвращаются все, в исходном порядке.
func Nearest(origin domain.Location, candidates []Candidate) []Candidate {
	var out []Candidate
	best := -1
	for _, c := range candidates {
		d := origin.Distance(c.Loc)
		switch {
		case best < 0 || d < best:
			best = d
			out = append(out[:0], c)
		case d == best:
			out = append(out, c)
		}
	}
	return out
}
