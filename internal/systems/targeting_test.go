package systems

import (
	"testing"

	"github.com/bisarnacki/magog/internal/domain"
)

func TestProjectedExplosionCenter(t *testing.T) {
	origin := domain.Loc(0, 0, 1)

	t.Run("full range", func(t *testing.T) {
		got := ProjectedExplosionCenter(newTestField(), origin, domain.SouthEast, 9)
		if got != origin.Step(domain.SouthEast, 9) {
			t.Errorf("center = %v", got)
		}
	})

	t.Run("stops before a wall", func(t *testing.T) {
		field := newTestField()
		field.walls.Add(origin.Step(domain.SouthEast, 4))
		got := ProjectedExplosionCenter(field, origin, domain.SouthEast, 9)
		if got != origin.Step(domain.SouthEast, 3) {
			t.Errorf("center = %v", got)
		}
	})

	t.Run("stops at a mob", func(t *testing.T) {
		field := newTestField()
		field.addMob(origin.Step(domain.SouthEast, 2), 1)
		got := ProjectedExplosionCenter(field, origin, domain.SouthEast, 9)
		if got != origin.Step(domain.SouthEast, 2) {
			t.Errorf("center = %v", got)
		}
	})

	t.Run("wall next to the caster", func(t *testing.T) {
		field := newTestField()
		field.walls.Add(origin.Step(domain.SouthEast, 1))
		if got := ProjectedExplosionCenter(field, origin, domain.SouthEast, 9); got != origin {
			t.Errorf("center = %v, want origin", got)
		}
	})
}

func TestNearest(t *testing.T) {
	origin := domain.Loc(0, 0, 1)
	field := newTestField()
	far := Candidate{ID: field.addMob(domain.Loc(3, 3, 1), 1), Loc: domain.Loc(3, 3, 1)}
	a := Candidate{ID: field.addMob(domain.Loc(1, 0, 1), 2), Loc: domain.Loc(1, 0, 1)}
	b := Candidate{ID: field.addMob(domain.Loc(0, 1, 1), 3), Loc: domain.Loc(0, 1, 1)}

	got := Nearest(origin, []Candidate{far, a, b})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Nearest() = %v", got)
	}
	if Nearest(origin, nil) != nil {
		t.Error("no candidates should give nil")
	}
}
