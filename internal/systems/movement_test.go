package systems

import (
	"testing"

	"github.com/bisarnacki/magog/internal/domain"
)

func TestCalculateStep(t *testing.T) {
	origin := domain.Loc(0, 0, 1)
	field := newTestField()
	field.walls.Add(origin.Step(domain.North, 1))
	mob := field.addMob(origin.Step(domain.South, 1), 1)

	t.Run("free cell", func(t *testing.T) {
		res := CalculateStep(field, origin, domain.SouthEast)
		if !res.HasMoved || res.To != origin.Step(domain.SouthEast, 1) {
			t.Errorf("res = %+v", res)
		}
	})

	t.Run("wall", func(t *testing.T) {
		res := CalculateStep(field, origin, domain.North)
		if res.HasMoved || !res.IsWall {
			t.Errorf("res = %+v", res)
		}
	})

	t.Run("mob", func(t *testing.T) {
		res := CalculateStep(field, origin, domain.South)
		if res.HasMoved || res.BlockedBy != mob {
			t.Errorf("res = %+v", res)
		}
	})
}

func TestAggregateStats(t *testing.T) {
	base := domain.Stats{Power: 2}
	items := []EquippedItem{
		{Slot: 0, Item: domain.Item{Bonus: domain.Stats{Power: 3}}},
		{Slot: 3, Item: domain.Item{Bonus: domain.Stats{Armor: 2}}},
		{Slot: 6, Item: domain.Item{Bonus: domain.Stats{Armor: 50}}},
	}

	got := AggregateStats(base, items)
	if got.Power != 5 || got.Armor != 2 {
		t.Errorf("AggregateStats() = %+v, bag item must not count", got)
	}
}
