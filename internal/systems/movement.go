package systems

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
)

// StepResult - результат расчёта шага.
type StepResult struct {
	To        domain.Location
	HasMoved  bool
	BlockedBy types.EntityID // Моб в целевой клетке (повод для атаки)
	IsWall    bool
}

// CalculateStep вычисляет шаг из from в направлении dir. Мир не меняет.
func CalculateStep(field Field, from domain.Location, dir domain.Dir6) StepResult {
	to := from.Step(dir, 1)
	res := StepResult{To: to}

	// 1. Местность
	if field.Terrain(to).BlocksWalk() {
		res.IsWall = true
		return res
	}

	// 2. Мобы. Предметы и эффекты проходимы.
	if mob, ok := field.MobAt(to); ok {
		res.BlockedBy = mob
		return res
	}

	res.HasMoved = true
	return res
}

// CanEnter - в клетку можно шагнуть.
func CanEnter(field Field, loc domain.Location) bool {
	if field.Terrain(loc).BlocksWalk() {
		return false
	}
	_, occupied := field.MobAt(loc)
	return !occupied
}
