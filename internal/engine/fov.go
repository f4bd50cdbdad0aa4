package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/systems"
)

// FovStatus - видимость клетки для игрока.
type FovStatus uint8

const (
	FovNone FovStatus = iota
	FovRemembered
	FovSeen
)

func (s FovStatus) String() string {
	switch s {
	case FovSeen:
		return "SEEN"
	case FovRemembered:
		return "REMEMBERED"
	}
	return "NONE"
}

func (s FovStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Минимальная освещённость на границе обзора под землёй.
const minLight = 0.35

// FovFrom - клетки, видимые из origin на расстоянии до rng.
func (w *World) FovFrom(origin domain.Location, rng int) domain.LocationSet {
	return systems.ComputeFov(w.terrain, origin, rng)
}

// FovRange - дальность обзора из клетки.
func FovRange(origin domain.Location) int {
	if origin.IsOverland() {
		return domain.SectorWidth
	}
	return domain.FovRangeUnderground
}

// DoFov пересчитывает обзор сущности в её память карты.
// Сущности без MapMemory пропускаются.
func (w *World) DoFov(e types.EntityID) {
	memory := w.mapMemory.Ptr(e)
	if memory == nil {
		return
	}
	origin, ok := w.spatial.Location(e)
	if !ok {
		return
	}

	fov := w.FovFrom(origin, FovRange(origin))

	clear(memory.Seen)
	for loc := range fov {
		memory.Seen.Add(loc)
		memory.Remembered.Add(loc)
	}
}

// FovStatus - видит ли игрок клетку. Без игрока видно всё.
func (w *World) FovStatus(loc domain.Location) FovStatus {
	player, ok := w.Player()
	if !ok {
		return FovSeen
	}
	memory, ok := w.mapMemory.Get(player)
	if !ok {
		return FovSeen
	}
	switch {
	case memory.Seen.Has(loc):
		return FovSeen
	case memory.Remembered.Has(loc):
		return FovRemembered
	}
	return FovNone
}

// Light - освещённость клетки от 0 до 1. На поверхности светло везде,
// под землёй свет убывает от игрока к границе обзора.
func (w *World) Light(loc domain.Location) float32 {
	if loc.IsOverland() {
		return 1
	}
	player, ok := w.Player()
	if !ok {
		return 1
	}
	origin, ok := w.spatial.Location(player)
	if !ok || origin.Z != loc.Z {
		return minLight
	}
	d := origin.Distance(loc)
	if d >= domain.FovRangeUnderground {
		return minLight
	}
	return 1 - (1-minLight)*float32(d)/domain.FovRangeUnderground
}
