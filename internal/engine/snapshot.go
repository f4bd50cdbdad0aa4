package engine

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/ecs"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/internal/spatial"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Row - компонент одной сущности в снимке.
type Row[T any] struct {
	E types.EntityID `cbor:"1,keyasint"`
	V T              `cbor:"2,keyasint"`
}

// MemoryRow - память карты. Seen не сохраняется, после загрузки
// обзор считается заново.
type MemoryRow struct {
	E          types.EntityID    `cbor:"1,keyasint"`
	Remembered []domain.Location `cbor:"2,keyasint"`
}

// Snapshot - полное сохраняемое состояние мира. Часы анимации
// не сохраняются: после загрузки они начинаются с нуля.
type Snapshot struct {
	Seed          uint64 `cbor:"1,keyasint"`
	Shard         uint8  `cbor:"2,keyasint"`
	SpawnInterval uint64 `cbor:"3,keyasint"`
	Tick          uint64 `cbor:"4,keyasint"`
	RNG           []byte `cbor:"5,keyasint"`

	Player   types.EntityID    `cbor:"6,keyasint"`
	Registry ecs.RegistryState `cbor:"7,keyasint"`

	Terrain    []TerrainCell       `cbor:"8,keyasint"`
	Placements []spatial.Placement `cbor:"9,keyasint"`
	Equipments []spatial.Equipment `cbor:"10,keyasint"`

	Desc      []Row[domain.Desc]     `cbor:"11,keyasint"`
	BaseStats []Row[domain.Stats]    `cbor:"12,keyasint"`
	Stats     []Row[domain.Stats]    `cbor:"13,keyasint"`
	Health    []Row[domain.Health]   `cbor:"14,keyasint"`
	Brain     []Row[domain.Brain]    `cbor:"15,keyasint"`
	Anim      []Row[domain.Anim]     `cbor:"16,keyasint"`
	Statuses  []Row[domain.Statuses] `cbor:"17,keyasint"`
	Item      []Row[domain.Item]     `cbor:"18,keyasint"`
	Innate    []Row[domain.Innate]   `cbor:"19,keyasint"`
	MapMemory []MemoryRow            `cbor:"20,keyasint"`
}

func rows[T any](w *World, store *ecs.Store[T]) []Row[T] {
	var out []Row[T]
	for _, e := range w.registry.Entities() {
		if v, ok := store.Get(e); ok {
			out = append(out, Row[T]{E: e, V: v})
		}
	}
	return out
}

// Snapshot снимает состояние мира. Порядок всех списков детерминирован,
// поэтому одинаковые миры дают одинаковые снимки.
func (w *World) Snapshot() (*Snapshot, error) {
	rngState, err := w.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rng: %w", err)
	}

	s := &Snapshot{
		Seed:          w.cfg.Seed,
		Shard:         w.cfg.ShardId,
		SpawnInterval: w.cfg.SpawnInterval,
		Tick:          w.tick,
		RNG:           rngState,
		Player:        w.player,
		Registry:      w.registry.State(),
		Terrain:       w.terrain.Cells(),
		Placements:    w.spatial.Placements(),
		Equipments:    w.spatial.Equipments(),
		Desc:          rows(w, w.desc),
		BaseStats:     rows(w, w.baseStats),
		Stats:         rows(w, w.stats),
		Health:        rows(w, w.health),
		Brain:         rows(w, w.brain),
		Anim:          rows(w, w.anim),
		Statuses:      rows(w, w.statuses),
		Item:          rows(w, w.item),
		Innate:        rows(w, w.innate),
	}
	detach(s)
	for _, e := range w.registry.Entities() {
		if m, ok := w.mapMemory.Get(e); ok {
			s.MapMemory = append(s.MapMemory, MemoryRow{E: e, Remembered: m.Remembered.Sorted()})
		}
	}
	return s, nil
}

// detach копирует изменяемые значения, чтобы снимок не делил память с миром.
func detach(s *Snapshot) {
	for i := range s.Statuses {
		s.Statuses[i].V = maps.Clone(s.Statuses[i].V)
	}
	for i := range s.Item {
		s.Item[i].V.Abilities = slices.Clone(s.Item[i].V.Abilities)
	}
	for i := range s.Innate {
		s.Innate[i].V.Abilities = slices.Clone(s.Innate[i].V.Abilities)
	}
}

func restoreRows[T any](w *World, name string, store *ecs.Store[T], in []Row[T]) error {
	for _, r := range in {
		if !w.registry.IsAlive(r.E) {
			return fmt.Errorf("%s: row for unknown entity %s", name, r.E)
		}
		store.Insert(r.E, r.V)
	}
	return nil
}

// restoreSpatial раскладывает сущности по карте и ячейкам. Каждая сущность
// должна оказаться ровно в одном месте, ячейка - занята не больше одного раза.
func restoreSpatial(w *World, placements []spatial.Placement, equipments []spatial.Equipment) error {
	for _, p := range placements {
		if !w.registry.IsAlive(p.Entity) {
			return fmt.Errorf("placement of unknown entity %s", p.Entity)
		}
		if w.spatial.IsPlaced(p.Entity) {
			return fmt.Errorf("entity %s placed twice", p.Entity)
		}
		w.spatial.Place(p.Entity, p.Loc)
	}
	for _, eq := range equipments {
		if !w.registry.IsAlive(eq.Entity) || !w.registry.IsAlive(eq.Parent) {
			return fmt.Errorf("equipment %s in %s: unknown entity", eq.Entity, eq.Parent)
		}
		if eq.Slot >= enums.SlotCount {
			return fmt.Errorf("equipment %s in %s: invalid slot %d", eq.Entity, eq.Parent, eq.Slot)
		}
		if prev, taken := w.spatial.EntityEquipped(eq.Parent, eq.Slot); taken {
			return fmt.Errorf("equipment %s in %s: slot %s already holds %s", eq.Entity, eq.Parent, eq.Slot, prev)
		}
		if _, _, held := w.spatial.Parent(eq.Entity); held {
			return fmt.Errorf("equipment %s: entity held twice", eq.Entity)
		}
		if w.spatial.IsPlaced(eq.Entity) {
			return fmt.Errorf("equipment %s: entity is also placed on the map", eq.Entity)
		}
		if !w.spatial.CanHold(eq.Parent, eq.Entity) {
			return fmt.Errorf("equipment %s in %s: containment cycle", eq.Entity, eq.Parent)
		}
		w.spatial.Equip(eq.Entity, eq.Parent, eq.Slot)
	}
	return nil
}

// Restore собирает мир из снимка. Формы нужны для будущих спавнов.
func Restore(snap *Snapshot, reg *forms.Registry) (*World, error) {
	s := *snap
	s.Statuses = slices.Clone(snap.Statuses)
	s.Item = slices.Clone(snap.Item)
	s.Innate = slices.Clone(snap.Innate)
	detach(&s)

	cfg := Config{Seed: s.Seed, ShardId: s.Shard, SpawnInterval: s.SpawnInterval}
	w := newEmptyWorld(cfg, reg)
	w.tick = s.Tick

	w.pcg = new(rand.PCG)
	if err := w.pcg.UnmarshalBinary(s.RNG); err != nil {
		return nil, fmt.Errorf("failed to restore rng: %w", err)
	}
	w.rng = rand.New(w.pcg)

	if err := w.registry.Restore(s.Registry); err != nil {
		return nil, fmt.Errorf("failed to restore registry: %w", err)
	}

	for _, err := range []error{
		restoreRows(w, "desc", w.desc, s.Desc),
		restoreRows(w, "base_stats", w.baseStats, s.BaseStats),
		restoreRows(w, "stats", w.stats, s.Stats),
		restoreRows(w, "health", w.health, s.Health),
		restoreRows(w, "brain", w.brain, s.Brain),
		restoreRows(w, "anim", w.anim, s.Anim),
		restoreRows(w, "statuses", w.statuses, s.Statuses),
		restoreRows(w, "item", w.item, s.Item),
		restoreRows(w, "innate", w.innate, s.Innate),
	} {
		if err != nil {
			return nil, err
		}
	}

	for _, m := range s.MapMemory {
		if !w.registry.IsAlive(m.E) {
			return nil, fmt.Errorf("map_memory: row for unknown entity %s", m.E)
		}
		memory := domain.NewMapMemory()
		memory.Remembered = domain.SetOf(m.Remembered)
		w.mapMemory.Insert(m.E, memory)
	}

	// Часы анимации начинаются заново.
	w.anim.Each(func(_ types.EntityID, a *domain.Anim) {
		if a.State.IsOneShot() {
			a.State = domain.AnimMob
		}
		a.AnimStart = 0
		a.TweenStart = 0
	})
	w.statuses.Each(func(_ types.EntityID, st *domain.Statuses) {
		if *st == nil {
			*st = domain.Statuses{}
		}
	})

	for _, t := range s.Terrain {
		w.terrain.Paint(t.Loc, t.Terrain)
	}
	if err := restoreSpatial(w, s.Placements, s.Equipments); err != nil {
		return nil, err
	}

	if !s.Player.IsNil() {
		if !w.registry.IsAlive(s.Player) || !w.brain.Has(s.Player) {
			return nil, fmt.Errorf("player %s is not a live mob", s.Player)
		}
		w.player = s.Player
	}

	for _, e := range w.registry.Entities() {
		w.schedule(e)
	}
	if player, ok := w.Player(); ok {
		w.DoFov(player)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"tick":      w.tick,
		"entities":  w.registry.Count(),
	}).Info("World restored")
	return w, nil
}
