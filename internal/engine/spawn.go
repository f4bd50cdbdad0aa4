package engine

import (
	"slices"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/internal/systems"
	"github.com/sirupsen/logrus"
)

// Spawn создаёт сущность по форме и ставит её в клетку.
func (w *World) Spawn(form *forms.Form, loc domain.Location) types.EntityID {
	e := w.inject(form)
	w.spatial.Place(e, loc)
	w.schedule(e)

	w.log("spawner").WithFields(logrus.Fields{
		"entity_id": e,
		"form":      form.Name,
		"loc":       loc,
	}).Debug("Entity spawned")
	return e
}

// SpawnNamed - Spawn по имени формы.
func (w *World) SpawnNamed(name string, loc domain.Location) (types.EntityID, bool) {
	form, ok := w.forms.Named(name)
	if !ok {
		return types.NilEntityID, false
	}
	return w.Spawn(form, loc), true
}

// SpawnPlayer ставит игрока в стартовую клетку.
// Если игрок уже стоит на карте, ничего не происходит. Если игрок есть,
// но находится вне карты, он переносится в loc. Иначе игрок создаётся.
func (w *World) SpawnPlayer(loc domain.Location, form *forms.Form) types.EntityID {
	if player, ok := w.Player(); ok {
		if !w.spatial.IsPlaced(player) {
			w.spatial.Place(player, loc)
			w.DoFov(player)
		}
		return player
	}

	player := w.inject(form)
	w.brain.Insert(player, domain.Brain{State: enums.BrainPlayer, NextActionTick: w.tick})
	if !w.mapMemory.Has(player) {
		w.mapMemory.Insert(player, domain.NewMapMemory())
	}
	w.player = player
	w.spatial.Place(player, loc)
	w.DoFov(player)

	w.log("spawner").WithFields(logrus.Fields{
		"entity_id": player,
		"loc":       loc,
	}).Info("Player spawned")
	return player
}

// inject создаёт сущность со всеми компонентами формы, без места на карте.
func (w *World) inject(form *forms.Form) types.EntityID {
	e := w.registry.Make(form.Kind)

	w.desc.Insert(e, form.Desc)

	if form.HasBrain || form.MaxHP > 0 {
		w.baseStats.Insert(e, form.Stats)
		w.stats.Insert(e, form.Stats)
		w.statuses.Insert(e, domain.Statuses{})
	}
	if form.MaxHP > 0 {
		w.health.Insert(e, domain.Health{HP: form.MaxHP, MaxHP: form.MaxHP})
	}
	if form.HasBrain {
		w.brain.Insert(e, domain.Brain{State: form.Brain, NextActionTick: w.tick})
		w.anim.Insert(e, domain.Anim{State: domain.AnimMob, AnimStart: w.animTick})
	}
	if form.MapMemory {
		w.mapMemory.Insert(e, domain.NewMapMemory())
	}
	if form.Item != nil {
		item := *form.Item
		item.Abilities = slices.Clone(form.Item.Abilities)
		w.item.Insert(e, item)
	}
	if len(form.Innate) > 0 {
		w.innate.Insert(e, domain.Innate{Abilities: slices.Clone(form.Innate)})
	}

	for _, name := range form.Loadout {
		itemForm, ok := w.forms.Named(name)
		if !ok {
			continue
		}
		if item := w.inject(itemForm); !w.giveItem(e, item) {
			w.removeEntity(item)
		}
	}
	return e
}

// giveItem надевает предмет в его ячейку, если она свободна, иначе кладёт в рюкзак.
// Возвращает false, если места нет.
func (w *World) giveItem(holder, item types.EntityID) bool {
	it, _ := w.item.Get(item)
	if slot, ok := systems.EquipSlotFor(it); ok {
		if _, busy := w.spatial.EntityEquipped(holder, slot); !busy {
			w.EquipItem(item, holder, slot)
			return true
		}
	}
	slot, ok := w.spatial.FreeBagSlot(holder)
	if !ok {
		return false
	}
	w.EquipItem(item, holder, slot)
	return true
}

// schedule ставит ИИ-моба в очередь ходов.
func (w *World) schedule(e types.EntityID) {
	b, ok := w.brain.Get(e)
	if !ok || b.IsPlayer() {
		return
	}
	w.turns.AddEntity(e, b.NextActionTick)
}

// removeEntity уничтожает сущность вместе со всем, что она держит.
func (w *World) removeEntity(e types.EntityID) {
	for _, child := range w.spatial.Contents(e) {
		w.removeEntity(child)
	}
	w.turns.RemoveEntity(e)
	w.spatial.Remove(e)
	w.registry.Remove(e)
	if e == w.player {
		w.player = types.NilEntityID
	}
}
