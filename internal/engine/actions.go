package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/systems"
	"github.com/sirupsen/logrus"
)

// EntityMelee - удар в соседнюю клетку. Пустая клетка даёт Declined,
// вызывающий может превратить удар в шаг.
func (w *World) EntityMelee(e types.EntityID, dir domain.Dir6) domain.Outcome {
	if !w.canAct(e) {
		return domain.CannotAct
	}
	if w.confusedMove(e) {
		return domain.Acted
	}
	return w.reallyMelee(e, dir)
}

// EntityStep - шаг в соседнюю клетку.
func (w *World) EntityStep(e types.EntityID, dir domain.Dir6) domain.Outcome {
	if !w.canAct(e) {
		return domain.CannotAct
	}
	if w.confusedMove(e) {
		return domain.Acted
	}
	return w.reallyStep(e, dir)
}

// Idle - сущность пропускает ход. Каждые RegenInterval ходов ожидания
// подряд восстанавливается 1 HP.
func (w *World) Idle(e types.EntityID) domain.Outcome {
	if !w.canAct(e) {
		return domain.CannotAct
	}
	if b := w.brain.Ptr(e); b != nil {
		b.IdleTurns++
		if b.IdleTurns%domain.RegenInterval == 0 {
			if h := w.health.Ptr(e); h != nil && h.HP < h.MaxHP {
				h.Heal(1)
			}
		}
	}
	w.endTurn(e, true)
	return domain.Acted
}

func (w *World) canAct(e types.EntityID) bool {
	return w.IsAlive(e) && w.spatial.IsPlaced(e)
}

func (w *World) reallyMelee(e types.EntityID, dir domain.Dir6) domain.Outcome {
	loc, _ := w.spatial.Location(e)
	target, ok := w.MobAt(loc.Step(dir, 1))
	if !ok {
		return domain.Declined
	}

	stats, _ := w.stats.Get(e)
	w.setAnim(e, domain.AnimMobBump)
	w.ApplyEffectToEntity(systems.MeleeHit(stats), target, e)
	w.endTurn(e, false)
	return domain.Acted
}

func (w *World) reallyStep(e types.EntityID, dir domain.Dir6) domain.Outcome {
	loc, _ := w.spatial.Location(e)
	res := systems.CalculateStep(w, loc, dir)
	if !res.HasMoved {
		return domain.CannotAct
	}

	w.spatial.Place(e, res.To)
	w.DoFov(e)
	w.endTurn(e, false)
	return domain.Acted
}

// confusedMove: сущность в замешательстве в половине случаев действует
// в случайном направлении. true - ход уже потрачен.
func (w *World) confusedMove(e types.EntityID) bool {
	if !w.HasStatus(e, domain.StatusConfused) || w.rng.IntN(2) == 0 {
		return false
	}
	dir := domain.Directions[w.rng.IntN(len(domain.Directions))]
	w.post(domain.TextMsg("%s шатается.", w.Name(e)))

	loc, _ := w.spatial.Location(e)
	if _, ok := w.MobAt(loc.Step(dir, 1)); ok {
		w.reallyMelee(e, dir)
	} else if w.reallyStep(e, dir) != domain.Acted {
		w.endTurn(e, false)
	}
	return true
}

// endTurn назначает следующий ход. Медленные ходят через ход.
func (w *World) endTurn(e types.EntityID, idle bool) {
	b := w.brain.Ptr(e)
	if b == nil {
		return
	}
	if !idle {
		b.IdleTurns = 0
	}
	delay := uint64(1)
	if st, ok := w.stats.Get(e); ok && st.Intrinsics.Has(domain.IntrinsicSlow) {
		delay = 2
	}
	b.Wait(w.tick, delay)
}

// EquipItem кладёт предмет в ячейку parent и сразу пересчитывает параметры.
// Вытесненный предмет уходит в рюкзак, а если места нет - на землю.
func (w *World) EquipItem(item, parent types.EntityID, slot enums.Slot) {
	prevParent, _, hadParent := w.spatial.Parent(item)

	displaced := w.spatial.Equip(item, parent, slot)
	if !displaced.IsNil() {
		if bag, ok := w.spatial.FreeBagSlot(parent); ok {
			w.spatial.Equip(displaced, parent, bag)
		} else if loc, ok := w.spatial.Position(parent); ok {
			w.spatial.Place(displaced, loc)
		}
	}

	w.RebuildStats(parent)
	if hadParent && prevParent != parent {
		w.RebuildStats(prevParent)
	}
}

// RebuildStats - базовые параметры плюс бонусы надетых предметов.
func (w *World) RebuildStats(e types.EntityID) {
	base, ok := w.baseStats.Get(e)
	if !ok {
		return
	}
	var items []systems.EquippedItem
	for _, child := range w.spatial.Contents(e) {
		it, ok := w.item.Get(child)
		if !ok {
			continue
		}
		_, slot, _ := w.spatial.Parent(child)
		items = append(items, systems.EquippedItem{Slot: slot, Item: it})
	}
	w.stats.Insert(e, systems.AggregateStats(base, items))
}

// PickUp поднимает первый предмет из-под ног в рюкзак.
func (w *World) PickUp(e types.EntityID) domain.Outcome {
	if !w.canAct(e) {
		return domain.CannotAct
	}
	loc, _ := w.spatial.Location(e)

	var item types.EntityID
	for _, x := range w.spatial.EntitiesAt(loc) {
		if w.item.Has(x) {
			item = x
			break
		}
	}
	if item.IsNil() {
		return domain.Declined
	}

	slot, ok := w.spatial.FreeBagSlot(e)
	if !ok {
		w.post(domain.TextMsg("Рюкзак полон."))
		return domain.CannotAct
	}
	w.EquipItem(item, e, slot)
	w.post(domain.TextMsg("%s подбирает: %s.", w.Name(e), w.Name(item)))
	w.endTurn(e, false)
	return domain.Acted
}

// Wield надевает предмет из рюкзака в его ячейку.
func (w *World) Wield(e, item types.EntityID) domain.Outcome {
	if !w.canAct(e) || !w.holds(e, item) {
		return domain.CannotAct
	}
	it, _ := w.item.Get(item)
	slot, ok := systems.EquipSlotFor(it)
	if !ok {
		return domain.CannotAct
	}
	if _, current, _ := w.spatial.Parent(item); current == slot {
		return domain.Declined
	}

	// Сначала освобождаем ячейку рюкзака, чтобы вытесненному было куда лечь.
	w.spatial.Remove(item)
	w.EquipItem(item, e, slot)

	w.log("inventory").WithFields(logrus.Fields{
		"entity_id": e,
		"item_id":   item,
		"slot":      slot,
	}).Debug("Item wielded")
	w.endTurn(e, false)
	return domain.Acted
}
