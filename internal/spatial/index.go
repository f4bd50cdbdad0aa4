package spatial

import (
	"cmp"
	"slices"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// holder - где лежит экипированная сущность.
type holder struct {
	parent types.EntityID
	slot   enums.Slot
}

// Index связывает сущности с клетками карты и ячейками экипировки.
// Сущность находится ровно в одном из трёх состояний: на клетке,
// в ячейке другой сущности или нигде (limbo).
type Index struct {
	locOf map[types.EntityID]domain.Location
	at    map[domain.Location][]types.EntityID

	heldBy map[types.EntityID]holder
	slots  map[holder]types.EntityID
}

func New() *Index {
	return &Index{
		locOf:  make(map[types.EntityID]domain.Location),
		at:     make(map[domain.Location][]types.EntityID),
		heldBy: make(map[types.EntityID]holder),
		slots:  make(map[holder]types.EntityID),
	}
}

// Place ставит сущность в клетку, снимая её с прежнего места.
func (idx *Index) Place(e types.EntityID, loc domain.Location) {
	idx.detach(e)
	idx.locOf[e] = loc
	idx.at[loc] = append(idx.at[loc], e)
}

// Equip кладёт сущность в ячейку parent. Если ячейка была занята, прежнее
// содержимое уходит в limbo и возвращается как displaced.
func (idx *Index) Equip(e, parent types.EntityID, slot enums.Slot) (displaced types.EntityID) {
	if !idx.CanHold(parent, e) {
		logger.Log.WithFields(logrus.Fields{
			"component": "spatial_index",
			"entity_id": e,
			"parent_id": parent,
		}).Panic("Equip would create a containment cycle.")
	}

	key := holder{parent: parent, slot: slot}
	if prev, ok := idx.slots[key]; ok && prev != e {
		idx.detach(prev)
		displaced = prev
	}

	idx.detach(e)
	idx.heldBy[e] = key
	idx.slots[key] = e
	return displaced
}

// Remove отправляет сущность в limbo. Её содержимое тоже уходит в limbo,
// поэтому перед уничтожением носителя содержимое нужно переложить.
func (idx *Index) Remove(e types.EntityID) {
	for _, child := range idx.Contents(e) {
		idx.detach(child)
	}
	idx.detach(e)
}

func (idx *Index) detach(e types.EntityID) {
	if loc, ok := idx.locOf[e]; ok {
		cell := idx.at[loc]
		for i, other := range cell {
			if other == e {
				cell = slices.Delete(cell, i, i+1)
				break
			}
		}
		if len(cell) == 0 {
			delete(idx.at, loc)
		} else {
			idx.at[loc] = cell
		}
		delete(idx.locOf, e)
	}

	if h, ok := idx.heldBy[e]; ok {
		delete(idx.slots, h)
		delete(idx.heldBy, e)
	}
}

// EntitiesAt возвращает сущности в клетке в порядке их появления там.
func (idx *Index) EntitiesAt(loc domain.Location) []types.EntityID {
	return slices.Clone(idx.at[loc])
}

// Location - клетка, в которой стоит сама сущность.
func (idx *Index) Location(e types.EntityID) (domain.Location, bool) {
	loc, ok := idx.locOf[e]
	return loc, ok
}

// Position - клетка сущности или её носителя. Для меча в руке игрока
// это клетка игрока.
func (idx *Index) Position(e types.EntityID) (domain.Location, bool) {
	for {
		if loc, ok := idx.locOf[e]; ok {
			return loc, true
		}
		h, ok := idx.heldBy[e]
		if !ok {
			return domain.Location{}, false
		}
		e = h.parent
	}
}

// Parent возвращает носителя и ячейку.
func (idx *Index) Parent(e types.EntityID) (types.EntityID, enums.Slot, bool) {
	h, ok := idx.heldBy[e]
	return h.parent, h.slot, ok
}

// EntityEquipped возвращает содержимое ячейки.
func (idx *Index) EntityEquipped(parent types.EntityID, slot enums.Slot) (types.EntityID, bool) {
	e, ok := idx.slots[holder{parent: parent, slot: slot}]
	return e, ok
}

// Contents возвращает всё, что держит parent, по порядку ячеек.
func (idx *Index) Contents(parent types.EntityID) []types.EntityID {
	var out []types.EntityID
	for slot := enums.Slot(0); slot < enums.SlotCount; slot++ {
		if e, ok := idx.slots[holder{parent: parent, slot: slot}]; ok {
			out = append(out, e)
		}
	}
	return out
}

// FreeBagSlot - первая пустая ячейка рюкзака.
func (idx *Index) FreeBagSlot(parent types.EntityID) (enums.Slot, bool) {
	for slot := enums.SlotBag0; slot <= enums.SlotBag9; slot++ {
		if _, ok := idx.slots[holder{parent: parent, slot: slot}]; !ok {
			return slot, true
		}
	}
	return 0, false
}

// IsPlaced - сущность стоит на карте.
func (idx *Index) IsPlaced(e types.EntityID) bool {
	_, ok := idx.locOf[e]
	return ok
}

// CanHold - parent может держать e, не образуя цикла вложенности.
func (idx *Index) CanHold(parent, e types.EntityID) bool {
	return e != parent && !idx.isAncestor(e, parent)
}

func (idx *Index) isAncestor(candidate, e types.EntityID) bool {
	for {
		h, ok := idx.heldBy[e]
		if !ok {
			return false
		}
		if h.parent == candidate {
			return true
		}
		e = h.parent
	}
}

// Placement - запись о сущности на карте.
type Placement struct {
	Entity types.EntityID  `cbor:"1,keyasint"`
	Loc    domain.Location `cbor:"2,keyasint"`
}

// Equipment - запись о сущности в ячейке.
type Equipment struct {
	Entity types.EntityID `cbor:"1,keyasint"`
	Parent types.EntityID `cbor:"2,keyasint"`
	Slot   enums.Slot     `cbor:"3,keyasint"`
}

// Placements возвращает все размещения в детерминированном порядке:
// клетки по Location.Compare, внутри клетки - порядок появления.
func (idx *Index) Placements() []Placement {
	locs := make([]domain.Location, 0, len(idx.at))
	for loc := range idx.at {
		locs = append(locs, loc)
	}
	slices.SortFunc(locs, domain.Location.Compare)

	out := make([]Placement, 0, len(idx.locOf))
	for _, loc := range locs {
		for _, e := range idx.at[loc] {
			out = append(out, Placement{Entity: e, Loc: loc})
		}
	}
	return out
}

// Equipments возвращает все ячейки, упорядоченные по носителю и ячейке.
func (idx *Index) Equipments() []Equipment {
	out := make([]Equipment, 0, len(idx.heldBy))
	for e, h := range idx.heldBy {
		out = append(out, Equipment{Entity: e, Parent: h.parent, Slot: h.slot})
	}
	slices.SortFunc(out, func(a, b Equipment) int {
		if c := cmp.Compare(a.Parent, b.Parent); c != 0 {
			return c
		}
		return cmp.Compare(a.Slot, b.Slot)
	})
	return out
}
