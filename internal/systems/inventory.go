package systems

import (
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
)

// EquippedItem - предмет в ячейке.
type EquippedItem struct {
	Slot enums.Slot
	Item domain.Item
}

// AggregateStats складывает базовые параметры с бонусами надетых
// предметов. Содержимое рюкзака бонусов не даёт.
func AggregateStats(base domain.Stats, items []EquippedItem) domain.Stats {
	total := base
	for _, it := range items {
		if it.Slot.IsBag() {
			continue
		}
		total = total.Add(it.Item.Bonus)
	}
	return total
}

// EquipSlotFor - ячейка, в которую предмет надевается. Предметы без своей
// ячейки экипировки отправляются в рюкзак.
func EquipSlotFor(item domain.Item) (enums.Slot, bool) {
	if item.Slot.IsBag() {
		return 0, false
	}
	return item.Slot, true
}
