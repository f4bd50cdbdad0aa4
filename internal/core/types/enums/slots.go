package enums

import (
	"fmt"
	"strings"
)

// Slot - ячейка, в которой одна сущность держит другую.
// Порядок значений задаёт порядок содержимого инвентаря.
type Slot uint8

const (
	SlotMelee Slot = iota
	SlotRanged
	SlotHead
	SlotBody
	SlotFeet
	SlotTrinket
	SlotBag0
	SlotBag1
	SlotBag2
	SlotBag3
	SlotBag4
	SlotBag5
	SlotBag6
	SlotBag7
	SlotBag8
	SlotBag9

	SlotCount
)

var slotToString = map[Slot]string{
	SlotMelee:   "MELEE",
	SlotRanged:  "RANGED",
	SlotHead:    "HEAD",
	SlotBody:    "BODY",
	SlotFeet:    "FEET",
	SlotTrinket: "TRINKET",
}

// IsBag - рюкзак. Предметы в рюкзаке не дают бонусов.
func (s Slot) IsBag() bool {
	return s >= SlotBag0 && s <= SlotBag9
}

func (s Slot) String() string {
	if val, ok := slotToString[s]; ok {
		return val
	}
	if s.IsBag() {
		return fmt.Sprintf("BAG%d", s-SlotBag0)
	}
	return "UNKNOWN"
}

// ParseSlot разбирает имя ячейки экипировки. Рюкзак задаётся как BAG0..BAG9.
func ParseSlot(s string) (Slot, bool) {
	upper := strings.ToUpper(s)
	for slot, name := range slotToString {
		if name == upper {
			return slot, true
		}
	}
	var n int
	if _, err := fmt.Sscanf(upper, "BAG%d", &n); err == nil && n >= 0 && n <= 9 {
		return SlotBag0 + Slot(n), true
	}
	return 0, false
}
