package domain

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
)

// Desc - описание сущности для клиента и сообщений.
type Desc struct {
	Name  string      `json:"name" cbor:"1,keyasint"`
	Glyph types.Glyph `json:"glyph" cbor:"2,keyasint"`
	// Form - имя формы из реестра, по которой создана сущность.
	Form string `json:"form,omitempty" cbor:"3,keyasint,omitempty"`
}

// Stats - боевые параметры. Одна и та же структура хранит базовые
// значения сущности, бонусы предмета и итоговую сумму.
type Stats struct {
	Power      int32     `json:"power" cbor:"1,keyasint"`
	Armor      int32     `json:"armor" cbor:"2,keyasint"`
	Intrinsics Intrinsic `json:"intrinsics" cbor:"3,keyasint"`
}

// Add возвращает сумму параметров. Свойства объединяются.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Power:      s.Power + other.Power,
		Armor:      s.Armor + other.Armor,
		Intrinsics: s.Intrinsics | other.Intrinsics,
	}
}

// Health - здоровье. Сущность с HP <= 0 считается мёртвой.
type Health struct {
	HP    int32 `json:"hp" cbor:"1,keyasint"`
	MaxHP int32 `json:"maxHp" cbor:"2,keyasint"`
}

// Brain - управляемая сущность: игрок или ИИ.
type Brain struct {
	State          enums.BrainState `json:"state" cbor:"1,keyasint"`
	NextActionTick uint64           `json:"nextActionTick" cbor:"2,keyasint"`
	// IdleTurns - сколько ходов подряд сущность ждала.
	IdleTurns uint32 `json:"idleTurns" cbor:"3,keyasint"`
}

// MapMemory - что сущность видит сейчас и что видела когда-либо.
type MapMemory struct {
	Seen       LocationSet `json:"-" cbor:"-"`
	Remembered LocationSet `json:"-" cbor:"-"`
}

func NewMapMemory() MapMemory {
	return MapMemory{
		Seen:       make(LocationSet),
		Remembered: make(LocationSet),
	}
}

// Anim - состояние анимации. DoneWorldTick задан только у эффектов.
type Anim struct {
	State         AnimState `json:"state" cbor:"1,keyasint"`
	AnimStart     uint64    `json:"animStart" cbor:"2,keyasint"`
	DoneWorldTick uint64    `json:"doneWorldTick,omitempty" cbor:"3,keyasint"`
	HasDoneTick   bool      `json:"-" cbor:"4,keyasint"`

	TweenFrom     Location `json:"tweenFrom" cbor:"5,keyasint"`
	TweenStart    uint64   `json:"tweenStart" cbor:"6,keyasint"`
	TweenDuration uint32   `json:"tweenDuration" cbor:"7,keyasint"`
}

// Item - предмет. Charges расходуются способностями.
type Item struct {
	Abilities []Ability  `json:"abilities,omitempty" cbor:"1,keyasint"`
	Charges   int32      `json:"charges" cbor:"2,keyasint"`
	Bonus     Stats      `json:"bonus" cbor:"3,keyasint"`
	Slot      enums.Slot `json:"slot" cbor:"4,keyasint"`
}

// HasAbility - предмет даёт способность и у него остались заряды.
func (it Item) HasAbility(a Ability) bool {
	if it.Charges <= 0 {
		return false
	}
	for _, have := range it.Abilities {
		if have == a {
			return true
		}
	}
	return false
}

// Innate - врождённые способности, не требующие предмета.
type Innate struct {
	Abilities []Ability `json:"abilities" cbor:"1,keyasint"`
}

func (in Innate) Has(a Ability) bool {
	for _, have := range in.Abilities {
		if have == a {
			return true
		}
	}
	return false
}
