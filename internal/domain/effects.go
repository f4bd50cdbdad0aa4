package domain

import (
	"fmt"
	"strings"
)

// DamageKind - стихия урона.
type DamageKind uint8

const (
	DamagePhysical DamageKind = iota
	DamageFire
	DamageElectricity
	DamageCold
)

var damageKindToString = map[DamageKind]string{
	DamagePhysical:    "PHYSICAL",
	DamageFire:        "FIRE",
	DamageElectricity: "ELECTRICITY",
	DamageCold:        "COLD",
}

func (d DamageKind) String() string {
	if val, ok := damageKindToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Resistance - свойство, ослабляющее урон этой стихии. У физического урона его нет.
func (d DamageKind) Resistance() Intrinsic {
	switch d {
	case DamageFire:
		return IntrinsicResistFire
	case DamageElectricity:
		return IntrinsicResistElectricity
	case DamageCold:
		return IntrinsicResistCold
	}
	return 0
}

// EffectKind - вариант эффекта.
type EffectKind uint8

const (
	EffectHit EffectKind = iota
	EffectConfuse
)

// Effect - данные эффекта без привязки к источнику и цели.
// Amount и Damage имеют смысл только для EffectHit.
type Effect struct {
	Kind   EffectKind
	Amount int32
	Damage DamageKind
}

func Hit(amount int32, damage DamageKind) Effect {
	return Effect{Kind: EffectHit, Amount: amount, Damage: damage}
}

func Confusion() Effect {
	return Effect{Kind: EffectConfuse}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectHit:
		return fmt.Sprintf("Hit{%d, %s}", e.Amount, e.Damage)
	case EffectConfuse:
		return "Confuse"
	}
	return "Unknown"
}

// Ability - способность предмета или существа.
type Ability uint8

const (
	AbilityLightningBolt Ability = iota + 1
	AbilityFireball
	AbilityConfuse
)

var abilityToString = map[Ability]string{
	AbilityLightningBolt: "LIGHTNING_BOLT",
	AbilityFireball:      "FIREBALL",
	AbilityConfuse:       "CONFUSE",
}

// IsTargeted - способности нужно направление.
func (a Ability) IsTargeted() bool {
	switch a {
	case AbilityFireball, AbilityConfuse:
		return true
	}
	return false
}

func (a Ability) String() string {
	if val, ok := abilityToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseAbility(s string) (Ability, bool) {
	upper := strings.ToUpper(s)
	for a, name := range abilityToString {
		if name == upper {
			return a, true
		}
	}
	return 0, false
}

// Intrinsic - битовая маска врождённых свойств.
type Intrinsic uint32

const (
	IntrinsicSlow Intrinsic = 1 << iota
	IntrinsicResistFire
	IntrinsicResistElectricity
	IntrinsicResistCold
)

var intrinsicNames = []struct {
	flag Intrinsic
	name string
}{
	{IntrinsicSlow, "SLOW"},
	{IntrinsicResistFire, "RESIST_FIRE"},
	{IntrinsicResistElectricity, "RESIST_ELECTRICITY"},
	{IntrinsicResistCold, "RESIST_COLD"},
}

func (i Intrinsic) Has(flag Intrinsic) bool {
	return i&flag == flag
}

func ParseIntrinsic(s string) (Intrinsic, bool) {
	upper := strings.ToUpper(s)
	for _, n := range intrinsicNames {
		if n.name == upper {
			return n.flag, true
		}
	}
	return 0, false
}

func (i Intrinsic) String() string {
	var parts []string
	for _, n := range intrinsicNames {
		if i.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
