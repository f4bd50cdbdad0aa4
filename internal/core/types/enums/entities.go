package enums

import "strings"

// EntityKind кодируется в EntityID и служит подсказкой для логов и клиента.
// Возможности сущности определяются только её компонентами.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMob
	KindItem
	KindFx
)

var entityKindToString = map[EntityKind]string{
	KindPlayer: "PLAYER",
	KindMob:    "MOB",
	KindItem:   "ITEM",
	KindFx:     "FX",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER": KindPlayer,
	"MOB":    KindMob,
	"ITEM":   KindItem,
	"FX":     KindFx,
}

func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind нужен при загрузке форм из YAML.
func ParseEntityKind(s string) EntityKind {
	if val, ok := entityKindStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return KindUnknown
}
