package domain

import (
	"fmt"

	"github.com/bisarnacki/magog/internal/core/types"
)

// MsgKind - вид сообщения из мира.
type MsgKind uint8

const (
	MsgText MsgKind = iota
	MsgExplosion
	MsgDamage
	MsgGib
)

var msgKindToString = map[MsgKind]string{
	MsgText:      "TEXT",
	MsgExplosion: "EXPLOSION",
	MsgDamage:    "DAMAGE",
	MsgGib:       "GIB",
}

func (k MsgKind) String() string {
	if val, ok := msgKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (k MsgKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Msg - сообщение для клиента. Заполнено только поле, относящееся к Kind.
type Msg struct {
	Kind   MsgKind        `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Loc    Location       `json:"loc"`
	Entity types.EntityID `json:"entity,omitempty"`
}

func TextMsg(format string, args ...any) Msg {
	return Msg{Kind: MsgText, Text: fmt.Sprintf(format, args...)}
}

func ExplosionMsg(l Location) Msg {
	return Msg{Kind: MsgExplosion, Loc: l}
}

func DamageMsg(e types.EntityID) Msg {
	return Msg{Kind: MsgDamage, Entity: e}
}

func GibMsg(l Location) Msg {
	return Msg{Kind: MsgGib, Loc: l}
}
