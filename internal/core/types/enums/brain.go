package enums

import "strings"

// BrainState - состояние ИИ моба.
type BrainState uint8

const (
	BrainAsleep BrainState = iota
	BrainHunting
	BrainPlayer
)

var brainStateToString = map[BrainState]string{
	BrainAsleep:  "ASLEEP",
	BrainHunting: "HUNTING",
	BrainPlayer:  "PLAYER",
}

var brainStringToState = map[string]BrainState{
	"ASLEEP":  BrainAsleep,
	"HUNTING": BrainHunting,
	"PLAYER":  BrainPlayer,
}

func (s BrainState) String() string {
	if val, ok := brainStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseBrainState возвращает BrainAsleep для неизвестных строк.
func ParseBrainState(s string) BrainState {
	if val, ok := brainStringToState[strings.ToUpper(s)]; ok {
		return val
	}
	return BrainAsleep
}
