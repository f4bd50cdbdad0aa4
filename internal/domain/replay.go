package domain

import (
	"encoding/json"

	"github.com/bisarnacki/magog/internal/core/types"
)

// ReplayAction - одна принятая команда игрока.
type ReplayAction struct {
	Tick    uint64          `json:"tick"`
	Token   types.EntityID  `json:"token"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ReplaySession - журнал партии. Вместе с Seed и картой его достаточно,
// чтобы воспроизвести партию ход в ход.
type ReplaySession struct {
	ID            string         `json:"id"`
	Seed          uint64         `json:"seed"`
	SpawnInterval uint64         `json:"spawnInterval"`
	Map           string         `json:"map"` // Имя встроенного уровня
	Timestamp     int64          `json:"timestamp"`
	Actions       []ReplayAction `json:"actions"`
}
