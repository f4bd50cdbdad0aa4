package domain

import (
	"encoding/json"

	"github.com/bisarnacki/magog/internal/core/types"
)

// InternalCommand - команда для инстанса после разбора JSON.
type InternalCommand struct {
	Action  ActionType
	Token   types.EntityID  // Кто действует
	Payload json.RawMessage // Разбирается хендлером
}
