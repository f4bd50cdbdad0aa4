package actions

import (
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
)

// HandleInit не тратит ход: клиент просто получает свежий снимок.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в Магог.",
		MsgType: "INFO",
		Outcome: domain.Declined,
	}, nil
}
