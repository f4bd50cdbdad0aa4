package actions

import (
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
)

// HandlePickUp обрабатывает команду PICKUP - подбор предмета из-под ног
func HandlePickUp(ctx handlers.Context) (handlers.Result, error) {
	out := ctx.World.PickUp(ctx.Actor)
	if out == domain.Declined {
		return handlers.Result{Msg: "Здесь нечего поднять.", MsgType: "INFO", Outcome: out}, nil
	}
	// Про полный рюкзак мир сообщает сам.
	return handlers.Done(out), nil
}
