package actions

import (
	"github.com/bisarnacki/magog/internal/engine/handlers"
)

func HandleIdle(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Done(ctx.World.Idle(ctx.Actor)), nil
}
