package actions

import (
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
	"github.com/bisarnacki/magog/pkg/api"
)

// HandleStep двигает актора. Если в клетке моб, шаг превращается в удар.
func HandleStep(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, err := handlers.ParseDir(p.Dir)
	if err != nil {
		return handlers.Result{}, err
	}

	if out := ctx.World.EntityMelee(ctx.Actor, dir); out != domain.Declined {
		return handlers.Done(out), nil
	}

	out := ctx.World.EntityStep(ctx.Actor, dir)
	if out == domain.CannotAct {
		return handlers.Refused("Путь прегражден."), nil
	}
	return handlers.Done(out), nil
}

// HandleMelee - удар без шага.
func HandleMelee(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, err := handlers.ParseDir(p.Dir)
	if err != nil {
		return handlers.Result{}, err
	}

	out := ctx.World.EntityMelee(ctx.Actor, dir)
	if out == domain.Declined {
		return handlers.Result{Msg: "Там никого нет.", MsgType: "INFO", Outcome: out}, nil
	}
	return handlers.Done(out), nil
}
