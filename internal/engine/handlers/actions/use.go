package actions

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает команду USE - первая ненаправленная способность предмета
func HandleUse(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	item, err := types.ParseEntityID(p.ItemID)
	if err != nil {
		return handlers.Result{}, err
	}

	it, ok := ctx.World.Item(item)
	if !ok {
		return handlers.Refused("Предмет не найден."), nil
	}
	for _, a := range it.Abilities {
		if a.IsTargeted() {
			continue
		}
		return zapResult(ctx, item, a, ctx.World.UseItemAbility(ctx.Actor, item, a)), nil
	}
	return handlers.Refused("Этим предметом нельзя воспользоваться без цели."), nil
}

// HandleZap применяет способность предмета, с направлением или без.
func HandleZap(ctx handlers.Context, p api.ZapPayload) (handlers.Result, error) {
	item, err := types.ParseEntityID(p.ItemID)
	if err != nil {
		return handlers.Result{}, err
	}
	ability, err := handlers.ParseAbility(p.Ability)
	if err != nil {
		return handlers.Result{}, err
	}

	if p.Dir == "" {
		return zapResult(ctx, item, ability, ctx.World.UseItemAbility(ctx.Actor, item, ability)), nil
	}
	dir, err := handlers.ParseDir(p.Dir)
	if err != nil {
		return handlers.Result{}, err
	}
	return zapResult(ctx, item, ability, ctx.World.UseTargetedItemAbility(ctx.Actor, item, ability, dir)), nil
}

// HandleCast - врождённая способность.
func HandleCast(ctx handlers.Context, p api.CastPayload) (handlers.Result, error) {
	ability, err := handlers.ParseAbility(p.Ability)
	if err != nil {
		return handlers.Result{}, err
	}

	var out domain.Outcome
	if p.Dir == "" {
		out = ctx.World.UseAbility(ctx.Actor, ability)
	} else {
		dir, err := handlers.ParseDir(p.Dir)
		if err != nil {
			return handlers.Result{}, err
		}
		out = ctx.World.UseTargetedAbility(ctx.Actor, ability, dir)
	}

	if out == domain.CannotAct {
		return handlers.Refused("Не получается."), nil
	}
	return handlers.Done(out), nil
}

func zapResult(ctx handlers.Context, item types.EntityID, a domain.Ability, out domain.Outcome) handlers.Result {
	if out != domain.CannotAct {
		return handlers.Done(out)
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "use_handler",
		"actor_id":  ctx.Actor,
		"item_id":   item,
		"ability":   a,
	}).Warn("Item ability rejected")
	return handlers.Refused("Ничего не происходит.")
}
