package actions

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
	"github.com/bisarnacki/magog/pkg/api"
)

// HandleEquip обрабатывает команду EQUIP - надеть предмет из рюкзака
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	item, err := types.ParseEntityID(p.ItemID)
	if err != nil {
		return handlers.Result{}, err
	}

	switch ctx.World.Wield(ctx.Actor, item) {
	case domain.Acted:
		return handlers.Result{Msg: "Надето: " + ctx.World.Name(item) + ".", MsgType: "INFO", Outcome: domain.Acted}, nil
	case domain.Declined:
		return handlers.Result{Msg: "Уже надето.", MsgType: "INFO", Outcome: domain.Declined}, nil
	}
	return handlers.Refused("Это нельзя надеть."), nil
}
