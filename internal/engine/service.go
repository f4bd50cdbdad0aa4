package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
	"github.com/bisarnacki/magog/internal/engine/handlers/actions"
	"github.com/bisarnacki/magog/internal/network"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GameService связывает сетевой слой с инстансом.
type GameService struct {
	Instance *Instance
	Hub      *network.Broadcaster
}

// NewService оборачивает мир в инстанс с собственным хабом.
func NewService(world *World, frame time.Duration, replay *domain.ReplaySession) *GameService {
	hub := network.NewBroadcaster()
	return &GameService{
		Instance: NewInstance(world, hub, frame, replay),
		Hub:      hub,
	}
}

// DefaultHandlers - таблица команд игрока.
func DefaultHandlers() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:    handlers.WithEmptyPayload(actions.HandleInit),
		domain.ActionStep:    handlers.WithPayload(actions.HandleStep),
		domain.ActionMelee:   handlers.WithPayload(actions.HandleMelee),
		domain.ActionIdle:    handlers.WithEmptyPayload(actions.HandleIdle),
		domain.ActionPickUp:  handlers.WithEmptyPayload(actions.HandlePickUp),
		domain.ActionEquip:   handlers.WithPayload(actions.HandleEquip),
		domain.ActionUseItem: handlers.WithPayload(actions.HandleUse),
		domain.ActionZap:     handlers.WithPayload(actions.HandleZap),
		domain.ActionCast:    handlers.WithPayload(actions.HandleCast),
	}
}

// Start запускает цикл инстанса в отдельной горутине.
func (s *GameService) Start(ctx context.Context) {
	go s.Instance.Run(ctx)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Все сессии управляют одним игроком, поэтому Token сессии в мир не идёт.
func (s *GameService) ProcessCommand(session string, externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component": "service",
			"session":   session,
			"action":    externalCmd.Action,
		}).Warn("Unknown action")
		return fmt.Errorf("unknown action %q", externalCmd.Action)
	}

	s.Instance.CommandChan <- InstanceCommand{
		Cmd: domain.InternalCommand{
			Action:  actionType,
			Payload: externalCmd.Payload,
		},
		Session: session,
	}
	return nil
}
