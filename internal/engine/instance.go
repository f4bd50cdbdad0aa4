package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine/handlers"
	"github.com/bisarnacki/magog/internal/network"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// maxCatchUp ограничивает число ходов мира за одну команду игрока.
const maxCatchUp = 64

// ErrNoPlayer - в мире нет игрока, командам некого двигать.
var ErrNoPlayer = errors.New("no player in the world")

// InstanceCommand обертка, чтобы передать команду и сессию, которая её прислала
type InstanceCommand struct {
	Cmd     domain.InternalCommand
	Session string
}

type query struct {
	fn   func(w *World)
	done chan struct{}
}

// Instance владеет миром. Все изменения мира идут через его горутину.
type Instance struct {
	World *World

	// Каналы коммуникации
	CommandChan chan InstanceCommand
	queries     chan query

	Hub *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
	frame    time.Duration

	Logs   []api.LogEntry  // Логи с прошлой рассылки
	events []api.EventView // События с прошлой рассылки
	logSeq uint64

	Replay *domain.ReplaySession // Журнал принятых команд
}

// NewInstance оборачивает готовый мир. hub может быть nil для безголового режима.
func NewInstance(world *World, hub *network.Broadcaster, frame time.Duration, replay *domain.ReplaySession) *Instance {
	if replay == nil {
		replay = &domain.ReplaySession{
			Seed:          world.Config().Seed,
			SpawnInterval: world.Config().SpawnInterval,
			Timestamp:     time.Now().Unix(),
		}
	}
	return &Instance{
		World:       world,
		CommandChan: make(chan InstanceCommand, 100),
		queries:     make(chan query),
		Hub:         hub,
		handlers:    DefaultHandlers(),
		frame:       frame,
		Replay:      replay,
	}
}

// Run запускает цикл инстанса до отмены ctx.
func (i *Instance) Run(ctx context.Context) {
	log := logger.Log.WithField("component", "instance")
	log.Info("Instance loop started")

	ticker := time.NewTicker(i.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Instance loop stopped")
			return

		case wrapper := <-i.CommandChan:
			if _, err := i.Execute(wrapper.Cmd); err != nil {
				i.sendError(wrapper.Session, err)
				continue
			}
			i.Publish()

		case q := <-i.queries:
			q.fn(i.World)
			close(q.done)

		case <-ticker.C:
			i.World.AdvanceAnimClock()
		}
	}
}

// Do выполняет fn на горутине инстанса. Так читают мир отладка и сохранение.
func (i *Instance) Do(ctx context.Context, fn func(w *World)) error {
	q := query{fn: fn, done: make(chan struct{})}
	select {
	case i.queries <- q:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute выполняет команду игрока синхронно. Если действие потратило ход,
// мир идёт вперёд, пока игрок снова не сможет ходить.
func (i *Instance) Execute(cmd domain.InternalCommand) (handlers.Result, error) {
	handler, ok := i.handlers[cmd.Action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown action %s", cmd.Action)
	}
	player, ok := i.World.Player()
	if !ok {
		return handlers.Result{}, ErrNoPlayer
	}
	if !cmd.Token.IsNil() && cmd.Token != player {
		return handlers.Result{}, fmt.Errorf("entity %s is not the player", cmd.Token)
	}
	cmd.Token = player
	tick := i.World.Tick()

	result, err := handler(handlers.Context{World: i.World, Actor: player}, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "instance",
			"action":    cmd.Action,
			"tick":      tick,
		}).WithError(err).Warn("Command rejected")
		return result, err
	}

	if cmd.Action.SpendsTurn() {
		i.recordAction(cmd, tick)
	}
	if result.Msg != "" {
		i.AddLog(result.Msg, result.MsgType)
	}
	if result.Outcome == domain.Acted {
		i.advance()
	}
	i.collectMsgs()
	return result, nil
}

// advance крутит мир, пока игрок не будет готов ходить или не погибнет.
func (i *Instance) advance() {
	for range maxCatchUp {
		i.World.NextTick()
		player, ok := i.World.Player()
		if !ok {
			i.AddLog("Вы погибли.", "INFO")
			return
		}
		if b, ok := i.World.Brain(player); !ok || b.IsReady(i.World.Tick()) {
			return
		}
	}
}

func (i *Instance) recordAction(cmd domain.InternalCommand, tick uint64) {
	i.Replay.Actions = append(i.Replay.Actions, domain.ReplayAction{
		Tick:    tick,
		Token:   cmd.Token,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// State собирает снимок для клиентов и очищает накопленные логи.
func (i *Instance) State() *api.ServerResponse {
	i.collectMsgs()
	state := BuildState(i.World, i.Logs, i.events)
	i.Logs, i.events = nil, nil
	return state
}

// Publish рассылает снимок всем подключённым сессиям.
func (i *Instance) Publish() {
	if i.Hub == nil || i.Hub.SubscriberCount() == 0 {
		return
	}
	i.Hub.Broadcast(*i.State())
}

func (i *Instance) sendError(session string, err error) {
	if i.Hub == nil || !i.Hub.HasSubscriber(session) {
		return
	}
	i.Hub.SendTo(session, api.ServerResponse{
		Type:  "ERROR",
		Tick:  i.World.Tick(),
		Error: err.Error(),
	})
}
