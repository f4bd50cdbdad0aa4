package agent

import (
	"context"
	"encoding/json"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он видит мир так же, как клиент: только по снимкам api.ServerResponse,
// и отвечает обычными командами.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе сервера, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждый снимок вызывается Decide, команда уходит в сервис.
//
// В режиме sim хаб не нужен: снимки и команды передаются напрямую.
type Bot struct {
	Session string
	Service *engine.GameService
	Inbox   chan api.ServerResponse

	lastTick   uint64
	lastAction string
}

// NewBot создает бота. service может быть nil, если бот используется без сети.
func NewBot(session string, service *engine.GameService) *Bot {
	b := &Bot{Session: session, Service: service}
	if service != nil {
		// Бот регистрируется в хабе как обычный клиент и получает свой канал для обновлений.
		b.Inbox = service.Hub.Register(session)
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"session":   session,
	}).Info("Bot created")
	return b
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.Session)

	b.Service.ProcessCommand(b.Session, api.ClientCommand{Action: "INIT"})
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-b.Inbox:
			if !ok {
				return
			}
			if state.Type != "UPDATE" || state.MyEntityID == "" {
				continue
			}
			if err := b.Service.ProcessCommand(b.Session, b.Decide(state)); err != nil {
				logger.Log.WithError(err).WithField("component", "bot").Warn("Bot command rejected")
			}
		}
	}
}

// Decide - мозг бота: бьет или преследует ближайшего видимого моба,
// подбирает предметы под ногами, иначе отдыхает.
// Если прошлая команда не сдвинула мир, бот отдыхает, чтобы не застрять.
func (b *Bot) Decide(state api.ServerResponse) api.ClientCommand {
	cmd := b.decide(state)
	if state.Tick == b.lastTick && b.lastAction != "" && b.lastAction != "IDLE" {
		cmd = api.ClientCommand{Action: "IDLE"}
	}
	b.lastTick, b.lastAction = state.Tick, cmd.Action
	return cmd
}

func (b *Bot) decide(state api.ServerResponse) api.ClientCommand {
	// --- ШАГ 1: НАХОДИМ СЕБЯ ---
	var me *api.EntityView
	for i := range state.Entities {
		if state.Entities[i].ID == state.MyEntityID {
			me = &state.Entities[i]
		}
	}
	if me == nil {
		return api.ClientCommand{Action: "IDLE"}
	}
	here := toLocation(me.Pos)

	// --- ШАГ 2: ЦЕЛЬ И ДОБЫЧА ---
	var (
		target   *api.EntityView
		bestDist int
		loot     bool
	)
	for i := range state.Entities {
		e := &state.Entities[i]
		if e.ID == me.ID {
			continue
		}
		loc := toLocation(e.Pos)
		if e.Stats == nil {
			if loc == here {
				loot = true
			}
			continue
		}
		if e.Stats.HP <= 0 {
			continue
		}
		// Равные дистанции решаются по ID, чтобы выбор был детерминированным.
		d := here.Distance(loc)
		if target == nil || d < bestDist || (d == bestDist && e.ID < target.ID) {
			target, bestDist = e, d
		}
	}

	// --- ШАГ 3: РЕШЕНИЕ ---
	switch {
	case target != nil:
		dir := domain.DirTowards(here, toLocation(target.Pos))
		return dirCommand("STEP", dir)
	case loot:
		return api.ClientCommand{Action: "PICKUP"}
	default:
		return api.ClientCommand{Action: "IDLE"}
	}
}

func dirCommand(action string, dir domain.Dir6) api.ClientCommand {
	payload, _ := json.Marshal(api.DirectionPayload{Dir: dir.String()})
	return api.ClientCommand{Action: action, Payload: payload}
}

func toLocation(p api.Position) domain.Location {
	return domain.Loc(p.X, p.Y, int8(p.Z))
}

// Play ведет игрока напрямую через инстанс, пока мир не дойдет до хода
// ticks или игрок не погибнет. Используется в режиме sim.
func (b *Bot) Play(inst *engine.Instance, ticks uint64) error {
	for inst.World.Tick() < ticks {
		if _, alive := inst.World.Player(); !alive {
			return nil
		}
		cmd := b.Decide(*inst.State())
		if _, err := inst.Execute(domain.InternalCommand{
			Action:  domain.ParseAction(cmd.Action),
			Payload: cmd.Payload,
		}); err != nil {
			return err
		}
	}
	return nil
}
