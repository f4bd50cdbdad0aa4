package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
)

// WorldActions - операции мира, доступные хендлерам.
// engine.World реализует этот интерфейс неявно.
type WorldActions interface {
	EntityStep(e types.EntityID, dir domain.Dir6) domain.Outcome
	EntityMelee(e types.EntityID, dir domain.Dir6) domain.Outcome
	Idle(e types.EntityID) domain.Outcome
	PickUp(e types.EntityID) domain.Outcome
	Wield(e, item types.EntityID) domain.Outcome
	UseItemAbility(e, item types.EntityID, a domain.Ability) domain.Outcome
	UseTargetedItemAbility(e, item types.EntityID, a domain.Ability, dir domain.Dir6) domain.Outcome
	UseAbility(e types.EntityID, a domain.Ability) domain.Outcome
	UseTargetedAbility(e types.EntityID, a domain.Ability, dir domain.Dir6) domain.Outcome

	Item(e types.EntityID) (domain.Item, bool)
	Name(e types.EntityID) string
}

// Context передает хендлеру мир и того, кто действует.
type Context struct {
	World WorldActions
	Actor types.EntityID
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи инстанса напрямую, он возвращает данные.
type Result struct {
	Msg     string         // Текст лога
	MsgType string         // Тип лога (INFO, COMBAT, ERROR)
	Outcome domain.Outcome // Acted - мир делает ход
}

// HandlerFunc - это контракт для любой команды (STEP, ZAP, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа без хода
func EmptyResult() Result {
	return Result{Outcome: domain.Declined}
}

// Refused - отказ с сообщением игроку.
func Refused(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR", Outcome: domain.CannotAct}
}

// Done - результат по исходу действия мира.
func Done(out domain.Outcome) Result {
	return Result{Outcome: out}
}

// ParseDir разбирает направление из payload.
func ParseDir(s string) (domain.Dir6, error) {
	d, ok := domain.ParseDir6(s)
	if !ok {
		return 0, fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

// ParseAbility разбирает имя способности из payload.
func ParseAbility(s string) (domain.Ability, error) {
	a, ok := domain.ParseAbility(s)
	if !ok {
		return 0, fmt.Errorf("unknown ability %q", s)
	}
	return a, nil
}
