package engine

import (
	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/sirupsen/logrus"
)

// SpawnFx создаёт сущность-эффект в клетке. Эффект живёт FxHorizon ходов
// по мировым часам, чтобы удаление не зависело от частоты кадров.
func (w *World) SpawnFx(loc domain.Location, state domain.AnimState) types.EntityID {
	if !state.IsTransient() {
		w.log("anim_tracker").WithFields(logrus.Fields{
			"state": state,
			"loc":   loc,
		}).Panic("SpawnFx called with a non-transient anim state")
	}

	e := w.registry.Make(enums.KindFx)
	w.spatial.Place(e, loc)
	w.anim.Insert(e, domain.Anim{
		State:         state,
		AnimStart:     w.animTick,
		DoneWorldTick: w.tick + domain.FxHorizon,
		HasDoneTick:   true,
	})
	return e
}

// TickAnims возвращает мобов из разовых анимаций (удар, толчок) в обычное
// состояние. Только для отрисовки, на логику не влияет.
func (w *World) TickAnims() {
	w.anim.Each(func(_ types.EntityID, a *domain.Anim) {
		if a.State.IsOneShot() && w.animTick >= a.AnimStart+domain.OneShotDuration {
			a.State = domain.AnimMob
			a.AnimStart = w.animTick
		}
	})
}

// AdvanceAnimClock продвигает часы анимации на один кадр.
// Вызывается отрисовщиком, игровая логика его не использует.
func (w *World) AdvanceAnimClock() {
	w.animTick++
}

// setAnim запускает разовую анимацию моба.
func (w *World) setAnim(e types.EntityID, state domain.AnimState) {
	if a := w.anim.Ptr(e); a != nil && !a.State.IsTransient() {
		a.State = state
		a.AnimStart = w.animTick
	}
}

// expireFx удаляет эффекты, чьё время вышло.
func (w *World) expireFx() {
	var expired []types.EntityID
	for _, e := range w.anim.Entities() {
		a, _ := w.anim.Get(e)
		if a.HasDoneTick && a.DoneWorldTick <= w.tick {
			expired = append(expired, e)
		}
	}
	for _, e := range expired {
		w.removeEntity(e)
	}
	if len(expired) > 0 {
		w.log("anim_tracker").WithField("count", len(expired)).Debug("Fx expired")
	}
}
